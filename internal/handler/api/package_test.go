//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"surplusfood-api/internal/domain/pack"
	"surplusfood-api/internal/domain/reservation"
	"surplusfood-api/internal/domain/user"
	"surplusfood-api/internal/handler/api"
	"surplusfood-api/internal/pkg/errs"
	"surplusfood-api/internal/usecase/commands"
	"surplusfood-api/internal/usecase/queries"
	commandsmock "surplusfood-api/tests/mock/commands"
	queriesmock "surplusfood-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PackageHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPackageCommands
	mockQueries  *queriesmock.MockPackageQueries
	handler      *api.PackageHandler
	userID       uuid.UUID
}

func (s *PackageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPackageCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPackageQueries(s.mockCtrl)
	s.handler = api.NewPackageHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	s.router.GET("/packages", authMiddleware, s.handler.ListAvailable)
	s.router.GET("/packages/:id", authMiddleware, s.handler.GetPackage)
	s.router.POST("/packages", authMiddleware, s.handler.CreatePackage)
	s.router.PUT("/packages/:id", authMiddleware, s.handler.UpdatePackage)
	s.router.DELETE("/packages/:id", authMiddleware, s.handler.DeletePackage)
	s.router.POST("/packages/:id/reserve", authMiddleware, s.handler.ReservePackage)
}

func (s *PackageHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPackageHandlerSuite(t *testing.T) {
	suite.Run(t, new(PackageHandlerTestSuite))
}

func (s *PackageHandlerTestSuite) draftBody() map[string]any {
	return map[string]any{
		"name":            "Leftover lunch",
		"city":            "breda",
		"meal_type":       "bread",
		"outlet_id":       uuid.New().String(),
		"pickup_time":     time.Now().Add(20 * time.Hour).Format(time.RFC3339),
		"expiration_time": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"price_cents":     350,
	}
}

func (s *PackageHandlerTestSuite) doJSON(method, path string, body map[string]any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *PackageHandlerTestSuite) TestListAvailable() {
	s.Run("フィルタなしで一覧取得", func() {
		items := []*queries.PackageListItem{{ID: uuid.New(), Name: "Lunch", City: "breda"}}
		s.mockQueries.EXPECT().
			ListAvailable(gomock.Any(), queries.AvailableFilter{}).
			Return(items, nil)

		rec := s.doJSON(http.MethodGet, "/packages", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Lunch")
	})

	s.Run("都市とミールタイプで絞り込み", func() {
		city := "tilburg"
		mealType := "hot_dinner"
		s.mockQueries.EXPECT().
			ListAvailable(gomock.Any(), queries.AvailableFilter{City: &city, MealType: &mealType}).
			Return(nil, nil)

		rec := s.doJSON(http.MethodGet, "/packages?city=tilburg&meal_type=hot_dinner", nil)
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *PackageHandlerTestSuite) TestGetPackage() {
	s.Run("存在するパッケージ", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(&queries.PackageView{ID: id, Name: "Lunch"}, nil)

		rec := s.doJSON(http.MethodGet, "/packages/"+id.String(), nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("存在しないパッケージは404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(nil, errs.New("not found"))

		rec := s.doJSON(http.MethodGet, "/packages/"+id.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("不正なIDは400", func() {
		rec := s.doJSON(http.MethodGet, "/packages/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *PackageHandlerTestSuite) TestCreatePackage() {
	s.Run("作成成功で201", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			CreatePackage(gomock.Any(), gomock.Any()).
			Return(id, nil)

		rec := s.doJSON(http.MethodPost, "/packages", s.draftBody())
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), id.String())
	})

	s.Run("検証違反は422で理由を返す", func() {
		s.mockCommands.EXPECT().
			CreatePackage(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(pack.ErrPickupTooFarAhead, commands.ErrDomainValidation))

		rec := s.doJSON(http.MethodPost, "/packages", s.draftBody())
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Contains(rec.Body.String(), "at most 2 days in advance")
	})

	s.Run("店舗なしは404", func() {
		s.mockCommands.EXPECT().
			CreatePackage(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrOutletNotFound)

		rec := s.doJSON(http.MethodPost, "/packages", s.draftBody())
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("必須項目欠落は400", func() {
		body := s.draftBody()
		delete(body, "name")

		rec := s.doJSON(http.MethodPost, "/packages", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *PackageHandlerTestSuite) TestUpdatePackage() {
	s.Run("更新成功で204", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			UpdatePackage(gomock.Any(), id, gomock.Any()).
			Return(nil)

		rec := s.doJSON(http.MethodPut, "/packages/"+id.String(), s.draftBody())
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("予約済みは422", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			UpdatePackage(gomock.Any(), id, gomock.Any()).
			Return(errs.Mark(pack.ErrAlreadyReserved, commands.ErrDomainValidation))

		rec := s.doJSON(http.MethodPut, "/packages/"+id.String(), s.draftBody())
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Contains(rec.Body.String(), "reserved package cannot be modified")
	})
}

func (s *PackageHandlerTestSuite) TestDeletePackage() {
	s.Run("削除成功で204", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			DeletePackage(gomock.Any(), id).
			Return(nil)

		rec := s.doJSON(http.MethodDelete, "/packages/"+id.String(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("存在しないパッケージは404", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			DeletePackage(gomock.Any(), id).
			Return(commands.ErrPackageNotFound)

		rec := s.doJSON(http.MethodDelete, "/packages/"+id.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *PackageHandlerTestSuite) TestReservePackage() {
	s.Run("予約成功で201", func() {
		packageID := uuid.New()
		reservationID := uuid.New()
		s.mockCommands.EXPECT().
			ReservePackage(gomock.Any(), packageID, s.userID).
			Return(reservationID, nil)

		rec := s.doJSON(http.MethodPost, "/packages/"+packageID.String()+"/reserve", nil)
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), reservationID.String())
	})

	s.Run("予約済みは422で理由を返す", func() {
		packageID := uuid.New()
		s.mockCommands.EXPECT().
			ReservePackage(gomock.Any(), packageID, s.userID).
			Return(uuid.Nil, errs.Mark(reservation.ErrPackageUnavailable, commands.ErrDomainValidation))

		rec := s.doJSON(http.MethodPost, "/packages/"+packageID.String()+"/reserve", nil)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Contains(rec.Body.String(), "already reserved")
	})

	s.Run("ノーショー超過は422", func() {
		packageID := uuid.New()
		s.mockCommands.EXPECT().
			ReservePackage(gomock.Any(), packageID, s.userID).
			Return(uuid.Nil, errs.Mark(reservation.ErrTooManyNoShows, commands.ErrDomainValidation))

		rec := s.doJSON(http.MethodPost, "/packages/"+packageID.String()+"/reserve", nil)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Contains(rec.Body.String(), "no-shows")
	})
}
