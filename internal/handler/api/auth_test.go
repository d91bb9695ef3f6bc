//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"surplusfood-api/internal/domain/user"
	"surplusfood-api/internal/handler/api"
	"surplusfood-api/internal/pkg/errs"
	"surplusfood-api/internal/usecase/commands"
	"surplusfood-api/tests/common/builder"
	commandsmock "surplusfood-api/tests/mock/commands"
	queriesmock "surplusfood-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAuthCommands *commandsmock.MockAuthCommands
	mockUserCommands *commandsmock.MockUserCommands
	mockUserQueries  *queriesmock.MockUserQueries
	handler          *api.AuthHandler
	userID           uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuthCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockUserCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockUserQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuthCommands, s.mockUserCommands, s.mockUserQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/register", s.handler.Register)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
	s.router.POST("/users/:id/no-show", authMiddleware, s.handler.RecordNoShow)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) doJSON(method, path string, body map[string]any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthHandlerTestSuite) registerBody() map[string]any {
	return map[string]any{
		"member_number": "AB1234",
		"name":          "Test Member",
		"email":         "member@example.com",
		"password":      "secret-password",
		"role":          "member",
		"birth_date":    "2000-01-15",
		"phone":         "+31612345678",
		"study_city":    "breda",
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.Run("正しい認証情報でトークン発行", func() {
		s.mockAuthCommands.EXPECT().
			Login(gomock.Any(), "member@example.com", "secret-password").
			Return(&commands.LoginResult{UserID: s.userID, AccessToken: "token"}, nil)

		rec := s.doJSON(http.MethodPost, "/auth/login", map[string]any{
			"email":    "member@example.com",
			"password": "secret-password",
		})
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "token")
	})

	s.Run("誤った認証情報は401", func() {
		s.mockAuthCommands.EXPECT().
			Login(gomock.Any(), "member@example.com", "wrong").
			Return(nil, commands.ErrInvalidCredentials)

		rec := s.doJSON(http.MethodPost, "/auth/login", map[string]any{
			"email":    "member@example.com",
			"password": "wrong",
		})
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("不正なメール形式は400", func() {
		rec := s.doJSON(http.MethodPost, "/auth/login", map[string]any{
			"email":    "not-an-email",
			"password": "secret-password",
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	s.Run("登録成功で201", func() {
		id := uuid.New()
		s.mockUserCommands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(id, nil)

		rec := s.doJSON(http.MethodPost, "/auth/register", s.registerBody())
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), id.String())
	})

	s.Run("メール重複は409", func() {
		s.mockUserCommands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrEmailTaken)

		rec := s.doJSON(http.MethodPost, "/auth/register", s.registerBody())
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("年齢制限違反は422", func() {
		s.mockUserCommands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(user.ErrTooYoung, commands.ErrDomainValidation))

		rec := s.doJSON(http.MethodPost, "/auth/register", s.registerBody())
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Contains(rec.Body.String(), "16 years old")
	})

	s.Run("不正なロールは400", func() {
		body := s.registerBody()
		body["role"] = "admin"

		rec := s.doJSON(http.MethodPost, "/auth/register", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestRecordNoShow() {
	s.Run("ノーショー記録で204", func() {
		target := uuid.New()
		s.mockUserCommands.EXPECT().
			RecordNoShow(gomock.Any(), target).
			Return(nil)

		rec := s.doJSON(http.MethodPost, "/users/"+target.String()+"/no-show", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("不正なIDは400", func() {
		rec := s.doJSON(http.MethodPost, "/users/not-a-uuid/no-show", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("自分のプロフィール取得", func() {
		view := builder.NewUserBuilder().BuildReadModel()
		view.ID = s.userID
		s.mockUserQueries.EXPECT().
			GetByID(gomock.Any(), s.userID).
			Return(view, nil)

		rec := s.doJSON(http.MethodGet, "/auth/me", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), view.Email)
		s.NotContains(rec.Body.String(), "hashed_password")
	})
}
