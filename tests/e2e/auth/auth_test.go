//go:build e2e

package auth_test

import (
	"net/http"
	"testing"
	"time"

	"surplusfood-api/internal/domain/user"
	"surplusfood-api/internal/handler/dto/request"
	"surplusfood-api/tests/common/authtest"
	"surplusfood-api/tests/common/dbtest"
	"surplusfood-api/tests/common/httptest"
	"surplusfood-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	registerURL = "/api/auth/register"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	adult := time.Date(1995, 5, 20, 0, 0, 0, 0, time.UTC)
	dbtest.CreateTestUser(s.T(), s.DB, "member@example.com", string(user.RoleMember), adult)
	dbtest.CreateTestUser(s.T(), s.DB, "staff@example.com", string(user.RoleStaff), adult)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "member@example.com",
			password:       authtest.TestPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       authtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "member@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       authtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          "member@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes struct {
					UserID      string `json:"user_id"`
					AccessToken string `json:"access_token"`
				}
				err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NoError(t, err)
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.NotEmpty(t, loginRes.UserID, "ユーザーIDが空")
			}
		})
	}
}

func (s *authSuite) TestRegister() {
	validRequest := func() request.RegisterUserRequest {
		return request.RegisterUserRequest{
			MemberNumber: "ZZ9001",
			Name:         "New Member",
			Email:        "new.member@example.com",
			Password:     "strongpass99",
			Role:         string(user.RoleMember),
			BirthDate:    "2004-02-15",
			Phone:        "+31612345678",
			StudyCity:    "breda",
		}
	}

	tests := []struct {
		name           string
		mutate         func(r *request.RegisterUserRequest)
		expectedStatus int
		expectedErrMsg string
	}{
		{
			name:           "正常な登録",
			mutate:         func(r *request.RegisterUserRequest) {},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "16歳未満は登録できない",
			mutate: func(r *request.RegisterUserRequest) {
				r.BirthDate = time.Now().AddDate(-15, 0, 0).Format(time.DateOnly)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedErrMsg: "16 years old",
		},
		{
			name: "既存メールアドレスは重複エラー",
			mutate: func(r *request.RegisterUserRequest) {
				r.Email = "member@example.com"
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "不正なロールは拒否",
			mutate: func(r *request.RegisterUserRequest) {
				r.Role = "supervisor"
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "短すぎるパスワードは拒否",
			mutate: func(r *request.RegisterUserRequest) {
				r.Password = "short"
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedErrMsg: "at least 8 characters",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := validRequest()
			tt.mutate(&reqBody)

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusCreated {
				// 登録後にそのままログインできること
				token := authtest.LoginUser(t, s.Router, reqBody.Email, reqBody.Password)
				require.NotEmpty(t, token)
			}
			if tt.expectedErrMsg != "" {
				httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedErrMsg)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("認証済みユーザーの情報取得", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "member@example.com", authtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		responseBody := w.Body.String()
		require.Contains(t, responseBody, "member@example.com")
		require.Contains(t, responseBody, string(user.RoleMember))
		require.NotContains(t, responseBody, "password", "レスポンスにパスワード情報が含まれている")
	})

	s.Run("無効なトークンは拒否", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("トークンなしは拒否", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
