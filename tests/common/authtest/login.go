//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"surplusfood-api/internal/handler/dto/request"
	"surplusfood-api/tests/common/dbtest"
	"surplusfood-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Matches the password_hash seeded by dbtest.CreateTestUser.
const TestPassword = "password123"

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loginRes struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
	require.NotEmpty(t, loginRes.AccessToken, "Access token not found in response")

	return loginRes.AccessToken
}

// CreateAndLogin seeds an adult user and returns an access token for them.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	adultBirthDate := time.Date(1995, 5, 20, 0, 0, 0, 0, time.UTC)
	dbtest.CreateTestUser(t, db, email, role, adultBirthDate)
	return LoginUser(t, router, email, TestPassword)
}

// CreateAndLoginWithBirthDate is CreateAndLogin with an explicit birth date,
// for tests around the adult-only pickup rule.
func CreateAndLoginWithBirthDate(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string, birthDate time.Time) (uuid.UUID, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, email, role, birthDate)
	return userID, LoginUser(t, router, email, TestPassword)
}
