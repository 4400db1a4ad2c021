package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NewAuthenticator(testSigningKey).VerifyJWT())
	router.GET("/protected", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"userID": ctx.GetUint(ContextKeyUserID)})
	})

	return router
}

func doRequest(t *testing.T, router *gin.Engine, authorization, userAgent string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	req.Header.Set("User-Agent", userAgent)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestVerifyJWT_ValidToken(t *testing.T) {
	router := newProtectedRouter()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), 7, "test-agent/1.0")
	require.NoError(t, err)

	rec := doRequest(t, router, "Bearer "+token, "test-agent/1.0")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userID":7`)
}

func TestVerifyJWT_MissingOrMalformedHeader(t *testing.T) {
	router := newProtectedRouter()

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc123", "just-a-token"} {
		rec := doRequest(t, router, header, "test-agent/1.0")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestVerifyJWT_WrongSigningKey(t *testing.T) {
	router := newProtectedRouter()

	token, err := jwthelper.GenerateToken([]byte("some-other-key"), 7, "test-agent/1.0")
	require.NoError(t, err)

	rec := doRequest(t, router, "Bearer "+token, "test-agent/1.0")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyJWT_ExpiredToken(t *testing.T) {
	router := newProtectedRouter()

	claims := jwthelper.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID:    7,
		UserAgent: "test-agent/1.0",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	require.NoError(t, err)

	rec := doRequest(t, router, "Bearer "+token, "test-agent/1.0")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "session expired")
}

func TestVerifyJWT_UserAgentMismatch(t *testing.T) {
	router := newProtectedRouter()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), 7, "test-agent/1.0")
	require.NoError(t, err)

	rec := doRequest(t, router, "Bearer "+token, "different-agent/2.0")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
