package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-api/errors"
	"hotel-api/services"
)

func testContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, recorder
}

type fakeAuthorizer struct {
	identity *AdminIdentity
	err      error
}

func (f *fakeAuthorizer) Authorize(c *gin.Context) (*AdminIdentity, error) {
	return f.identity, f.err
}

func TestSecretAuthorizerQueryParam(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	auth := NewSecretAuthorizer()

	c, _ := testContext("/api/stats?password=s3cret")
	identity, err := auth.Authorize(c)
	require.NoError(t, err)
	assert.Equal(t, "secret", identity.Via)
}

func TestSecretAuthorizerHeader(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	auth := NewSecretAuthorizer()

	c, _ := testContext("/api/stats")
	c.Request.Header.Set("X-API-Key", "s3cret")
	_, err := auth.Authorize(c)
	assert.NoError(t, err)
}

func TestSecretAuthorizerRejects(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	auth := NewSecretAuthorizer()

	c, _ := testContext("/api/stats?password=wrong")
	_, err := auth.Authorize(c)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeUnauthorized, appErr.Code)

	c, _ = testContext("/api/stats")
	_, err = auth.Authorize(c)
	assert.Error(t, err)
}

func TestTokenAuthorizer(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-signing-key")

	token, err := services.IssueAdminToken(42)
	require.NoError(t, err)

	auth := NewTokenAuthorizer()

	c, _ := testContext("/api/stats")
	c.Request.Header.Set("Authorization", "Bearer "+token)
	identity, err := auth.Authorize(c)
	require.NoError(t, err)
	assert.Equal(t, uint(42), identity.UserID)
	assert.Equal(t, "token", identity.Via)

	c, _ = testContext("/api/stats")
	c.Request.Header.Set("Authorization", "Bearer not-a-token")
	_, err = auth.Authorize(c)
	assert.Error(t, err)

	c, _ = testContext("/api/stats")
	_, err = auth.Authorize(c)
	assert.Error(t, err)
}

func TestChainAuthorizer(t *testing.T) {
	denied := &fakeAuthorizer{err: errors.NewAppError(errors.ErrCodeUnauthorized, "no", nil)}
	granted := &fakeAuthorizer{identity: &AdminIdentity{Via: "fake"}}

	// Một authorizer đậu là đủ
	chain := NewChainAuthorizer(denied, granted)
	c, _ := testContext("/api/stats")
	identity, err := chain.Authorize(c)
	require.NoError(t, err)
	assert.Equal(t, "fake", identity.Via)

	chain = NewChainAuthorizer(denied, denied)
	c, _ = testContext("/api/stats")
	_, err = chain.Authorize(c)
	assert.Error(t, err)
}

func TestAdminRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/admin",
		AdminRequired(&fakeAuthorizer{identity: &AdminIdentity{UserID: 7, Via: "fake"}}),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"admin_id": c.GetUint("adminID")})
		})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"admin_id":7`)
}

func TestAdminRequiredBlocks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/admin",
		AdminRequired(&fakeAuthorizer{err: errors.NewAppError(errors.ErrCodeUnauthorized, "Sai mật khẩu quản trị", nil)}),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"reached": true})
		})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "reached")
	assert.Contains(t, recorder.Body.String(), "Sai mật khẩu quản trị")
}
