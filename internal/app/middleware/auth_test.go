package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codepulse-cc/codepulse-app/internal/pkg/auth"
	"github.com/codepulse-cc/codepulse-app/pkg/idgen"
	service_auth "github.com/codepulse-cc/codepulse-app/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

const testSecret = "middleware-test-secret"

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	m.Run()
}

// tokenParserOnly 只实现中间件用到的 ParseAccessToken，用固定密钥解析。
type tokenParserOnly struct {
	service_auth.TokenService
}

func (tokenParserOnly) ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error) {
	return auth.ParseToken(accessToken, []byte(testSecret))
}

func newGatedRouter() *gin.Engine {
	mw := NewMiddleware(tokenParserOnly{})

	engine := gin.New()
	engine.POST("/api/posts", mw.JWTAuth(), mw.WriterAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func issueToken(t *testing.T, userID, groupID uint) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, groupID, []byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func doRequest(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	engine.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_MissingToken(t *testing.T) {
	w := doRequest(newGatedRouter(), "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("状态码 = %d, want 401", w.Code)
	}
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	w := doRequest(newGatedRouter(), "Token abc")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("状态码 = %d, want 401", w.Code)
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	w := doRequest(newGatedRouter(), "Bearer not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("状态码 = %d, want 401", w.Code)
	}
}

func TestWriterAuth_AllowsWriterGroup(t *testing.T) {
	token := issueToken(t, 1, 1)
	w := doRequest(newGatedRouter(), fmt.Sprintf("Bearer %s", token))
	if w.Code != http.StatusOK {
		t.Errorf("状态码 = %d, want 200", w.Code)
	}
}

func TestWriterAuth_RejectsReaderGroup(t *testing.T) {
	token := issueToken(t, 2, 2)
	w := doRequest(newGatedRouter(), fmt.Sprintf("Bearer %s", token))
	if w.Code != http.StatusForbidden {
		t.Errorf("状态码 = %d, want 403", w.Code)
	}
}
