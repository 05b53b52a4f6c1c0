package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Nitin6404/sryzen-backend/utils"

	"github.com/gin-gonic/gin"
)

func newWSTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/orders/:id", WSAuthMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": utils.CurrentUserID(c),
			"role":   utils.CurrentRole(c),
		})
	})
	return r
}

func TestWSAuthMiddleware(t *testing.T) {
	const secret = "test-secret"
	token, err := utils.GenerateToken(7, "user", secret, time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	r := newWSTestRouter(secret)

	tests := []struct {
		name   string
		target string
		header string
		want   int
	}{
		{"token in query", "/ws/orders/1?token=" + token, "", http.StatusOK},
		{"token in header", "/ws/orders/1", "Bearer " + token, http.StatusOK},
		{"no token", "/ws/orders/1", "", http.StatusUnauthorized},
		{"garbage query token", "/ws/orders/1?token=nope", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestWSAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	token, err := utils.GenerateToken(7, "user", "other-secret", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	r := newWSTestRouter("test-secret")

	req := httptest.NewRequest(http.MethodGet, "/ws/orders/1?token="+token, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
