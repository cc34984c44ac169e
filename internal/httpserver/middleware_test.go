package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"daykeeper/pkg/config"
	"daykeeper/pkg/util"
)

func newAuthRouter(t *testing.T, cfg config.AuthConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(BasicAuth(cfg))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestBasicAuth(t *testing.T) {
	hash, err := util.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	cfg := config.AuthConfig{User: "dia", PasswordHash: hash}
	r := newAuthRouter(t, cfg)

	tests := []struct {
		name     string
		user     string
		password string
		withAuth bool
		want     int
	}{
		{"valid credentials", "dia", "s3cret", true, http.StatusOK},
		{"wrong password", "dia", "nope", true, http.StatusUnauthorized},
		{"wrong user", "admin", "s3cret", true, http.StatusUnauthorized},
		{"no credentials", "", "", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.withAuth {
				req.SetBasicAuth(tt.user, tt.password)
			}
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if tt.want == http.StatusUnauthorized && w.Header().Get("WWW-Authenticate") == "" {
				t.Error("missing WWW-Authenticate header")
			}
		})
	}
}

func TestBasicAuthDefaultUser(t *testing.T) {
	hash, err := util.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	r := newAuthRouter(t, config.AuthConfig{PasswordHash: hash})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.SetBasicAuth("admin", "s3cret")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for the default admin user", w.Code)
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{200, "2xx"},
		{302, "3xx"},
		{404, "4xx"},
		{500, "5xx"},
	}
	for _, tt := range tests {
		if got := statusLabel(tt.status); got != tt.want {
			t.Errorf("statusLabel(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
