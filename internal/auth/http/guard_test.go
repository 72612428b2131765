package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/contacts/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name            string
		userID          int64
		requiredOwnerID int64
		wantID          int64
		wantErr         error
	}{
		{"anonymous any auth", 0, 0, 0, apperrors.ErrUnauthorized},
		{"anonymous owner route", 0, 42, 0, apperrors.ErrUnauthorized},
		{"authenticated any auth", 42, 0, 42, nil},
		{"owner match", 42, 42, 42, nil},
		{"owner mismatch", 42, 99, 0, apperrors.ErrForbidden},
		{"unmatchable owner", 42, -1, 0, apperrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Authorize(tt.userID, tt.requiredOwnerID)
			assert.Equal(t, tt.wantID, id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func setupGuardRouter(authenticatedAs int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	if authenticatedAs > 0 {
		router.Use(func(c *gin.Context) {
			ctx := WithUserID(c.Request.Context(), authenticatedAs)
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}

	logger := testLogger()
	router.GET("/any", RequireAuthMiddleware(logger), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/users/:uid", RequireOwnerMiddleware("uid", logger), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func TestRequireAuthMiddleware_Anonymous(t *testing.T) {
	router := setupGuardRouter(0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized")
}

func TestRequireAuthMiddleware_Authenticated(t *testing.T) {
	router := setupGuardRouter(42)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/any", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireOwnerMiddleware(t *testing.T) {
	tests := []struct {
		name            string
		authenticatedAs int64
		path            string
		wantStatus      int
	}{
		{"anonymous", 0, "/users/42", http.StatusUnauthorized},
		{"owner", 42, "/users/42", http.StatusOK},
		{"other user", 99, "/users/42", http.StatusForbidden},
		{"malformed owner id", 42, "/users/abc", http.StatusForbidden},
		{"anonymous malformed owner id", 0, "/users/abc", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupGuardRouter(tt.authenticatedAs)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestUserIDContext(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserID(ctx)
	assert.False(t, ok)

	ctx = WithUserID(ctx, 42)
	userID, ok := GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}
