package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuth(t *testing.T) {
	var gotUserID int64
	var gotAdmin bool

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserID(r.Context())
		gotAdmin = IsAdmin(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
		req.Header.Set(HeaderUserID, "7")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(7), gotUserID)
		assert.False(t, gotAdmin)
	})

	t.Run("admin role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
		req.Header.Set(HeaderUserID, "1")
		req.Header.Set(HeaderUserRole, "admin")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotAdmin)
	})

	t.Run("other roles are not admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
		req.Header.Set(HeaderUserID, "7")
		req.Header.Set(HeaderUserRole, "manager")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, gotAdmin)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		for _, bad := range []string{"abc", "0", "-5"} {
			req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
			req.Header.Set(HeaderUserID, bad)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", bad)
		}
	})
}

func TestContextHelpers_Defaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Equal(t, int64(0), UserID(req.Context()))
	assert.False(t, IsAdmin(req.Context()))
}
