package middlewares

import (
	"medibook-service/internal/app/config"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(&config.InternalConfig{
		JWT: config.JWT{Secret: "testsecret", ExpTimeInHour: 1},
	}, zap.NewNop())
}

func TestAuthenticate(t *testing.T) {
	m := newTestMiddlewares()

	nextCalled := false
	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		seenUserID, _ = r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Missing Token Rejected", func(t *testing.T) {
		nextCalled = false
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/list-appointments", nil)

		m.Authenticate(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, nextCalled)
	})

	t.Run("Invalid Token Rejected", func(t *testing.T) {
		nextCalled = false
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/list-appointments", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-token")

		m.Authenticate(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, nextCalled)
	})

	t.Run("Valid Token Passes User ID Through Context", func(t *testing.T) {
		nextCalled = false
		token, err := utils.GenerateJWT("6655a1b2c3d4e5f6a7b8c9d0", "testsecret", time.Hour)
		assert.NoError(t, err)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/list-appointments", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		m.Authenticate(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, nextCalled)
		assert.Equal(t, "6655a1b2c3d4e5f6a7b8c9d0", seenUserID)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Generates Request ID When Absent", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)

		m.RequestIDMiddleware(next).ServeHTTP(recorder, request)

		assert.NotEmpty(t, recorder.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Keeps Client Request ID", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constvars.HeaderXRequestID, "client-supplied-id")

		m.RequestIDMiddleware(next).ServeHTTP(recorder, request)

		assert.Equal(t, "client-supplied-id", recorder.Header().Get(constvars.HeaderXRequestID))
	})
}
