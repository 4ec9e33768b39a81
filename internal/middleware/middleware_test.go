package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stpnv0/EventApproval/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type lookupFunc func(ctx context.Context, id string) (*domain.User, error)

func (f lookupFunc) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return f(ctx, id)
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func serve(t *testing.T, r *ginext.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())

	var seen string
	r.GET("/", func(c *ginext.Context) {
		seen = c.GetString(requestIDKey)
		c.Status(http.StatusOK)
	})

	w := serve(t, r, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", func(c *ginext.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := serve(t, r, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestActor_ResolvesUser(t *testing.T) {
	id := uuid.NewString()
	users := lookupFunc(func(_ context.Context, got string) (*domain.User, error) {
		assert.Equal(t, id, got)
		return &domain.User{ID: id, Role: domain.RoleDean}, nil
	})

	r := ginext.New("test")
	r.Use(Actor(users, newTestLogger(t)))

	var actor domain.Actor
	var ok bool
	r.GET("/", func(c *ginext.Context) {
		actor, ok = ActorFrom(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UserIDHeader, id)
	w := serve(t, r, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, ok)
	assert.Equal(t, domain.Actor{ID: id, Role: domain.RoleDean}, actor)
}

func TestActor_Rejects(t *testing.T) {
	known := uuid.NewString()
	users := lookupFunc(func(_ context.Context, id string) (*domain.User, error) {
		if id == known {
			return nil, errors.New("connection reset")
		}
		return nil, domain.ErrUserNotFound
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "not a uuid", header: "alice", want: http.StatusUnauthorized},
		{name: "unknown user", header: uuid.NewString(), want: http.StatusUnauthorized},
		{name: "lookup failure", header: known, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ginext.New("test")
			r.Use(Actor(users, newTestLogger(t)))
			r.GET("/", func(c *ginext.Context) {
				t.Fatal("handler must not run")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			w := serve(t, r, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestActorFrom_Missing(t *testing.T) {
	r := ginext.New("test")

	var ok bool
	r.GET("/", func(c *ginext.Context) {
		_, ok = ActorFrom(c)
		c.Status(http.StatusOK)
	})

	serve(t, r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	log := newTestLogger(t)

	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log))
	r.GET("/", func(c *ginext.Context) {
		panic("boom")
	})

	w := serve(t, r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestLogger(newTestLogger(t)))
	r.GET("/", func(c *ginext.Context) {
		c.Set("error", "bad input")
		c.Status(http.StatusBadRequest)
	})

	w := serve(t, r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
