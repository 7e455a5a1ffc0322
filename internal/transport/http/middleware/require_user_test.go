package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aibekm/item-service/internal/domain"
	"github.com/aibekm/item-service/internal/transport/http/middleware"
)

type fakeUserRepo struct {
	findByID func(ctx context.Context, id string) (*domain.User, error)
}

func (r *fakeUserRepo) Create(_ context.Context, _ *domain.User) (*domain.User, error) {
	panic("not used")
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	panic("not used")
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findByID(ctx, id)
}

const validUserID = "0a6e8a33-92f7-4ef2-8f06-13b17c8a95c1"

func newRequireUserEngine(repo *fakeUserRepo, userID string) *gin.Engine {
	r := gin.New()
	setSubject := func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
	r.GET("/protected", setSubject, middleware.RequireUser(repo, testLogger()), func(c *gin.Context) {
		user := c.MustGet("user").(*domain.User)
		c.String(http.StatusOK, "%s", user.Email)
	})
	return r
}

func TestRequireUser_MalformedSubject_Returns401(t *testing.T) {
	repo := &fakeUserRepo{
		findByID: func(_ context.Context, _ string) (*domain.User, error) {
			t.Fatal("repo must not be queried for a malformed subject")
			return nil, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	newRequireUserEngine(repo, "not-a-uuid").ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireUser_UnknownSubject_Returns401(t *testing.T) {
	repo := &fakeUserRepo{
		findByID: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	newRequireUserEngine(repo, validUserID).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireUser_StorageTimeout_Returns503(t *testing.T) {
	repo := &fakeUserRepo{
		findByID: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, context.DeadlineExceeded
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	newRequireUserEngine(repo, validUserID).ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestRequireUser_RepoError_Returns500(t *testing.T) {
	repo := &fakeUserRepo{
		findByID: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, errors.New("db down")
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	newRequireUserEngine(repo, validUserID).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestRequireUser_KnownSubject_SetsUser(t *testing.T) {
	repo := &fakeUserRepo{
		findByID: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Email: "test@example.com"}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	newRequireUserEngine(repo, validUserID).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "test@example.com" {
		t.Errorf("body = %q, want test@example.com", w.Body.String())
	}
}
