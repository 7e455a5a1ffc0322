package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aibekm/item-service/internal/domain"
	"github.com/aibekm/item-service/internal/transport/http/handler"
	"github.com/aibekm/item-service/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAuthUsecase implements the unexported authUsecaser interface via
// method matching.
type fakeAuthUsecase struct {
	signup func(ctx context.Context, input usecase.SignupInput) (*domain.User, error)
	login  func(ctx context.Context, email, password string) (string, error)
}

func (f *fakeAuthUsecase) Signup(ctx context.Context, input usecase.SignupInput) (*domain.User, error) {
	return f.signup(ctx, input)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	return f.login(ctx, email, password)
}

func newAuthEngine(uc *fakeAuthUsecase) *gin.Engine {
	h := handler.NewAuthHandler(uc, testLogger())

	r := gin.New()
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)
	return r
}

const validSignupBody = `{
	"email": "ada@example.com",
	"password": "pw-123456",
	"first_name": "Ada",
	"last_name": "Lovelace",
	"contact_number": "9876543210",
	"user_type": "consumer",
	"home_number": "12",
	"address_line1": "1 Main St",
	"pin_code": "560001",
	"city": "Bangalore",
	"state": "Karnataka"
}`

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// ---- Signup ----

func TestSignup_InvalidJSON_Returns400(t *testing.T) {
	w := postJSON(newAuthEngine(&fakeAuthUsecase{}), "/auth/signup", `{bad json}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSignup_MissingFields_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _ usecase.SignupInput) (*domain.User, error) {
			t.Fatal("usecase must not be called for an invalid payload")
			return nil, nil
		},
	}
	w := postJSON(newAuthEngine(uc), "/auth/signup", `{"email":"ada@example.com","password":"pw-123456"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSignup_BadPinCode_Returns400(t *testing.T) {
	body := strings.Replace(validSignupBody, `"560001"`, `"56"`, 1)
	w := postJSON(newAuthEngine(&fakeAuthUsecase{}), "/auth/signup", body)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSignup_DuplicateEmail_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _ usecase.SignupInput) (*domain.User, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	w := postJSON(newAuthEngine(uc), "/auth/signup", validSignupBody)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Email already registered") {
		t.Errorf("body = %q, want duplicate email message", w.Body.String())
	}
}

func TestSignup_Success_Returns200WithoutHash(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, input usecase.SignupInput) (*domain.User, error) {
			return &domain.User{
				ID:           "user-1",
				Email:        input.Email,
				PasswordHash: "$2a$12$secret-hash",
				FirstName:    input.FirstName,
				LastName:     input.LastName,
			}, nil
		},
	}
	w := postJSON(newAuthEngine(uc), "/auth/signup", validSignupBody)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["id"] != "user-1" {
		t.Errorf("id = %v, want user-1", resp["id"])
	}
	if strings.Contains(w.Body.String(), "secret-hash") {
		t.Error("response leaks the password hash")
	}
}

func TestSignup_StorageTimeout_Returns503(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _ usecase.SignupInput) (*domain.User, error) {
			return nil, context.DeadlineExceeded
		},
	}
	w := postJSON(newAuthEngine(uc), "/auth/signup", validSignupBody)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

// ---- Login ----

func TestLogin_InvalidCredentials_Returns400Uniform(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	w := postJSON(newAuthEngine(uc), "/auth/login", `{"email":"ada@example.com","password":"wrong"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid email or password") {
		t.Errorf("body = %q, want uniform credentials message", w.Body.String())
	}
}

func TestLogin_InternalError_Returns500(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, error) {
			return "", errors.New("db down")
		},
	}
	w := postJSON(newAuthEngine(uc), "/auth/login", `{"email":"ada@example.com","password":"pw-123456"}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "db down") {
		t.Error("response leaks internal error details")
	}
}

func TestLogin_Success_ReturnsBearerToken(t *testing.T) {
	const fakeJWT = "header.payload.signature"
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, email, password string) (string, error) {
			if email != "ada@example.com" || password != "pw-123456" {
				t.Errorf("login called with (%q, %q)", email, password)
			}
			return fakeJWT, nil
		},
	}
	w := postJSON(newAuthEngine(uc), "/auth/login", `{"email":"ada@example.com","password":"pw-123456"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.AccessToken != fakeJWT {
		t.Errorf("access_token = %q, want %q", resp.AccessToken, fakeJWT)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("token_type = %q, want bearer", resp.TokenType)
	}
}
