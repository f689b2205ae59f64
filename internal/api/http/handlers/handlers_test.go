package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/spec-kit/account-service/internal/api/http"
	"github.com/spec-kit/account-service/internal/api/http/handlers"
	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/observability"
	"github.com/spec-kit/account-service/internal/repository"
	"github.com/spec-kit/account-service/internal/service"
)

// memoryUserRepo is an in-memory stand-in for the Postgres store. It enforces
// the same contract: unique email, store-generated ids, nil result for a
// missing update id, idempotent delete. failWith forces a store fault.
type memoryUserRepo struct {
	mu       sync.Mutex
	seq      int
	users    map[string]*domain.User
	failWith error
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*domain.User)}
}

func (m *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.seq++
	user.ID = fmt.Sprintf("id-%d", m.seq)
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, user := range m.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memoryUserRepo) List(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]domain.User, 0, len(m.users))
	for i := 1; i <= m.seq; i++ {
		if user, ok := m.users[fmt.Sprintf("id-%d", i)]; ok {
			listed := *user
			listed.PasswordHash = ""
			out = append(out, listed)
		}
	}
	return out, nil
}

func (m *memoryUserRepo) UpdateByID(_ context.Context, id string, fields repository.UserUpdate) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	if fields.Email != nil {
		for otherID, other := range m.users {
			if otherID != id && other.Email == *fields.Email {
				return nil, repository.ErrDuplicateEmail
			}
		}
		user.Email = *fields.Email
	}
	if fields.Name != nil {
		user.Name = *fields.Name
	}
	clone := *user
	return &clone, nil
}

func (m *memoryUserRepo) DeleteByID(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.users, id)
	return nil
}

func (m *memoryUserRepo) countByEmail(email string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, user := range m.users {
		if user.Email == email {
			n++
		}
	}
	return n
}

func (m *memoryUserRepo) hashFor(t *testing.T, id string) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		t.Fatalf("no user with id %q", id)
	}
	return user.PasswordHash
}

func (m *memoryUserRepo) fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

func newTestApp(repo repository.UserRepository) *fiber.App {
	cfg := config.Config{}
	cfg.Auth.BcryptCost = bcrypt.MinCost

	accounts := service.NewAccountService(cfg, service.Dependencies{UserRepo: repo})

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler("test", "dev", nil, nil),
		Auth:   handlers.NewAuthHandler(accounts),
		Users:  handlers.NewUsersHandler(accounts),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func registerUser(t *testing.T, app *fiber.App, name, email, password string) {
	t.Helper()
	resp, raw := doJSON(t, app, http.MethodPost, "/register", fiber.Map{
		"nombre": name, "correo": email, "contraseña": password,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", email, resp.StatusCode, raw)
	}
}

func decodeMessage(t *testing.T, raw []byte) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode message from %s: %v", raw, err)
	}
	return body.Message
}
