package integration

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"chatdesk-be/internal/bootstrap"
	"chatdesk-be/internal/config"
	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/model"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/server"
	"chatdesk-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestDashboardLogin(t *testing.T) {
	// Load .env from root (2 levels up) because tests run in package dir
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}

	if os.Getenv("DB_CONNECTION_STRING") == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	// Seed a dashboard user backed by a tenant row.
	customerId := uuid.New()
	customer := model.Customer{
		Id:   customerId,
		Name: "Login Tenant " + uuid.New().String(),
		Plan: "starter",
	}
	db.Create(&customer)

	pass := "login-test-pass"
	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)

	agentId := uuid.New()
	email := "agent-" + uuid.New().String() + "@example.com"
	agent := model.DashboardUser{
		Id:           agentId,
		UserId:       uuid.New(),
		CustomerId:   customerId,
		Email:        email,
		Role:         "admin",
		PasswordHash: string(hash),
	}
	db.Create(&agent)

	defer func() {
		db.Delete(&model.DashboardUser{}, agentId)
		db.Delete(&model.Customer{}, customerId)
	}()

	t.Run("Login success sets cookie", func(t *testing.T) {
		body, _ := json.Marshal(dto.LoginRequest{Email: email, Password: pass})

		req := httptest.NewRequest("POST", "/api/auth/v1/login", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req, -1)

		assert.Equal(t, 200, resp.StatusCode)

		var result serverutils.Response[dto.LoginResponse]
		json.NewDecoder(resp.Body).Decode(&result)

		assert.True(t, result.Success)
		assert.NotEmpty(t, result.Data.Token)
		assert.Equal(t, email, result.Data.User.Email)
		assert.Equal(t, "admin", result.Data.User.Role)

		var sawCookie bool
		for _, c := range resp.Cookies() {
			if c.Name == serverutils.SessionCookieName && c.Value != "" {
				sawCookie = true
			}
		}
		assert.True(t, sawCookie, "expected session cookie on login")
	})

	t.Run("Invalid password", func(t *testing.T) {
		body, _ := json.Marshal(dto.LoginRequest{Email: email, Password: "wrongpassword"})

		req := httptest.NewRequest("POST", "/api/auth/v1/login", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req, -1)

		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Unknown email", func(t *testing.T) {
		body, _ := json.Marshal(dto.LoginRequest{Email: "nobody@example.com", Password: pass})

		req := httptest.NewRequest("POST", "/api/auth/v1/login", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req, -1)

		assert.Equal(t, 401, resp.StatusCode)
	})
}
