package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubPushService struct {
	sendCalls int
	lastReq   *dto.SendPushRequest
}

func (s *stubPushService) Send(ctx context.Context, req *dto.SendPushRequest) (*dto.SendPushResponse, error) {
	if (req.UserId == nil) == (req.CustomerId == nil) {
		return nil, serverutils.NewValidationError("exactly one of userId or customerId is required")
	}
	s.sendCalls++
	s.lastReq = req
	return &dto.SendPushResponse{Success: true, Sent: 2, Total: 3}, nil
}

func (s *stubPushService) Subscribe(ctx context.Context, userId uuid.UUID, req *dto.SubscribeRequest) error {
	return nil
}

func (s *stubPushService) Unsubscribe(ctx context.Context, userId uuid.UUID, req *dto.UnsubscribeRequest) error {
	return nil
}

func newPushTestApp(svc *stubPushService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewPushController(svc, "secret-key", serverutils.NewJwtMiddleware("test-secret")).RegisterRoutes(api)
	return app
}

func sendPush(t *testing.T, app *fiber.App, apiKey string, body map[string]interface{}) (int, []byte) {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/push/send", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-Internal-API-Key", apiKey)
	}

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	return resp.StatusCode, raw
}

func TestPushSendRequiresInternalKey(t *testing.T) {
	svc := &stubPushService{}
	app := newPushTestApp(svc)
	customerId := uuid.New().String()

	body := map[string]interface{}{"title": "t", "body": "b", "customerId": customerId}

	code, _ := sendPush(t, app, "", body)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _ = sendPush(t, app, "wrong-key", body)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	assert.Zero(t, svc.sendCalls, "no fan-out without a valid key")

	code, raw := sendPush(t, app, "secret-key", body)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, 1, svc.sendCalls)

	var res dto.SendPushResponse
	assert.NoError(t, json.Unmarshal(raw, &res))
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 3, res.Total)
}

func TestPushSendValidation(t *testing.T) {
	svc := &stubPushService{}
	app := newPushTestApp(svc)
	customerId := uuid.New().String()
	userId := uuid.New().String()

	// Missing title/body fail struct validation.
	code, _ := sendPush(t, app, "secret-key", map[string]interface{}{"customerId": customerId})
	assert.Equal(t, fiber.StatusBadRequest, code)

	// No target at all.
	code, _ = sendPush(t, app, "secret-key", map[string]interface{}{"title": "t", "body": "b"})
	assert.Equal(t, fiber.StatusBadRequest, code)

	// Both targets.
	code, _ = sendPush(t, app, "secret-key", map[string]interface{}{
		"title": "t", "body": "b", "customerId": customerId, "userId": userId,
	})
	assert.Equal(t, fiber.StatusBadRequest, code)

	assert.Zero(t, svc.sendCalls)
}

func TestPushSendRejectsAllWhenNoKeyConfigured(t *testing.T) {
	svc := &stubPushService{}
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewPushController(svc, "", serverutils.NewJwtMiddleware("test-secret")).RegisterRoutes(api)

	body := map[string]interface{}{"title": "t", "body": "b", "customerId": uuid.New().String()}

	// An unset key must not act as a wildcard.
	code, _ := sendPush(t, app, "", body)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _ = sendPush(t, app, "anything", body)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	assert.Zero(t, svc.sendCalls)
}
