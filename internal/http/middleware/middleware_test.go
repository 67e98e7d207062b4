package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"resumeapi/internal/auth"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey)
		return c.SendString(rid.(string))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		// Check if it's readable in handler (from response body)
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, existingID, buf.String())
	})

	t.Run("should replace unusable request ids", func(t *testing.T) {
		for _, bad := range []string{"has space", strings.Repeat("a", 200)} {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set(RequestIDHeader, bad)

			resp, _ := app.Test(req)

			got := resp.Header.Get(RequestIDHeader)
			assert.NotEqual(t, bad, got)
			assert.Len(t, got, 36)
		}
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	loc := time.UTC

	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, loc))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var logData map[string]any
	err := json.Unmarshal(buf.Bytes(), &logData)
	assert.NoError(t, err)

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/test", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["ts"])
}

func TestLogger_FiberErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(LoggerWithWriter(&buf, time.UTC))
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	_, err := app.Test(httptest.NewRequest("GET", "/teapot", nil))
	assert.NoError(t, err)

	var logData map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &logData))
	assert.Equal(t, float64(fiber.StatusTeapot), logData["status"])
	assert.Equal(t, "http_request", logData["msg"])
}

type stubValidator struct{}

func (stubValidator) ValidateToken(token string) (*auth.Claims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return &auth.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}, nil
}

func TestRequireAuth(t *testing.T) {
	app := fiber.New()
	app.Use(RequireAuth(stubValidator{}))
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer good", wantStatus: fiber.StatusOK, wantBody: "user-1"},
		{name: "missing header", header: "", wantStatus: fiber.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", wantStatus: fiber.StatusUnauthorized},
		{name: "empty token", header: "Bearer  ", wantStatus: fiber.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", wantStatus: fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantBody != "" {
				buf := new(bytes.Buffer)
				buf.ReadFrom(resp.Body)
				assert.Equal(t, tt.wantBody, buf.String())
			}
		})
	}
}

func TestUserID_Anonymous(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("[" + UserID(c) + "]")
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/", nil))
	buf := new(bytes.Buffer)
	buf.ReadFrom(resp.Body)
	assert.Equal(t, "[]", buf.String())
}

func TestLogger_IncludesAuthenticatedUser(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(LoggerWithWriter(&buf, time.UTC))
	app.Get("/resumes", RequireAuth(stubValidator{}), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/resumes", nil)
	req.Header.Set("Authorization", "Bearer good")
	_, err := app.Test(req)
	assert.NoError(t, err)

	var logData map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &logData))
	assert.Equal(t, "user-1", logData["user_id"])
}
