package httpserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingRoutes struct{}

func (pingRoutes) RegisterRoutes(router fiber.Router) {
	router.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	router.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })
}

func TestServer_HealthAndRegistrars(t *testing.T) {
	srv := NewServer(pingRoutes{})

	for path, want := range map[string]string{"/health": "OK", "/ping": "pong"} {
		resp, err := srv.App().Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, want, string(body))
	}
}

func TestServer_RecoversFromPanic(t *testing.T) {
	srv := NewServer(pingRoutes{})

	resp, err := srv.App().Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = srv.App().Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
