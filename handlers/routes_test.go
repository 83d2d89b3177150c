package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go-slug-shortener/config"
	"go-slug-shortener/handlers/mocks"
)

func setupTest() (*gin.Engine, *mocks.MockURLHandler, *config.Config) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mockHandler := &mocks.MockURLHandler{}
	cfg := config.DefaultConfig()
	return router, mockHandler, cfg
}

func TestRegisterRoutes_ShortenURL(t *testing.T) {
	router, mockHandler, cfg := setupTest()
	mockHandler.On("ShortenURL", mock.Anything).Run(func(args mock.Arguments) {
		c := args.Get(0).(*gin.Context)
		c.JSON(http.StatusOK, gin.H{})
	}).Return()

	RegisterRoutes(router, mockHandler, cfg)

	req, _ := http.NewRequest("POST", "/shorten", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	mockHandler.AssertExpectations(t)
}

func TestRegisterRoutes_GetURL(t *testing.T) {
	router, mockHandler, cfg := setupTest()
	var slug string
	mockHandler.On("GetURL", mock.Anything).Run(func(args mock.Arguments) {
		c := args.Get(0).(*gin.Context)
		slug = c.Param("slug")
		c.JSON(http.StatusOK, gin.H{})
	}).Return()

	RegisterRoutes(router, mockHandler, cfg)

	req, _ := http.NewRequest("GET", "/url/abc123", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "abc123", slug)
}

func TestRegisterRoutes_HealthCheck(t *testing.T) {
	router, mockHandler, cfg := setupTest()
	mockHandler.On("HealthCheck", mock.Anything).Run(func(args mock.Arguments) {
		c := args.Get(0).(*gin.Context)
		c.String(http.StatusOK, "OK")
	}).Return()

	RegisterRoutes(router, mockHandler, cfg)

	req, _ := http.NewRequest("GET", "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestRegisterRoutes_Metrics(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		router, mockHandler, cfg := setupTest()
		RegisterRoutes(router, mockHandler, cfg)

		req, _ := http.NewRequest("GET", "/metrics", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.True(t, strings.Contains(resp.Body.String(), "http_requests_in_flight"))
	})

	t.Run("Disabled", func(t *testing.T) {
		router, mockHandler, cfg := setupTest()
		cfg.MetricsEnabled = false
		RegisterRoutes(router, mockHandler, cfg)

		req, _ := http.NewRequest("GET", "/metrics", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestRegisterRoutes_UnknownRoute(t *testing.T) {
	router, mockHandler, cfg := setupTest()
	RegisterRoutes(router, mockHandler, cfg)

	for _, path := range []string{"/abc123", "/url/abc123/extra"} {
		req, _ := http.NewRequest("GET", path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		assert.Equal(t, http.StatusNotFound, resp.Code, path)
	}
	mockHandler.AssertNotCalled(t, "GetURL", mock.Anything)
}
