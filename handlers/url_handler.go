// Package handlers provides HTTP request handlers for the slug shortener service.
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go-slug-shortener/config"
	"go-slug-shortener/services"
	"go-slug-shortener/types"
	"go.uber.org/zap"
)

const (
	invalidRequestBody = "Invalid request body"
	urlRequired        = "URL is required"
	invalidURLProvided = "Invalid URL provided"
	urlNotFound        = "URL not found"
	errorCreatingURL   = "Error creating short URL"
	errorRetrievingURL = "Error retrieving URL"
	errorTimeout       = "Request timed out"
	slugSpaceExhausted = "Could not allocate a unique slug"
)

// URLHandlerInterface defines the methods that a URL handler should implement.
type URLHandlerInterface interface {
	ShortenURL(c *gin.Context)
	GetURL(c *gin.Context)
	HealthCheck(c *gin.Context)
}

// handleError is a helper function to handle errors and send appropriate responses
func (h *URLHandler) handleError(c *gin.Context, err error, customMessages map[error]string) {
	var statusCode int
	var errorMessage string

	switch {
	case errors.Is(err, services.ErrSlugNotFound):
		statusCode = http.StatusNotFound
		errorMessage = customMessages[services.ErrSlugNotFound]
	case errors.Is(err, services.ErrSlugSpaceExhausted):
		h.logger.Error("Slug space exhausted", zap.Error(err))
		statusCode = http.StatusServiceUnavailable
		errorMessage = customMessages[services.ErrSlugSpaceExhausted]
	case errors.Is(err, context.DeadlineExceeded):
		statusCode = http.StatusRequestTimeout
		errorMessage = customMessages[context.DeadlineExceeded]
	default:
		h.logger.Error("Unexpected error", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errorMessage = customMessages[nil]
		if errorMessage == "" {
			errorMessage = "Internal server error"
		}
	}

	c.JSON(statusCode, gin.H{"error": errorMessage})
}

// URLHandler struct holds the dependencies for handling URL-related operations.
type URLHandler struct {
	service  services.URLService
	validate *validator.Validate
	config   *config.Config
	logger   *zap.Logger
}

// NewURLHandler creates and returns a new URLHandler instance.
// It fails if any dependency is missing or ctx is already done.
func NewURLHandler(ctx context.Context, service services.URLService, cfg *config.Config, logger *zap.Logger) (URLHandlerInterface, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil")
	}
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, errors.New("invalid request timeout configuration")
	}

	handler := &URLHandler{
		service:  service,
		validate: validator.New(),
		config:   cfg,
		logger:   logger,
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	return handler, nil
}

// ShortenURL stores the posted URL under a new slug.
// A missing or empty "url" field is rejected before the service is called.
func (h *URLHandler) ShortenURL(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.RequestTimeout)
	defer cancel()

	input, err := bindShortenRequest(c)
	if err != nil {
		h.logger.Info("Error decoding request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidRequestBody})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		h.logger.Info("Missing URL in request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": urlRequired})
		return
	}

	if h.config.StrictURLValidation {
		if err := h.validate.Var(input.URL, "url"); err != nil {
			h.logger.Info("Invalid URL in request", zap.String("url", input.URL))
			c.JSON(http.StatusBadRequest, gin.H{"error": invalidURLProvided})
			return
		}
	}

	record, err := h.service.Shorten(ctx, input.URL)
	if err != nil {
		h.handleError(c, err, map[error]string{
			services.ErrSlugSpaceExhausted: slugSpaceExhausted,
			context.DeadlineExceeded:       errorTimeout,
			nil:                            errorCreatingURL,
		})
		return
	}

	h.logger.Info("URL shortened",
		zap.String("slug", record.Slug),
		zap.String("url", record.URL))
	c.JSON(http.StatusOK, types.NewURLResponse(record))
}

// GetURL returns the original URL stored under the slug path parameter as JSON.
func (h *URLHandler) GetURL(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.RequestTimeout)
	defer cancel()

	slug := c.Param("slug")

	record, err := h.service.Resolve(ctx, slug)
	if err != nil {
		if errors.Is(err, services.ErrSlugNotFound) {
			h.logger.Debug("Slug not found", zap.String("slug", slug))
		}
		h.handleError(c, err, map[error]string{
			services.ErrSlugNotFound: urlNotFound,
			context.DeadlineExceeded: errorTimeout,
			nil:                      errorRetrievingURL,
		})
		return
	}

	c.JSON(http.StatusOK, types.NewURLResponse(record))
}

// bindShortenRequest decodes the JSON body. An empty body decodes to the zero
// request so that it is reported as a missing URL rather than a bad body.
func bindShortenRequest(c *gin.Context) (types.ShortenRequest, error) {
	var input types.ShortenRequest
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return input, nil
	}
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		return types.ShortenRequest{}, err
	}
	return input, nil
}
