package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInit(t *testing.T) {
	// Assert that logger is properly initialized
	assert.NotNil(t, logger)
	assert.IsType(t, &zap.Logger{}, logger)

	// Production loggers log at Info and above
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}
