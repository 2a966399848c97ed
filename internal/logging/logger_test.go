package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := New(level, false)
		require.NoError(t, err, "level %q", level)
		assert.NotNil(t, logger.Logger)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("verbose", false)
	assert.Error(t, err)
}

func TestNewDefaultNeverNil(t *testing.T) {
	assert.NotNil(t, NewDefault().Logger)
	assert.NotNil(t, NewNop().Logger)
}
