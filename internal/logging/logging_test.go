package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "isotopes.log")

	log, closeFn, err := New(path, "debug")
	require.NoError(t, err)

	log.WithField("panel", "References").Info("panel selected")
	require.NoError(t, closeFn())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, "panel selected", entry["msg"])
	assert.Equal(t, "References", entry["panel"])
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNew_NoFileDiscards(t *testing.T) {
	log, closeFn, err := New("", "info")
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	assert.NoError(t, closeFn())
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNew_BadLevel(t *testing.T) {
	_, closeFn, err := New("", "chatty")
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}
