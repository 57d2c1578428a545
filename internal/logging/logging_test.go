package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/panseq-form/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, slog.LevelInfo)
	log.Debug("hidden")
	log.Info("transferred", "pair", "query", "count", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=transferred")
	assert.Contains(t, out, "pair=query")
}

func TestSetup_Debug(t *testing.T) {
	t.Cleanup(func() { _, _ = logging.Setup(false, "") })

	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	closeFn, err := logging.Setup(true, path)
	require.NoError(t, err)

	slog.Debug("submit", "mode", "pan")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mode=pan")
}

func TestSetup_Disabled(t *testing.T) {
	closeFn, err := logging.Setup(false, "")
	require.NoError(t, err)
	assert.NoError(t, closeFn())
}
