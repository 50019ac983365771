package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel("warn")

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, GetLevel())

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, logrus.DebugLevel, GetLevel())
}

func TestNewLoggerCarriesModule(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	NewLogger("Encoder").WithField("blocks", 3).Warn("encoded")
	assert.Contains(t, buf.String(), "name=Encoder")
	assert.Contains(t, buf.String(), "blocks=3")
}

func TestAddTracer(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	require.NoError(t, SetLevel("trace"))
	defer func() {
		ResetHooks()
		SetOutput(os.Stderr)
		SetLevel("warn")
	}()

	path := filepath.Join(t.TempDir(), "hamenc")
	AddTracer(path)

	logger := NewLogger("Tracer")
	logger.Trace("block")
	logger.Warn("odd")

	trace, err := os.ReadFile(path + ".trace")
	require.NoError(t, err)
	assert.Contains(t, string(trace), `"msg":"block"`)
	assert.Contains(t, string(trace), `"name":"Tracer"`)

	warn, err := os.ReadFile(path + ".warn")
	require.NoError(t, err)
	assert.Contains(t, string(warn), `"msg":"odd"`)
	assert.NotContains(t, string(warn), "block")
}
