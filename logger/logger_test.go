// file: logger/logger_test.go
package logger

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_WritesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitLogger(dir))
	defer configure(os.Stdout)

	Info.Println("hello from the test")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(dir + "/" + entries[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO: ")
	assert.Contains(t, string(data), "hello from the test")
}

func TestInitLogger_EmptyDirKeepsStdout(t *testing.T) {
	assert.NoError(t, InitLogger(""))
	assert.NotNil(t, Error)
}

func TestSetLogLevel_ProductionDiscardsDebug(t *testing.T) {
	configure(os.Stdout)
	SetLogLevel("production")
	assert.Equal(t, io.Discard, Debug.Writer())

	configure(os.Stdout)
	SetLogLevel("development")
	assert.Equal(t, os.Stdout, Debug.Writer())
}
