package models_test

import (
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Struct tags and field comments are read by swag, keep their columns stable.
func TestSourcesFormatted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.Nil(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.Nil(t, err)

			formatted, err := format.Source(src)
			require.Nil(t, err)
			assert.Equal(t, string(formatted), string(src))
		})
	}
}
