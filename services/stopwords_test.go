package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultStopWords(t *testing.T) {
	t.Parallel()

	sw := DefaultStopWords()
	for _, w := range []string{"the", "and", "this", "is", "so", "i"} {
		assert.True(t, sw.Contains(w), w)
	}
	for _, w := range []string{"love", "camera", "amazing", "video"} {
		assert.False(t, sw.Contains(w), w)
	}
}

func TestLoadStopWords_MergesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.json")
	require.NoError(t, os.WriteFile(custom, []byte(`["Subscribe", " lol ", ""]`), 0o600))
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{not json`), 0o600))

	sw := LoadStopWords(zap.NewNop(), custom, broken, filepath.Join(dir, "missing.json"), "")

	assert.True(t, sw.Contains("subscribe"))
	assert.True(t, sw.Contains("lol"))
	assert.True(t, sw.Contains("the"))
	assert.False(t, sw.Contains(""))
}
