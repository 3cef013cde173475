package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// WriteImage writes a file of the given size named name into a temp dir and
// returns its path. The content starts with a PNG signature.
func WriteImage(t *testing.T, name string, size int) string {
	t.Helper()
	sig := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	data := bytes.Repeat([]byte{0}, size)
	copy(data, sig)

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
