package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDocument writes a content document with front matter under the
// content tree, creating parent directories.
func WriteDocument(t testing.TB, contentDir, relPath, frontMatter, body string) string {
	t.Helper()

	path := filepath.Join(contentDir, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	content := "---\n" + frontMatter + "---\n" + body
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
