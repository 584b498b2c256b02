package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFilesCreatesNestedPaths(t *testing.T) {
	dir := WriteFiles(t, map[string]string{
		"index.gmi":     "# Index\n",
		"docs/help.gmi": "=> ../index.gmi Up\n",
	})
	data, err := os.ReadFile(filepath.Join(dir, "docs", "help.gmi"))
	if err != nil {
		t.Fatalf("read nested file: %v", err)
	}
	if string(data) != "=> ../index.gmi Up\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestRepoRootHoldsGoMod(t *testing.T) {
	root := repoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod under %s: %v", root, err)
	}
}
