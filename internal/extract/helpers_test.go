package extract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/pawnplanner/internal/defs"
)

// collect writes content to a temporary definition file and returns the
// resolved definitions of kind.
func collect(t *testing.T, kind, content string) []*defs.Definition {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "defs.xml"), []byte(content), 0644))
	files, err := defs.Load(root, nil)
	require.NoError(t, err)
	out, err := defs.Collect(files, kind)
	require.NoError(t, err)
	return out
}
