package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// outputEnv points every output directory at a fresh temporary tree.
func outputEnv(t *testing.T) (dataDir, pageDir, docsDir string) {
	t.Helper()
	root := t.TempDir()
	dataDir = filepath.Join(root, "data")
	pageDir = filepath.Join(root, "page")
	docsDir = filepath.Join(root, "docs")
	t.Setenv("PAWN_OUTPUT_DATA_DIR", dataDir)
	t.Setenv("PAWN_OUTPUT_PAGE_DIR", pageDir)
	t.Setenv("PAWN_OUTPUT_DOCS_DIR", docsDir)
	t.Setenv("PAWN_LOGGING_LEVEL", "error")
	return dataDir, pageDir, docsDir
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(new(nopWriter))
	cmd.SetErr(new(nopWriter))
	return cmd.Execute()
}

type nopWriter struct{}

func (*nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestTraitsCommand_WritesModule(t *testing.T) {
	dataDir, pageDir, _ := outputEnv(t)
	defsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(defsDir, "Traits.xml"), []byte(`<Defs>
  <TraitDef><defName>Neurotic</defName><commonality>1.0</commonality></TraitDef>
</Defs>`), 0644))

	require.NoError(t, execute(t, "traits", `"`+defsDir+`" `))

	ts, err := os.ReadFile(filepath.Join(dataDir, "traits.ts"))
	require.NoError(t, err)
	assert.Equal(t, "export var traits = [{\"name\":\"Neurotic\",\"commonality\":1.0,\"degrees\":{}}];\n", string(ts))
	js, err := os.ReadFile(filepath.Join(pageDir, "traits.js"))
	require.NoError(t, err)
	assert.Equal(t, "/** @type { Trait[] } */\nvar traits = [{\"name\":\"Neurotic\",\"commonality\":1.0,\"degrees\":{}}];\n", string(js))
}

func TestBodypartsCommand_WritesDocsScript(t *testing.T) {
	dataDir, _, docsDir := outputEnv(t)
	defsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(defsDir, "Hair.xml"), []byte(`<Defs>
  <HairDef><defName>Curly</defName></HairDef>
</Defs>`), 0644))

	require.NoError(t, execute(t, "bodyparts", defsDir))

	_, err := os.Stat(filepath.Join(dataDir, "bodyparts.ts"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(docsDir, "bodyparts.js"))
	assert.NoError(t, err)
}

func TestCommand_BadInputFails(t *testing.T) {
	dataDir, _, _ := outputEnv(t)
	defsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(defsDir, "Broken.xml"), []byte(`<Defs><TraitDef Name=x></TraitDef></Defs>`), 0644))

	assert.Error(t, execute(t, "traits", defsDir))
	_, err := os.Stat(dataDir)
	assert.True(t, os.IsNotExist(err))
}

func TestCommand_MissingDefsDir(t *testing.T) {
	outputEnv(t)
	err := execute(t, "backstories")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no definition directory")
}

func TestGenesCommand_RequiresGraphics(t *testing.T) {
	outputEnv(t)
	assert.Error(t, execute(t, "genes", t.TempDir()))
}

func TestWatchCommand_UnknownJob(t *testing.T) {
	outputEnv(t)
	err := execute(t, "watch", "pawns", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown job")
}

func TestCommand_TooManyArgs(t *testing.T) {
	outputEnv(t)
	assert.Error(t, execute(t, "traits", "a", "b"))
}
