package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompileCommand(t *testing.T) {
	cmd := newCompileCommand()

	assert.Equal(t, "compile", cmd.Name)
	assert.NotNil(t, cmd.Run)

	assert.NotNil(t, cmd.Flags.Lookup("schema"))
	assert.NotNil(t, cmd.Flags.Lookup("decl-dir"))
	assert.NotNil(t, cmd.Flags.Lookup("def-dir"))
	assert.NotNil(t, cmd.Flags.Lookup("include-path"))
	assert.NotNil(t, cmd.Flags.Lookup("language"))
}

func TestRunCompileMissingSchema(t *testing.T) {
	err := runCompile(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-schema")
}

func TestRunCompile(t *testing.T) {
	schemaPath := writeTestSchema(t)
	declDir := t.TempDir()
	defDir := t.TempDir()

	err := runCompile([]string{
		"-schema", schemaPath,
		"-decl-dir", declDir,
		"-def-dir", defDir,
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(declDir, "CliProperties.sysprop.h"))
	assert.FileExists(t, filepath.Join(defDir, "CliProperties.sysprop.cpp"))

	// The default include path comes from the schema file name.
	source, err := os.ReadFile(filepath.Join(defDir, "CliProperties.sysprop.cpp"))
	require.NoError(t, err)
	assert.Contains(t, string(source), "#include <CliProperties.sysprop.h>")
}

func TestRunCompileInvalidSchema(t *testing.T) {
	schemaPath := filepath.Join(t.TempDir(), "Bad.sysprop")
	require.NoError(t, os.WriteFile(schemaPath, []byte("owner: Platform\nmodule: \"nodots\"\n"), 0644))

	err := runCompile([]string{"-schema", schemaPath, "-decl-dir", t.TempDir(), "-def-dir", t.TempDir()})
	require.Error(t, err)
}

func writeTestSchema(t *testing.T) string {
	t.Helper()
	content := `owner: Platform
module: "com.example.CliProperties"

prop {
    api_name: "enabled"
    type: Boolean
    access: ReadWrite
}
`
	path := filepath.Join(t.TempDir(), "CliProperties.sysprop")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
