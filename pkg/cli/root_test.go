package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	assert.NotNil(t, root)
	assert.Equal(t, "syspropc", root.Name)
	assert.NotNil(t, root.Flags)

	for _, name := range []string{"compile", "validate", "backends"} {
		cmd, ok := root.Subcommands[name]
		assert.True(t, ok, "missing subcommand %s", name)
		assert.NotNil(t, cmd.Run)
		assert.NotEmpty(t, cmd.Description)
	}
}
