package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range RootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"get", "post", "put", "patch", "delete", "run", "perf"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
