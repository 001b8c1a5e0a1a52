package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCmd_Flags verifies that connection flags are registered on the root
// command with their defaults.
func TestRootCmd_Flags(t *testing.T) {
	tests := []struct {
		flagName    string
		flagType    string
		expectedVal string
	}{
		{"host", "string", "www.botlibre.com"},
		{"app", "string", ""},
		{"scheme", "string", "https"},
		{"app-id", "string", ""},
		{"user", "string", ""},
		{"password", "string", ""},
		{"token", "string", ""},
		{"domain", "string", ""},
		{"debug", "bool", "false"},
	}
	for _, test := range tests {
		t.Run(test.flagName, func(t *testing.T) {
			flag := rootCmd.PersistentFlags().Lookup(test.flagName)
			require.NotNil(t, flag, "%s flag should be registered on root command", test.flagName)
			assert.Equal(t, test.flagType, flag.Value.Type())
			assert.Equal(t, test.expectedVal, flag.DefValue)
		})
	}
}

// TestSubcommands verifies every subcommand is wired to the root command.
func TestSubcommands(t *testing.T) {
	expected := []string{"chat", "browse", "fetch", "livechat", "user", "upload"}
	registered := map[string]bool{}
	for _, command := range rootCmd.Commands() {
		registered[command.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, registered[name], "%s command should be registered", name)
	}
}
