package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatCommand_Definition(t *testing.T) {
	assert.Equal(t, "chat [query]", chatCmd.Use)
	assert.NotEmpty(t, chatCmd.Short)
	assert.NotNil(t, chatCmd.Flags().Lookup("mode"))
	assert.NotNil(t, chatCmd.Flags().Lookup("source"))
}

func TestChatCommand_NoServices(t *testing.T) {
	origAsk := askService
	origFollowUp := followUpService
	defer func() {
		askService = origAsk
		followUpService = origFollowUp
	}()

	askService = nil
	_, err := executeCommand(t, "chat", "nanites")
	assert.Error(t, err)

	askService = &mockAskService{}
	followUpService = nil
	_, err = executeCommand(t, "chat", "nanites")
	assert.Error(t, err)
}

func TestMCPCommand_Definition(t *testing.T) {
	assert.Equal(t, "mcp", mcpCmd.Use)
	assert.NotEmpty(t, mcpCmd.Short)
	assert.NotNil(t, mcpCmd.Flags().Lookup("http"))
}

func TestMCPCommand_NoService(t *testing.T) {
	origAsk := askService
	defer func() { askService = origAsk }()
	askService = nil

	_, err := executeCommand(t, "mcp")
	assert.Error(t, err)
}
