package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/TonyLeary/nms-companion/internal/adapters/driving/tui"
	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

var (
	chatMode   string
	chatSource string
)

var chatCmd = &cobra.Command{
	Use:   "chat [query]",
	Short: "Ask a question and discuss the top answer interactively",
	Long: `Runs the query, takes the top answer card and opens an
interactive follow-up conversation about it.

Controls:
  Enter - Ask the typed question
  Esc   - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatMode, "mode", "m", "howto", `answer intent: "howto" or "where"`)
	chatCmd.Flags().StringVarP(&chatSource, "source", "s", "guide", `answer source: "guide" or "reddit"`)
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, args []string) error {
	if askService == nil {
		return errors.New("ask service not configured")
	}
	if followUpService == nil {
		return errors.New("follow-up service not configured")
	}

	resp, err := askService.Ask(context.Background(), domain.AskRequest{
		Query:  args[0],
		Mode:   domain.ParseMode(chatMode),
		Source: domain.ParseSource(chatSource),
	})
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	model := tui.NewChat(resp.Cards[0], followUpService, conversationStore)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("chat session failed: %w", err)
	}
	return nil
}
