package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

var (
	askMode   string
	askSource string
	askJSON   bool
	askSave   bool
)

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Ask a where-to-find or how-to question",
	Long: `Ranks the built-in guide or a live snapshot of community posts
against the query and prints answer cards. When nothing matches, a
single no-match card explains what to try next.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askMode, "mode", "m", "howto", `answer intent: "howto" or "where"`)
	askCmd.Flags().StringVarP(&askSource, "source", "s", "guide", `answer source: "guide" or "reddit"`)
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output cards as JSON")
	askCmd.Flags().BoolVar(&askSave, "save", false, "save the top card to favorites")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if askService == nil {
		return errors.New("ask service not configured")
	}

	ctx := context.Background()
	req := domain.AskRequest{
		Query:  args[0],
		Mode:   domain.ParseMode(askMode),
		Source: domain.ParseSource(askSource),
	}

	resp, err := askService.Ask(ctx, req)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askSave && favoritesService != nil && len(resp.Cards) > 0 {
		if err := favoritesService.Save(ctx, resp.Cards[0]); err != nil {
			return fmt.Errorf("save favorite: %w", err)
		}
		cmd.Printf("Saved %q to favorites.\n\n", resp.Cards[0].Title)
	}

	if askJSON {
		return outputCardsJSON(cmd, resp)
	}
	return outputCards(cmd, resp)
}

func outputCardsJSON(cmd *cobra.Command, resp *domain.AskResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputCards(cmd *cobra.Command, resp *domain.AskResponse) error {
	cmd.Printf("Query: %q (%s)\n\n", resp.Query, resp.Mode.Label())

	for i, card := range resp.Cards {
		cmd.Printf("  [%d] %s (%s)\n", i+1, card.Title, card.Source)
		cmd.Printf("      %s\n", card.Summary)
		for _, line := range strings.Split(card.Details, "\n") {
			cmd.Printf("      %s\n", line)
		}
		if len(card.References) > 0 {
			cmd.Printf("      References: %s\n", strings.Join(card.References, "; "))
		}
		if card.Storyboard != nil {
			cmd.Printf("      Storyboard: %s (%d steps)\n", card.Storyboard.Title, len(card.Storyboard.Segments))
		}
		cmd.Println()
	}

	return nil
}
