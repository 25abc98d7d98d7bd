package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage saved answer cards",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved answer cards",
	RunE:  runFavoritesList,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove [source] [id]",
	Short: "Remove a saved answer card",
	Args:  cobra.ExactArgs(2),
	RunE:  runFavoritesRemove,
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	rootCmd.AddCommand(favoritesCmd)
}

func runFavoritesList(cmd *cobra.Command, _ []string) error {
	if favoritesService == nil {
		return errors.New("favorites service not configured")
	}

	cards, err := favoritesService.List(context.Background())
	if err != nil {
		return fmt.Errorf("list favorites: %w", err)
	}

	if len(cards) == 0 {
		cmd.Println("No favorites saved yet. Use `ask --save` to keep a card.")
		return nil
	}

	for i, card := range cards {
		cmd.Printf("  [%d] %s (%s/%s)\n", i+1, card.Title, card.Source, card.ID)
		cmd.Printf("      %s\n\n", card.Summary)
	}
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	if favoritesService == nil {
		return errors.New("favorites service not configured")
	}

	source := domain.ParseSource(args[0])
	if err := favoritesService.Remove(context.Background(), source, args[1]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no favorite %s/%s", source, args[1])
		}
		return fmt.Errorf("remove favorite: %w", err)
	}

	cmd.Printf("Removed %s/%s.\n", source, args[1])
	return nil
}
