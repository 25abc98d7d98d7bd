// Package cli implements the cobra command tree driving the companion.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/TonyLeary/nms-companion/internal/core/ports/driven"
	"github.com/TonyLeary/nms-companion/internal/core/ports/driving"
	"github.com/TonyLeary/nms-companion/internal/logger"
)

// version is set at build time via -ldflags.
var version = "0.1.0"

// Injected services. Set once from cmd before Execute.
var (
	askService        driving.AskService
	followUpService   driving.FollowUpService
	favoritesService  driving.FavoritesService
	conversationStore driven.ConversationStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "nms-companion",
	Short: "Answers where-to-find and how-to questions for No Man's Sky",
	Long: `nms-companion answers short questions like "radiant heart" or
"how to farm nanites" from a built-in guide or a live snapshot of
community posts. Answers are ranked, summarised and always link-free.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

// Services aggregates everything the command tree needs.
type Services struct {
	Ask           driving.AskService
	FollowUp      driving.FollowUpService
	Favorites     driving.FavoritesService
	Conversations driven.ConversationStore
}

// SetServices injects the core services into the command tree.
func SetServices(s *Services) {
	askService = s.Ask
	followUpService = s.FollowUp
	favoritesService = s.Favorites
	conversationStore = s.Conversations
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose pipeline logging")
}
