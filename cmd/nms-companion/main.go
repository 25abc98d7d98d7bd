// Command nms-companion answers where-to-find and how-to questions for
// No Man's Sky from a built-in guide or live community posts.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/TonyLeary/nms-companion/internal/adapters/driven/config/file"
	"github.com/TonyLeary/nms-companion/internal/adapters/driven/discussion/reddit"
	"github.com/TonyLeary/nms-companion/internal/adapters/driven/knowledge/static"
	"github.com/TonyLeary/nms-companion/internal/adapters/driven/storage/sqlite"
	"github.com/TonyLeary/nms-companion/internal/adapters/driving/cli"
	"github.com/TonyLeary/nms-companion/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := file.NewConfigStore(os.Getenv("NMS_COMPANION_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	discussion := reddit.NewClient(
		reddit.WithSubreddit(config.GetString("reddit.subreddit")),
		reddit.WithWindow(config.GetString("reddit.window")),
		reddit.WithLimit(config.GetInt("reddit.limit")),
		reddit.WithTimeout(time.Duration(config.GetInt("reddit.timeout_seconds"))*time.Second),
	)

	store, err := sqlite.NewStore(config.GetString("data.dir"))
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	askService := services.NewAskService(static.New(), discussion)
	if secs := config.GetInt("search.timeout_seconds"); secs > 0 {
		askService.SetFetchTimeout(time.Duration(secs) * time.Second)
	}

	cli.SetServices(&cli.Services{
		Ask:           askService,
		FollowUp:      services.NewFollowUpService(),
		Favorites:     services.NewFavoritesService(store.FavoriteStore()),
		Conversations: store.ConversationStore(),
	})

	return cli.Execute()
}
