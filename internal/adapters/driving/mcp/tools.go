package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/TonyLeary/nms-companion/internal/core/domain"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Query  string `json:"query" jsonschema:"the item or topic to ask about"`
	Mode   string `json:"mode,omitempty" jsonschema:"answer intent: howto (default) or where"`
	Source string `json:"source,omitempty" jsonschema:"answer source: guide (default) or reddit"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Cards []CardOutput `json:"cards"`
	Count int          `json:"count"`
}

// CardOutput represents a single answer card.
type CardOutput struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Details    string   `json:"details"`
	Source     string   `json:"source"`
	References []string `json:"references,omitempty"`
	Notes      []string `json:"notes,omitempty"`
}

// FavoritesInput is the input schema for the favorites tool. It takes
// no arguments.
type FavoritesInput struct{}

// FavoritesOutput is the output schema for the favorites tool.
type FavoritesOutput struct {
	Cards []CardOutput `json:"cards"`
	Count int          `json:"count"`
}

// registerTools registers all tool handlers with the MCP server. The
// favorites tool is only exposed when a favorites service is wired.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a where-to-find or how-to question about No Man's Sky",
	}, s.handleAsk)

	if s.ports.Favorites != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "favorites",
			Description: "List the player's saved answer cards, most recently saved first",
		}, s.handleFavorites)
	}
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	req := domain.AskRequest{
		Query:  input.Query,
		Mode:   domain.ParseMode(input.Mode),
		Source: domain.ParseSource(input.Source),
	}

	resp, err := s.ports.Ask.Ask(ctx, req)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Cards: make([]CardOutput, len(resp.Cards)),
		Count: len(resp.Cards),
	}

	for i := range resp.Cards {
		output.Cards[i] = CardOutput{
			ID:         resp.Cards[i].ID,
			Title:      resp.Cards[i].Title,
			Summary:    resp.Cards[i].Summary,
			Details:    resp.Cards[i].Details,
			Source:     string(resp.Cards[i].Source),
			References: resp.Cards[i].References,
			Notes:      resp.Cards[i].CommunityNotes,
		}
	}

	return nil, output, nil
}

// handleFavorites handles the favorites tool invocation.
func (s *Server) handleFavorites(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ FavoritesInput,
) (*mcp.CallToolResult, FavoritesOutput, error) {
	cards, err := s.ports.Favorites.List(ctx)
	if err != nil {
		return nil, FavoritesOutput{}, err
	}

	output := FavoritesOutput{
		Cards: make([]CardOutput, len(cards)),
		Count: len(cards),
	}
	for i := range cards {
		output.Cards[i] = CardOutput{
			ID:         cards[i].ID,
			Title:      cards[i].Title,
			Summary:    cards[i].Summary,
			Details:    cards[i].Details,
			Source:     string(cards[i].Source),
			References: cards[i].References,
			Notes:      cards[i].CommunityNotes,
		}
	}
	return nil, output, nil
}
