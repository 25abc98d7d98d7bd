package mcp

import (
	"github.com/TonyLeary/nms-companion/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Ask answers queries with ranked answer cards.
	Ask driving.AskService

	// Favorites lists saved cards. Optional.
	Favorites driving.FavoritesService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ask == nil {
		return ErrMissingAskService
	}
	// Favorites is optional
	return nil
}
