// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - KnowledgeStore: the curated, read-only knowledge table
//   - ConfigStore: application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - DiscussionRetriever: live community-post fetch. Without it, the
//     live path always degrades to the no-match card.
//   - FavoriteStore: persistence of saved answer cards.
//   - ConversationStore: persistence of follow-up conversations.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
