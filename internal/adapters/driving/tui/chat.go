// Package tui provides the interactive follow-up chat view for one
// selected answer card.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/TonyLeary/nms-companion/internal/adapters/driving/tui/styles"
	"github.com/TonyLeary/nms-companion/internal/core/domain"
	"github.com/TonyLeary/nms-companion/internal/core/ports/driven"
	"github.com/TonyLeary/nms-companion/internal/core/ports/driving"
	"github.com/TonyLeary/nms-companion/internal/logger"
)

// ChatModel is the bubbletea model for a follow-up conversation. The
// dispatcher itself never mutates history; this model owns the append
// of both the question and the answer after each dispatch.
type ChatModel struct {
	card      domain.AnswerCard
	dispatch  driving.FollowUpService
	turnStore driven.ConversationStore
	history   []domain.ConversationTurn
	input     textinput.Model
	styles    *styles.Styles
	sessionID string
	width     int
	err       error
}

// NewChat creates a chat model for one card. The conversation store is
// optional; without it turns live only for the session.
func NewChat(card domain.AnswerCard, dispatch driving.FollowUpService, turnStore driven.ConversationStore) *ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Ask about this result..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	m := &ChatModel{
		card:      card,
		dispatch:  dispatch,
		turnStore: turnStore,
		input:     ti,
		styles:    styles.DefaultStyles(),
		sessionID: uuid.New().String(),
		width:     80,
	}
	m.loadHistory()
	return m
}

// loadHistory restores prior turns for this card, if a store is set.
func (m *ChatModel) loadHistory() {
	if m.turnStore == nil {
		return
	}
	history, err := m.turnStore.History(context.Background(), m.card.ID)
	if err != nil {
		logger.Warn("Could not load conversation history: %v", err)
		return
	}
	m.history = history
}

// Init implements tea.Model.
func (m *ChatModel) Init() tea.Cmd {
	logger.Debug("Chat session %s opened for card %s", m.sessionID, m.card.ID)
	return textinput.Blink
}

// Update implements tea.Model.
func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 6

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit dispatches the typed question and appends both turns.
func (m *ChatModel) submit() {
	question := strings.TrimSpace(m.input.Value())
	if question == "" {
		return
	}

	answer, err := m.dispatch.Answer(m.card, question, m.history)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil

	m.appendTurn(domain.ConversationTurn{Role: domain.RoleAsker, Text: question})
	m.appendTurn(domain.ConversationTurn{Role: domain.RoleResponder, Text: answer})
	m.input.Reset()
}

func (m *ChatModel) appendTurn(turn domain.ConversationTurn) {
	m.history = append(m.history, turn)
	if m.turnStore == nil {
		return
	}
	if err := m.turnStore.Append(context.Background(), m.card.ID, turn); err != nil {
		logger.Warn("Could not persist conversation turn: %v", err)
	}
}

// View implements tea.Model.
func (m *ChatModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.card.Title) + "\n")
	b.WriteString(m.styles.Muted.Render(m.card.Summary) + "\n\n")

	for _, turn := range m.history {
		switch turn.Role {
		case domain.RoleAsker:
			b.WriteString(m.styles.Question.Render("you: "+turn.Text) + "\n")
		default:
			b.WriteString(m.styles.Answer.Render(turn.Text) + "\n\n")
		}
	}

	if m.err != nil {
		b.WriteString(m.styles.Muted.Render("("+m.err.Error()+")") + "\n")
	}

	b.WriteString(m.styles.InputField.Render(m.input.View()) + "\n")
	b.WriteString(m.styles.Muted.Render("enter to ask - esc to quit"))
	return b.String()
}

// History returns the current conversation snapshot.
func (m *ChatModel) History() []domain.ConversationTurn {
	out := make([]domain.ConversationTurn, len(m.history))
	copy(out, m.history)
	return out
}
