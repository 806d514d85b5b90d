// Package tui is the terminal front end. One Bubble Tea program covers the
// whole application: session restore, the auth screens and the role-scoped
// main screens, with the route guard consulted on every navigation.
package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/societyhub/societyhub/internal/logger"
	"github.com/societyhub/societyhub/internal/service"
	"github.com/societyhub/societyhub/internal/session"
)

type TUI struct {
	services *service.ClientServices
	session  *session.Store
	logger   *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(services *service.ClientServices, sess *session.Store, log *logger.Logger) *TUI {
	return &TUI{services: services, session: sess, logger: log}
}

// Run blocks until the user quits or the program fails.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.session)

	t.mu.Lock()
	t.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	program := t.program
	t.mu.Unlock()

	_, err := program.Run()
	return err
}

// NotifySessionExpired lands the UI on the login screen. It is called from
// the gateway's unauthorized hook, i.e. from outside the Bubble Tea loop,
// after the session store has already been invalidated.
func (t *TUI) NotifySessionExpired() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(sessionExpiredMsg{})
	}
}
