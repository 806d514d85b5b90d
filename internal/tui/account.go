package tui

import (
	"strings"

	"github.com/societyhub/societyhub/models"
)

type accountModel struct {
	principal *models.Principal
}

func (m accountModel) View() string {
	var b strings.Builder

	if m.principal == nil {
		b.WriteString("Not signed in.\n")
	} else {
		p := m.principal
		b.WriteString("Name    " + dashIfEmpty(p.Name) + "\n")
		b.WriteString("Email   " + dashIfEmpty(p.Email) + "\n")
		b.WriteString("Role    " + string(p.Role) + "\n")
		if p.Role == models.RoleResident {
			b.WriteString("Status  " + string(p.Status) + "\n")
			b.WriteString("Flat    " + dashIfEmpty(p.FlatID) + "\n")
		}
	}

	return renderPage("SOCIETYHUB │ MY ACCOUNT", strings.TrimRight(b.String(), "\n"),
		"esc: back │ L: sign out")
}
