package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/societyhub/societyhub/internal/guard"
	"github.com/societyhub/societyhub/models"
)

type entryKind int

const (
	entryList entryKind = iota
	entryForm
	entryAccount
)

type menuEntry struct {
	label string
	path  string
	kind  entryKind
	res   resource
	form  formKind
}

// buildMenu assembles the dashboard for a principal. Every candidate entry
// carries its route; the route guard decides which ones the principal may
// actually see, so the menu and the navigation rules can never disagree.
func buildMenu(principal *models.Principal) []menuEntry {
	var candidates []menuEntry

	if principal != nil {
		switch principal.Role {
		case models.RoleAdmin:
			candidates = []menuEntry{
				{label: "Flats", path: guard.AdminPrefix + "/flats", kind: entryList, res: resFlats},
				{label: "Residents", path: guard.AdminPrefix + "/residents", kind: entryList, res: resResidents},
				{label: "Access requests", path: guard.AdminPrefix + "/requests", kind: entryList, res: resRequests},
				{label: "Complaints", path: guard.AdminPrefix + "/complaints", kind: entryList, res: resComplaints},
				{label: "Maintenance", path: guard.AdminPrefix + "/maintenance", kind: entryList, res: resMaintenance},
				{label: "Notice board", path: guard.AdminPrefix + "/notices", kind: entryList, res: resNotices},
			}
		case models.RoleResident:
			candidates = []menuEntry{
				{label: "My complaints", path: guard.ResidentPrefix + "/complaints", kind: entryList, res: resComplaints},
				{label: "Maintenance bills", path: guard.ResidentPrefix + "/maintenance", kind: entryList, res: resMaintenance},
				{label: "Notice board", path: guard.ResidentPrefix + "/notices", kind: entryList, res: resNotices},
			}
			if principal.FlatID == "" {
				candidates = append(candidates, menuEntry{
					label: "Request flat access", path: guard.DashboardPath, kind: entryForm, form: formAccessRequest,
				})
			}
		case models.RoleSecurity:
			candidates = []menuEntry{
				{label: "Gate log", path: guard.SecurityPrefix + "/visitors", kind: entryList, res: resVisitors},
				{label: "Notice board", path: guard.SecurityPrefix + "/notices", kind: entryList, res: resNotices},
			}
		}
	}

	candidates = append(candidates, menuEntry{label: "My account", path: guard.AccountPath, kind: entryAccount})

	entries := make([]menuEntry, 0, len(candidates))
	for _, e := range candidates {
		if guard.Evaluate(principal, e.path).Allowed {
			entries = append(entries, e)
		}
	}
	return entries
}

type menuModel struct {
	principal *models.Principal
	entries   []menuEntry
	idx       int
	status    string
}

func newMenuModel(principal *models.Principal) menuModel {
	return menuModel{principal: principal, entries: buildMenu(principal)}
}

func (m menuModel) selected() (menuEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return menuEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	var b strings.Builder

	if m.principal != nil {
		b.WriteString(m.principal.Name)
		b.WriteString(" │ ")
		b.WriteString(string(m.principal.Role))
		if m.principal.Role == models.RoleResident && m.principal.Status != models.StatusActive {
			b.WriteString(" │ ")
			b.WriteString(string(m.principal.Status))
		}
		b.WriteString("\n\n")
	}

	if m.principal != nil && m.principal.Role == models.RoleResident && m.principal.Status == models.StatusPending {
		b.WriteString("Your account is awaiting approval. You can request flat\naccess and check back later.\n\n")
	}

	for i, e := range m.entries {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(e.label)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("SOCIETYHUB │ DASHBOARD", strings.TrimRight(b.String(), "\n"),
		"enter: open │ ↑/↓: navigate │ r: refresh │ L: sign out")
}
