package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/societyhub/societyhub/internal/service"
	"github.com/societyhub/societyhub/models"
)

// statusLingerTime is how long a confirmation line stays on screen.
const statusLingerTime = 3 * time.Second

type resource int

const (
	resFlats resource = iota
	resResidents
	resRequests
	resComplaints
	resMaintenance
	resNotices
	resVisitors
)

func (r resource) title() string {
	switch r {
	case resFlats:
		return "FLATS"
	case resResidents:
		return "RESIDENTS"
	case resRequests:
		return "ACCESS REQUESTS"
	case resComplaints:
		return "COMPLAINTS"
	case resMaintenance:
		return "MAINTENANCE"
	case resNotices:
		return "NOTICE BOARD"
	case resVisitors:
		return "GATE LOG"
	default:
		return "RECORDS"
	}
}

// listModel is the shared listing screen for every mirrored resource. It
// renders straight from the service's mirror, so a background refresh or a
// confirmed mutation shows up on the next repaint without extra plumbing.
type listModel struct {
	ctx       context.Context
	services  *service.ClientServices
	principal *models.Principal

	res     resource
	idx     int
	status  string
	lastErr error
}

func newListModel(ctx context.Context, services *service.ClientServices, principal *models.Principal, res resource) listModel {
	return listModel{ctx: ctx, services: services, principal: principal, res: res}
}

type listRow struct {
	id   string
	text string
}

func (m listModel) rows() []listRow {
	switch m.res {
	case resFlats:
		flats := m.services.Flats.Records.All()
		rows := make([]listRow, 0, len(flats))
		for _, f := range flats {
			rows = append(rows, listRow{id: f.ID, text: fmt.Sprintf("%s-%s │ floor %d │ %s",
				f.Wing, f.Number, f.Floor, dashIfEmpty(f.OccupantName))})
		}
		return rows
	case resResidents:
		residents := m.services.Residents.Records.All()
		rows := make([]listRow, 0, len(residents))
		for _, r := range residents {
			rows = append(rows, listRow{id: r.ID, text: fmt.Sprintf("%-20s │ %-24s │ %s",
				fitText(r.Name, 20), fitText(r.Email, 24), r.Status)})
		}
		return rows
	case resRequests:
		requests := m.services.AccessRequests.Records.All()
		rows := make([]listRow, 0, len(requests))
		for _, r := range requests {
			rows = append(rows, listRow{id: r.ID, text: fmt.Sprintf("%-20s │ flat %-8s │ %s",
				fitText(dashIfEmpty(r.UserName), 20), fitText(r.FlatID, 8), r.Status)})
		}
		return rows
	case resComplaints:
		complaints := m.services.Complaints.Records.All()
		rows := make([]listRow, 0, len(complaints))
		for _, c := range complaints {
			rows = append(rows, listRow{id: c.ID, text: fmt.Sprintf("%-32s │ %s",
				fitText(c.Title, 32), c.Status)})
		}
		return rows
	case resMaintenance:
		records := m.services.Maintenance.Records.All()
		rows := make([]listRow, 0, len(records))
		for _, r := range records {
			rows = append(rows, listRow{id: r.ID, text: fmt.Sprintf("%s │ flat %-8s │ %8.2f │ %s",
				r.Month, fitText(r.FlatID, 8), r.Amount, r.Status)})
		}
		return rows
	case resNotices:
		notices := m.services.Notices.Records.All()
		rows := make([]listRow, 0, len(notices))
		for _, n := range notices {
			rows = append(rows, listRow{id: n.ID, text: fmt.Sprintf("%-40s │ %s",
				fitText(n.Title, 40), dashIfEmpty(n.PostedBy))})
		}
		return rows
	case resVisitors:
		visitors := m.services.Visitors.Records.All()
		rows := make([]listRow, 0, len(visitors))
		for _, v := range visitors {
			rows = append(rows, listRow{id: v.ID, text: fmt.Sprintf("%-20s │ flat %-8s │ %s",
				fitText(v.Name, 20), fitText(v.FlatID, 8), v.Status)})
		}
		return rows
	default:
		return nil
	}
}

func (m listModel) currentID() (string, bool) {
	rows := m.rows()
	if len(rows) == 0 || m.idx < 0 || m.idx >= len(rows) {
		return "", false
	}
	return rows[m.idx].id, true
}

func (m listModel) isAdmin() bool {
	return m.principal != nil && m.principal.Role == models.RoleAdmin
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		m.status = msg.status
		return m, tea.Tick(statusLingerTime, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case refreshDoneMsg:
		m.lastErr = msg.err
		m.clampCursor()
		return m, nil
	case copiedMsg:
		m.status = "id copied to clipboard"
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *listModel) clampCursor() {
	if n := len(m.rows()); m.idx >= n && n > 0 {
		m.idx = n - 1
	} else if n == 0 {
		m.idx = 0
	}
}

func (m listModel) handleKey(msg tea.KeyMsg) (listModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.idx < len(m.rows())-1 {
			m.idx++
		}
		return m, nil
	case key.Matches(msg, keys.copy):
		if id, ok := m.currentID(); ok {
			return m, func() tea.Msg {
				if err := clipboard.WriteAll(id); err != nil {
					return actionDoneMsg{err: err}
				}
				return copiedMsg{}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "a":
		return m.decide(true)
	case "x":
		return m.decide(false)
	case "p":
		if m.res == resMaintenance && !m.isAdmin() {
			return m.pay()
		}
	case "o":
		if m.res == resVisitors {
			return m.recordExit()
		}
	case "d":
		if m.isAdmin() {
			return m.deleteSelected()
		}
	}
	return m, nil
}

// decide covers the admin approve/reject pairs: resident activation, access
// requests and complaint resolution all follow the same shape.
func (m listModel) decide(approve bool) (listModel, tea.Cmd) {
	id, ok := m.currentID()
	if !ok || !m.isAdmin() {
		return m, nil
	}
	ctx := m.ctx
	services := m.services

	switch m.res {
	case resResidents:
		status := models.StatusRejected
		if approve {
			status = models.StatusActive
		}
		return m, func() tea.Msg {
			_, err := services.Residents.SetStatus(ctx, id, status)
			return actionDoneMsg{status: "resident " + strings.ToLower(string(status)), err: err}
		}
	case resRequests:
		status := models.AccessRejected
		if approve {
			status = models.AccessApproved
		}
		return m, func() tea.Msg {
			_, err := services.AccessRequests.Decide(ctx, id, status)
			return actionDoneMsg{status: "request " + strings.ToLower(string(status)), err: err}
		}
	case resComplaints:
		status := models.ComplaintRejected
		if approve {
			status = models.ComplaintResolved
		}
		return m, func() tea.Msg {
			_, err := services.Complaints.SetStatus(ctx, id, status)
			return actionDoneMsg{status: "complaint " + strings.ToLower(string(status)), err: err}
		}
	}
	return m, nil
}

func (m listModel) pay() (listModel, tea.Cmd) {
	id, ok := m.currentID()
	if !ok {
		return m, nil
	}
	ctx := m.ctx
	services := m.services
	return m, func() tea.Msg {
		_, err := services.Maintenance.Pay(ctx, id)
		return actionDoneMsg{status: "bill paid", err: err}
	}
}

func (m listModel) recordExit() (listModel, tea.Cmd) {
	id, ok := m.currentID()
	if !ok {
		return m, nil
	}
	ctx := m.ctx
	services := m.services
	return m, func() tea.Msg {
		_, err := services.Visitors.RecordExit(ctx, id)
		return actionDoneMsg{status: "visitor checked out", err: err}
	}
}

func (m listModel) deleteSelected() (listModel, tea.Cmd) {
	id, ok := m.currentID()
	if !ok {
		return m, nil
	}
	ctx := m.ctx
	services := m.services

	switch m.res {
	case resFlats:
		return m, func() tea.Msg {
			return actionDoneMsg{status: "flat deleted", err: services.Flats.Delete(ctx, id)}
		}
	case resNotices:
		return m, func() tea.Msg {
			return actionDoneMsg{status: "notice deleted", err: services.Notices.Delete(ctx, id)}
		}
	}
	return m, nil
}

func (m listModel) hotkeys() string {
	parts := []string{"↑/↓: navigate", "c: copy id", "r: refresh", "esc: back"}

	switch m.res {
	case resFlats:
		if m.isAdmin() {
			parts = append(parts, "n: new flat", "d: delete")
		}
	case resResidents, resRequests:
		if m.isAdmin() {
			parts = append(parts, "a: approve", "x: reject")
		}
	case resComplaints:
		if m.isAdmin() {
			parts = append(parts, "a: resolve", "x: reject")
		} else {
			parts = append(parts, "n: new complaint")
		}
	case resMaintenance:
		if m.isAdmin() {
			parts = append(parts, "n: raise bill")
		} else {
			parts = append(parts, "p: pay")
		}
	case resNotices:
		if m.isAdmin() {
			parts = append(parts, "n: post notice", "d: delete")
		}
	case resVisitors:
		parts = append(parts, "n: log entry", "o: check out")
	}
	return strings.Join(parts, " │ ")
}

func (m listModel) View() string {
	var b strings.Builder

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString("No records.\n")
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(row.text)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.lastErr.Error()))
		b.WriteString("\n")
	}

	return renderPage("SOCIETYHUB │ "+m.res.title(), strings.TrimRight(b.String(), "\n"), m.hotkeys())
}
