package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/societyhub/societyhub/internal/service"
	"github.com/societyhub/societyhub/internal/validators"
	"github.com/societyhub/societyhub/models"
)

type formKind int

const (
	formFlat formKind = iota
	formComplaint
	formNotice
	formVisitor
	formMaintenance
	formAccessRequest
)

func (k formKind) title() string {
	switch k {
	case formFlat:
		return "NEW FLAT"
	case formComplaint:
		return "NEW COMPLAINT"
	case formNotice:
		return "POST NOTICE"
	case formVisitor:
		return "LOG VISITOR ENTRY"
	case formMaintenance:
		return "RAISE MAINTENANCE BILL"
	case formAccessRequest:
		return "REQUEST FLAT ACCESS"
	default:
		return "NEW RECORD"
	}
}

func formLabels(k formKind) []string {
	switch k {
	case formFlat:
		return []string{"Number", "Wing", "Floor"}
	case formComplaint:
		return []string{"Title", "Description"}
	case formNotice:
		return []string{"Title", "Body"}
	case formVisitor:
		return []string{"Name", "Phone", "Flat id", "Purpose"}
	case formMaintenance:
		return []string{"Flat id", "Month (YYYY-MM)", "Amount"}
	case formAccessRequest:
		return []string{"Flat id"}
	default:
		return nil
	}
}

// formModel is the shared create screen. The field set depends on the kind;
// validation runs locally first, the backend stays the final authority.
type formModel struct {
	ctx      context.Context
	services *service.ClientServices

	kind       formKind
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newFormModel(ctx context.Context, services *service.ClientServices, kind formKind) formModel {
	labels := formLabels(kind)
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = strings.ToLower(label)
		in.CharLimit = 256
		in.Width = 44
		if i == 0 {
			in.Focus()
		}
		inputs[i] = in
	}
	return formModel{ctx: ctx, services: services, kind: kind, inputs: inputs}
}

func (m formModel) value(i int) string {
	return strings.TrimSpace(m.inputs[i].Value())
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	if result, ok := msg.(actionDoneMsg); ok && result.err != nil {
		m.submitting = false
		m.errMsg = result.err.Error()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			cmd, err := m.submit()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) submit() (tea.Cmd, error) {
	ctx := m.ctx
	services := m.services

	switch m.kind {
	case formFlat:
		floor, convErr := strconv.Atoi(m.value(2))
		if convErr != nil {
			floor = -1 // forces the gte=0 message below
		}
		form := validators.FlatForm{Number: m.value(0), Wing: strings.ToUpper(m.value(1)), Floor: floor}
		if err := validators.ValidateStruct(form); err != nil {
			return nil, err
		}
		return func() tea.Msg {
			_, err := services.Flats.Create(ctx, models.NewFlat{Number: form.Number, Wing: form.Wing, Floor: form.Floor})
			return actionDoneMsg{status: "flat created", err: err}
		}, nil

	case formComplaint:
		form := validators.ComplaintForm{Title: m.value(0), Description: m.value(1)}
		if err := validators.ValidateStruct(form); err != nil {
			return nil, err
		}
		return func() tea.Msg {
			_, err := services.Complaints.File(ctx, models.NewComplaint{Title: form.Title, Description: form.Description})
			return actionDoneMsg{status: "complaint filed", err: err}
		}, nil

	case formNotice:
		form := validators.NoticeForm{Title: m.value(0), Body: m.value(1)}
		if err := validators.ValidateStruct(form); err != nil {
			return nil, err
		}
		return func() tea.Msg {
			_, err := services.Notices.Post(ctx, models.NewNotice{Title: form.Title, Body: form.Body})
			return actionDoneMsg{status: "notice posted", err: err}
		}, nil

	case formVisitor:
		form := validators.VisitorEntryForm{Name: m.value(0), Phone: m.value(1), FlatID: m.value(2)}
		if err := validators.ValidateStruct(form); err != nil {
			return nil, err
		}
		purpose := m.value(3)
		return func() tea.Msg {
			_, err := services.Visitors.RecordEntry(ctx, models.NewVisitor{
				Name: form.Name, Phone: form.Phone, FlatID: form.FlatID, Purpose: purpose,
			})
			return actionDoneMsg{status: "visitor logged in", err: err}
		}, nil

	case formMaintenance:
		amount, convErr := strconv.ParseFloat(m.value(2), 64)
		if convErr != nil || amount <= 0 {
			return nil, errAmountRequired
		}
		flatID, month := m.value(0), m.value(1)
		if flatID == "" || month == "" {
			return nil, errBillFieldsRequired
		}
		return func() tea.Msg {
			_, err := services.Maintenance.Raise(ctx, models.NewMaintenanceRecord{FlatID: flatID, Month: month, Amount: amount})
			return actionDoneMsg{status: "bill raised", err: err}
		}, nil

	case formAccessRequest:
		flatID := m.value(0)
		if flatID == "" {
			return nil, errFlatIDRequired
		}
		return func() tea.Msg {
			_, err := services.AccessRequests.Submit(ctx, models.NewAccessRequest{FlatID: flatID})
			return actionDoneMsg{status: "access request submitted", err: err}
		}, nil
	}
	return nil, errUnknownForm
}

func (m formModel) View() string {
	labels := formLabels(m.kind)
	width := 0
	for _, l := range labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(strings.Repeat(" ", width-len(labels[i])))
		b.WriteString(" [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\nSubmitting...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SOCIETYHUB │ "+m.kind.title(), strings.TrimRight(b.String(), "\n"),
		"enter: submit │ tab: next field │ esc: cancel")
}

func (m *formModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *formModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
