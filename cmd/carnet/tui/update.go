package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/session"
	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/store"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case spinner.TickMsg:
		if !m.chatPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case assistantReplyMsg:
		// A reply for a conversation that was navigated away from is
		// stale: drop it instead of applying it to the wrong view.
		if msg.epoch != m.chatEpoch || m.conv == nil {
			m.logger.Debug("discarding stale chat reply", zap.Int("epoch", msg.epoch))
			return m, nil
		}
		m.conv.AppendAssistant(msg.text)
		m.chatPending = false
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	contentWidth := msg.Width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}
	contentHeight := msg.Height - 8
	if contentHeight < 5 {
		contentHeight = 5
	}
	if !m.ready {
		m.viewport = viewport.New(contentWidth, contentHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = contentHeight
	}

	wrap := contentWidth - 4
	if wrap > 100 {
		wrap = 100
	}
	if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(wrap)); err == nil {
		m.renderer = r
	}

	m.syncViewport()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys first.
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyCtrlL:
		m.toggleLanguage()
		m.syncViewport()
		return m, nil
	case tea.KeyCtrlD:
		// Logout from anywhere: back to role selection.
		m.machine.Handle(session.Logout{})
		m.leaveChat()
		m.resetAuth()
		m.resetForm()
		return m, nil
	}

	if m.showAddForm {
		return m.handleFormKey(msg)
	}

	switch m.machine.State().View {
	case session.ViewRoleSelection:
		return m.handleRoleKey(msg)
	case session.ViewPatientLogin, session.ViewDoctorSearch:
		return m.handleAuthKey(msg)
	case session.ViewPatientRecords:
		return m.handleRecordsKey(msg)
	case session.ViewChat:
		return m.handleChatKey(msg)
	}
	return m, nil
}

// toggleLanguage flips FR/AR and refreshes placeholders.
func (m *Model) toggleLanguage() {
	m.lang = m.lang.Toggle()
	m.cinInput.Placeholder = m.t("cinPlaceholder")
	m.chatInput.Placeholder = m.t("chatbotPlaceholder")
	m.formInputs[fieldHospital].Placeholder = m.t("hospitalPlaceholder")
	m.formInputs[fieldDepartment].Placeholder = m.t("departmentPlaceholder")
	m.formInputs[fieldDiagnosis].Placeholder = m.t("diagnosisPlaceholder")
	m.formInputs[fieldNotes].Placeholder = m.t("notesPlaceholder")
}

func (m Model) handleRoleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "down", "left", "right", "tab":
		m.roleCursor = 1 - m.roleCursor
		return m, nil
	case "1", "d":
		return m.selectRole(session.RoleDoctor)
	case "2", "p":
		return m.selectRole(session.RolePatient)
	case "enter":
		if m.roleCursor == 0 {
			return m.selectRole(session.RoleDoctor)
		}
		return m.selectRole(session.RolePatient)
	}
	return m, nil
}

func (m Model) selectRole(role session.Role) (tea.Model, tea.Cmd) {
	m.machine.Handle(session.SelectRole{Role: role})
	m.resetAuth()
	return m, nil
}

func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.machine.Handle(session.Back{})
		m.resetAuth()
		return m, nil

	case tea.KeyTab:
		// Cycle through the suggested sample CINs.
		samples := m.store.SampleCINs()
		if len(samples) == 0 {
			return m, nil
		}
		m.suggestIdx = (m.suggestIdx + 1) % len(samples)
		m.cinInput.SetValue(samples[m.suggestIdx])
		m.cinInput.CursorEnd()
		m.notFound = false
		return m, nil

	case tea.KeyEnter:
		cin := strings.TrimSpace(m.cinInput.Value())
		outcome := m.machine.Handle(session.Submit{CIN: cin})
		if outcome == session.OutcomeNotFound {
			m.notFound = true
			return m, nil
		}
		if m.machine.State().View == session.ViewPatientRecords {
			m.notFound = false
			m.status = ""
			m.syncViewport()
		}
		return m, nil
	}

	// Everything else belongs to the CIN field.
	var cmd tea.Cmd
	m.cinInput, cmd = m.cinInput.Update(msg)
	if m.notFound {
		m.notFound = false // typing clears the inline error, like the original form
	}
	return m, cmd
}

func (m Model) handleRecordsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.machine.State()

	switch msg.String() {
	case "esc":
		m.machine.Handle(session.Back{})
		m.resetAuth()
		return m, nil

	case "a":
		if st.Role == session.RoleDoctor {
			m.showAddForm = true
			m.status = ""
			return m, textinput.Blink
		}

	case "c":
		if st.Role == session.RolePatient {
			if m.machine.Handle(session.OpenChat{}) == session.OutcomeNone {
				m.openChat()
				m.syncViewport()
				return m, textinput.Blink
			}
		}
	}

	// Scrolling.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.resetForm()
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		m.focusFormField((m.formFocus + 1) % fieldCount)
		return m, textinput.Blink

	case tea.KeyShiftTab, tea.KeyUp:
		m.focusFormField((m.formFocus + fieldCount - 1) % fieldCount)
		return m, textinput.Blink

	case tea.KeyCtrlS:
		return m.submitForm()

	case tea.KeyEnter:
		if m.formFocus == fieldNotes {
			return m.submitForm()
		}
		m.focusFormField(m.formFocus + 1)
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m *Model) focusFormField(idx int) {
	m.formInputs[m.formFocus].Blur()
	m.formFocus = idx
	m.formInputs[m.formFocus].Focus()
}

// submitForm validates the dialog and feeds an AddRecord event into
// the machine. The record keeps whatever attachments the form has,
// which today is none — attachments arrive with the seed only.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	date := strings.TrimSpace(m.formInputs[fieldDate].Value())
	if _, err := time.Parse("2006-01-02", date); err != nil {
		m.focusFormField(fieldDate)
		return m, nil
	}
	diagnosis := strings.TrimSpace(m.formInputs[fieldDiagnosis].Value())
	if diagnosis == "" {
		m.focusFormField(fieldDiagnosis)
		return m, nil
	}

	rec := store.MedicalRecord{
		Date:       date,
		Hospital:   strings.TrimSpace(m.formInputs[fieldHospital].Value()),
		Department: strings.TrimSpace(m.formInputs[fieldDepartment].Value()),
		Diagnosis:  diagnosis,
		Notes:      strings.TrimSpace(m.formInputs[fieldNotes].Value()),
	}
	if m.machine.Handle(session.AddRecord{Record: rec}) == session.OutcomeRecordAdded {
		m.status = m.t("recordAdded")
		m.logger.Info("record added",
			zap.String("cin", m.machine.State().Patient.CIN),
			zap.String("date", rec.Date))
	}
	m.resetForm()
	m.syncViewport()
	return m, nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.machine.Handle(session.Back{})
		m.leaveChat()
		m.syncViewport()
		return m, nil

	case tea.KeyEnter:
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" || m.chatPending {
			// One reply in flight at a time; the input stays editable
			// but sends are refused until the responder resolves.
			return m, nil
		}
		m.conv.AppendUser(text)
		m.chatPending = true
		m.chatInput.SetValue("")
		m.syncViewport()
		m.viewport.GotoBottom()
		return m, tea.Batch(m.respondCmd(text, m.chatEpoch), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}
