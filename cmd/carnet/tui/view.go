package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/chat"
	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/session"
	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/store"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	var content string
	if m.showAddForm {
		content = m.renderAddForm()
	} else {
		switch m.machine.State().View {
		case session.ViewRoleSelection:
			content = m.renderRoleSelection()
		case session.ViewPatientLogin, session.ViewDoctorSearch:
			content = m.renderAuth()
		case session.ViewPatientRecords:
			content = m.viewport.View()
		case session.ViewChat:
			content = m.renderChat()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.styles.Content.Render(content),
		footer,
	)
}

func (m Model) renderHeader() string {
	st := m.machine.State()

	title := m.styles.Header.Render(" " + m.t("appTitle") + " ")

	var parts []string
	parts = append(parts, title)
	if st.Role != session.RoleNone {
		roleKey := "doctorRole"
		if st.Role == session.RolePatient {
			roleKey = "patientRole"
		}
		parts = append(parts, " ", m.styles.Badge.Render(m.t(roleKey)))
	}
	if st.Patient != nil {
		parts = append(parts, "  ", m.styles.Muted.Render(m.t("loggedInAs")+": "+st.Patient.Name))
	}
	parts = append(parts, "  ", m.styles.Chip.Render(strings.ToUpper(string(m.lang))))

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m Model) renderFooter() string {
	st := m.machine.State()

	var hints []string
	switch {
	case m.showAddForm:
		hints = []string{"tab ↹", "ctrl+s " + m.t("save"), "esc " + m.t("cancel")}
	case st.View == session.ViewRoleSelection:
		hints = []string{"1/2 ↵", "ctrl+l " + m.t("language"), "ctrl+c ✕"}
	case st.View == session.ViewPatientLogin || st.View == session.ViewDoctorSearch:
		hints = []string{"↵ " + m.t("searchButton"), "tab " + m.t("tryExamples"), "esc " + m.t("backToRoleSelection"), "ctrl+l " + m.t("language")}
	case st.View == session.ViewPatientRecords:
		hints = []string{"esc " + m.t("backToSearch"), "ctrl+d " + m.t("logout"), "ctrl+l " + m.t("language")}
		if st.Role == session.RoleDoctor {
			hints = append([]string{"a " + m.t("addNewRecord")}, hints...)
		} else {
			hints = append([]string{"c " + m.t("chatbotButton")}, hints...)
		}
	case st.View == session.ViewChat:
		hints = []string{"↵ " + m.t("chatbotSend"), "esc " + m.t("backToSearch"), "ctrl+d " + m.t("logout")}
	}

	line := m.styles.Footer.Render(strings.Join(hints, "  ·  "))
	if m.status != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Center, m.styles.Success.Render(" "+m.status+" "), line)
	}
	return line
}

// ---------------------------------------------------------------------------
// Role selection

func (m Model) renderRoleSelection() string {
	title := m.styles.Title.Render(m.t("roleSelectionTitle"))
	subtitle := m.styles.Subtitle.Render(m.t("roleSelectionSubtitle"))

	doctor := m.renderRoleCard(m.t("doctorRole"), m.t("doctorDescription"), m.roleCursor == 0)
	patient := m.renderRoleCard(m.t("patientRole"), m.t("patientDescription"), m.roleCursor == 1)
	cards := lipgloss.JoinHorizontal(lipgloss.Top, doctor, "  ", patient)

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", cards)
}

func (m Model) renderRoleCard(name, desc string, selected bool) string {
	card := m.styles.Card
	label := m.styles.Bold.Render(name)
	if selected {
		card = card.BorderForeground(m.styles.Theme.Primary)
		label = m.styles.Selected.Render("› " + name)
	}
	return card.Render(lipgloss.JoinVertical(lipgloss.Left,
		label,
		m.styles.Muted.Render(desc),
	))
}

// ---------------------------------------------------------------------------
// Login / search

func (m Model) renderAuth() string {
	st := m.machine.State()

	var title, subtitle string
	if st.View == session.ViewPatientLogin {
		title = m.t("patientLoginTitle")
		subtitle = m.t("patientLoginSubtitle")
	} else {
		title = m.t("searchTitle")
		subtitle = m.t("cinLabel")
	}

	sections := []string{
		m.styles.Title.Render(title),
		m.styles.Subtitle.Render(subtitle),
		"",
		m.styles.Bold.Render(m.t("cinLabel")),
		m.cinInput.View(),
	}

	if m.notFound {
		alert := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Error.Render(m.t("patientNotFound")),
			m.styles.Body.Render(m.t("patientNotFoundDesc")),
		)
		sections = append(sections, "", m.styles.Card.BorderForeground(m.styles.Theme.Primary).Render(alert))
	}

	// The doctor search always shows the sample CINs; the patient login
	// only offers them after a failed attempt.
	if st.View == session.ViewDoctorSearch || m.notFound {
		sections = append(sections, "", m.styles.Muted.Render(m.t("tryExamples")), m.renderSampleChips())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderSampleChips() string {
	var chips []string
	for i, p := range m.store.Patients() {
		chip := m.styles.Chip
		if i == m.suggestIdx {
			chip = chip.BorderForeground(m.styles.Theme.Accent)
		}
		chips = append(chips, chip.Render(p.CIN+" · "+p.Name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// ---------------------------------------------------------------------------
// Records

// syncViewport re-renders the scrollable content for the current view.
// Sorting by date happens here, on every render, never in storage.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	switch m.machine.State().View {
	case session.ViewPatientRecords:
		m.viewport.SetContent(m.renderRecordsContent())
		m.viewport.GotoTop()
	case session.ViewChat:
		m.viewport.SetContent(m.renderChatContent())
		m.viewport.GotoBottom()
	}
}

func (m Model) renderRecordsContent() string {
	st := m.machine.State()
	if st.Patient == nil {
		return ""
	}
	p := *st.Patient

	info := m.renderPatientCard(p)

	records := p.RecordsByDateDesc()
	countLine := m.styles.Title.Render(fmt.Sprintf("%s (%d)", m.t("medicalRecords"), len(records)))

	sections := []string{info, "", countLine}
	if len(records) == 0 {
		sections = append(sections, m.styles.Muted.Render(m.t("noRecords")))
	}
	for _, rec := range records {
		sections = append(sections, m.renderRecordCard(rec))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderPatientCard(p store.Patient) string {
	gender := m.t("male")
	if p.Gender == "F" {
		gender = m.t("female")
	}
	rows := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Bold.Render(m.t("patientInfo")),
		fmt.Sprintf("%s: %s", m.t("name"), p.Name),
		fmt.Sprintf("%s: %s", m.t("cin"), p.CIN),
		fmt.Sprintf("%s: %s", m.t("dateOfBirth"), p.DateOfBirth),
		fmt.Sprintf("%s: %s", m.t("gender"), gender),
	)
	return m.styles.Card.Render(rows)
}

func (m Model) renderRecordCard(rec store.MedicalRecord) string {
	head := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Bold.Render(rec.Date),
		"  ",
		m.styles.Chip.Render(rec.Department),
	)
	lines := []string{
		head,
		m.styles.Muted.Render(rec.Hospital),
		m.styles.Body.Render(rec.Diagnosis),
	}
	if rec.Notes != "" {
		lines = append(lines, m.styles.Muted.Render(m.t("notes")+": ")+rec.Notes)
	}
	if len(rec.Attachments) > 0 {
		lines = append(lines, m.renderAttachments(rec.Attachments))
	}
	return m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderAttachments(atts []store.MedicalAttachment) string {
	lines := []string{m.styles.Muted.Render(m.t("attachments") + ":")}
	for _, att := range atts {
		label := m.t(att.Type.LabelKey())
		lines = append(lines, fmt.Sprintf("  • [%s] %s", label, att.Name))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// ---------------------------------------------------------------------------
// Add-record form

func (m Model) renderAddForm() string {
	labels := []string{
		m.t("date"), m.t("hospital"), m.t("department"), m.t("diagnosis"), m.t("notes"),
	}
	sections := []string{
		m.styles.Title.Render(m.t("addRecordTitle")),
	}
	for i, in := range m.formInputs {
		label := m.styles.Bold.Render(labels[i])
		if i == m.formFocus {
			label = m.styles.Selected.Render("› " + labels[i])
		}
		sections = append(sections, label, in.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// ---------------------------------------------------------------------------
// Chat

func (m Model) renderChat() string {
	disclaimer := m.styles.Warning.Render(m.t("chatbotDisclaimer"))

	input := m.styles.Card.BorderForeground(m.styles.Theme.Accent).Render(m.chatInput.View())

	var typing string
	if m.chatPending {
		typing = lipgloss.JoinHorizontal(lipgloss.Center,
			m.spinner.View(), " ", m.styles.Muted.Render(m.t("chatbotTyping")))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(m.t("chatbotTitle")),
		disclaimer,
		"",
		m.viewport.View(),
		typing,
		input,
	)
}

func (m Model) renderChatContent() string {
	if m.conv == nil {
		return ""
	}

	var sb strings.Builder
	for _, msg := range m.conv.Messages() {
		ts := m.styles.Muted.Render(msg.Time.Format("15:04"))
		switch msg.Author {
		case chat.AuthorUser:
			sb.WriteString(m.styles.Prompt.Render("› ") + m.styles.UserInput.Render(msg.Text))
			sb.WriteString("  " + ts + "\n\n")
		default:
			sb.WriteString(m.styles.Bold.Render(m.t("chatbotTitle")) + "  " + ts + "\n")
			sb.WriteString(m.styles.Assistant.Render(m.safeRenderMarkdown(msg.Text)))
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// safeRenderMarkdown renders assistant markdown, falling back to the
// raw text if glamour errors or panics.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		if rendered, err := m.renderer.Render(content); err == nil {
			return strings.TrimRight(rendered, "\n")
		}
	}
	return content
}
