// Package tui is the interactive terminal interface: role selection,
// CIN login/search, record view and the advice chat. The interface is
// a thin rendering layer over the session state machine; every user
// action becomes a session.Event and the views render whatever state
// the machine is in.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/cmd/carnet/ui"
	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/chat"
	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/config"
	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/i18n"
	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/session"
	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/store"
)

// Form field order in the add-record dialog.
const (
	fieldDate = iota
	fieldHospital
	fieldDepartment
	fieldDiagnosis
	fieldNotes
	fieldCount
)

// assistantReplyMsg carries the responder's reply back into Update.
// The epoch pins the reply to the chat session that asked; a reply
// arriving after navigation away no longer matches and is discarded.
type assistantReplyMsg struct {
	epoch int
	text  string
}

// Model is the bubbletea model for the whole application.
type Model struct {
	machine   *session.Machine
	store     *store.Store
	responder chat.Responder
	logger    *zap.Logger

	lang   i18n.Lang
	styles ui.Styles

	// Components
	cinInput  textinput.Model
	chatInput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	renderer  *glamour.TermRenderer

	// Role selection cursor: 0 = doctor, 1 = patient.
	roleCursor int

	// CIN entry state
	notFound   bool
	suggestIdx int // -1: no sample CIN highlighted

	// Add-record form (doctor)
	showAddForm bool
	formInputs  []textinput.Model
	formFocus   int

	// Chat state
	conv        *chat.Conversation
	chatPending bool
	chatEpoch   int

	status string // transient toast line
	width  int
	height int
	ready  bool
}

// New builds the application model.
func New(cfg config.Config, st *store.Store, responder chat.Responder, logger *zap.Logger) Model {
	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))
	lang := i18n.ParseLang(cfg.Language)

	cin := textinput.New()
	cin.Placeholder = i18n.T("cinPlaceholder", lang)
	cin.CharLimit = 16
	cin.Focus()

	chatIn := textinput.New()
	chatIn.Placeholder = i18n.T("chatbotPlaceholder", lang)
	chatIn.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Prompt

	m := Model{
		machine:    session.NewMachine(st),
		store:      st,
		responder:  responder,
		logger:     logger,
		lang:       lang,
		styles:     styles,
		cinInput:   cin,
		chatInput:  chatIn,
		spinner:    sp,
		suggestIdx: -1,
	}
	m.formInputs = m.newFormInputs()
	return m
}

// Init starts the cursor blink and spinner tickers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m Model) newFormInputs() []textinput.Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.CharLimit = 200
		inputs[i] = in
	}
	inputs[fieldDate].Placeholder = "2006-01-02"
	inputs[fieldDate].SetValue(time.Now().Format("2006-01-02"))
	inputs[fieldDate].CharLimit = 10
	inputs[fieldHospital].Placeholder = i18n.T("hospitalPlaceholder", m.lang)
	inputs[fieldDepartment].Placeholder = i18n.T("departmentPlaceholder", m.lang)
	inputs[fieldDiagnosis].Placeholder = i18n.T("diagnosisPlaceholder", m.lang)
	inputs[fieldNotes].Placeholder = i18n.T("notesPlaceholder", m.lang)
	inputs[fieldNotes].CharLimit = 500
	inputs[0].Focus()
	return inputs
}

// t looks up a label in the active language.
func (m Model) t(key string) string {
	return i18n.T(key, m.lang)
}

// openChat starts a fresh conversation with the welcome message, as a
// new chat screen always does.
func (m *Model) openChat() {
	m.conv = chat.NewConversation()
	m.conv.AppendAssistant(m.t("chatbotWelcome"))
	m.chatPending = false
	m.chatEpoch++
	m.chatInput.SetValue("")
	m.chatInput.Focus()
	m.cinInput.Blur()
}

// leaveChat abandons the conversation. Any in-flight reply keeps the
// old epoch and will be dropped on arrival.
func (m *Model) leaveChat() {
	m.chatEpoch++
	m.chatPending = false
	m.conv = nil
	m.chatInput.Blur()
}

// resetAuth clears the CIN entry state when returning to a login or
// search screen.
func (m *Model) resetAuth() {
	m.cinInput.SetValue("")
	m.cinInput.Focus()
	m.notFound = false
	m.suggestIdx = -1
	m.status = ""
}

// resetForm restores the add-record dialog to its blank state.
func (m *Model) resetForm() {
	m.showAddForm = false
	m.formFocus = 0
	m.formInputs = m.newFormInputs()
}
