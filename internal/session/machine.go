// Package session implements the navigation state machine that drives
// the application: role selection, authentication, record view and
// chat, with back/logout transitions. The machine is a pure
// (State, Event) transition plus store side effects, independent of
// any rendering layer.
package session

import (
	"errors"

	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/store"
)

// Role is who is driving the session.
type Role int

const (
	RoleNone Role = iota
	RoleDoctor
	RolePatient
)

func (r Role) String() string {
	switch r {
	case RoleDoctor:
		return "doctor"
	case RolePatient:
		return "patient"
	}
	return "none"
}

// View is the current screen.
type View int

const (
	ViewRoleSelection View = iota
	ViewPatientLogin
	ViewDoctorSearch
	ViewPatientRecords
	ViewChat
)

func (v View) String() string {
	switch v {
	case ViewPatientLogin:
		return "patientLogin"
	case ViewDoctorSearch:
		return "doctorSearch"
	case ViewPatientRecords:
		return "patientRecords"
	case ViewChat:
		return "chat"
	}
	return "roleSelection"
}

// State is the transient session tuple. Patient is non-nil exactly
// when View is ViewPatientRecords or ViewChat.
type State struct {
	Role    Role
	View    View
	Patient *store.Patient
}

// Initial returns the state a fresh session starts in, and that logout
// returns to.
func Initial() State {
	return State{Role: RoleNone, View: ViewRoleSelection}
}

// Event is a user action fed into the machine.
type Event interface{ isEvent() }

type (
	// SelectRole picks doctor or patient on the role screen.
	SelectRole struct{ Role Role }
	// Submit is a CIN submitted on the login or search screen.
	Submit struct{ CIN string }
	// OpenChat navigates from the record view to the chat view.
	OpenChat struct{}
	// AddRecord appends a record to the selected patient (doctor only).
	AddRecord struct{ Record store.MedicalRecord }
	// Back steps one screen up, preserving the role.
	Back struct{}
	// Logout resets the session from any state.
	Logout struct{}
)

func (SelectRole) isEvent() {}
func (Submit) isEvent()     {}
func (OpenChat) isEvent()   {}
func (AddRecord) isEvent()  {}
func (Back) isEvent()       {}
func (Logout) isEvent()     {}

// Outcome reports what an event did, for the presentation layer.
type Outcome int

const (
	// OutcomeNone: the transition happened with nothing to surface.
	OutcomeNone Outcome = iota
	// OutcomeNotFound: a submitted CIN matched no patient.
	OutcomeNotFound
	// OutcomeRecordAdded: the store accepted a new record.
	OutcomeRecordAdded
	// OutcomeIgnored: the event was not legal in the current state and
	// was dropped without touching anything.
	OutcomeIgnored
)

// Directory is the slice of the record store the machine needs.
type Directory interface {
	FindByCIN(cin string) (store.Patient, error)
	AppendRecord(cin string, rec store.MedicalRecord) (store.Patient, error)
}

// Machine holds the session state and applies events to it. One event
// is processed to completion before the next; the machine never enters
// a crashed state — illegal events are no-ops.
type Machine struct {
	dir   Directory
	state State
}

// NewMachine starts a machine at the initial state.
func NewMachine(dir Directory) *Machine {
	return &Machine{dir: dir, state: Initial()}
}

// State returns the current session state.
func (m *Machine) State() State { return m.state }

// Handle applies one event and reports the outcome.
func (m *Machine) Handle(ev Event) Outcome {
	next, outcome := transition(m.state, ev, m.dir)
	m.state = next
	return outcome
}

// transition is the pure core of the machine: given a state and an
// event it returns the next state. Store effects are confined to
// Submit (lookup) and AddRecord (append).
func transition(st State, ev Event, dir Directory) (State, Outcome) {
	switch ev := ev.(type) {
	case Logout:
		// Legal from any state.
		return Initial(), OutcomeNone

	case SelectRole:
		if st.View != ViewRoleSelection {
			return st, OutcomeIgnored
		}
		switch ev.Role {
		case RoleDoctor:
			return State{Role: RoleDoctor, View: ViewDoctorSearch}, OutcomeNone
		case RolePatient:
			return State{Role: RolePatient, View: ViewPatientLogin}, OutcomeNone
		}
		return st, OutcomeIgnored

	case Submit:
		if st.View != ViewPatientLogin && st.View != ViewDoctorSearch {
			return st, OutcomeIgnored
		}
		p, err := dir.FindByCIN(ev.CIN)
		if errors.Is(err, store.ErrNotFound) {
			return st, OutcomeNotFound
		}
		if err != nil {
			return st, OutcomeIgnored
		}
		return State{Role: st.Role, View: ViewPatientRecords, Patient: &p}, OutcomeNone

	case OpenChat:
		if st.View != ViewPatientRecords || st.Role != RolePatient {
			return st, OutcomeIgnored
		}
		return State{Role: st.Role, View: ViewChat, Patient: st.Patient}, OutcomeNone

	case AddRecord:
		if st.View != ViewPatientRecords || st.Role != RoleDoctor || st.Patient == nil {
			return st, OutcomeIgnored
		}
		updated, err := dir.AppendRecord(st.Patient.CIN, ev.Record)
		if err != nil {
			return st, OutcomeIgnored
		}
		return State{Role: st.Role, View: ViewPatientRecords, Patient: &updated}, OutcomeRecordAdded

	case Back:
		switch st.View {
		case ViewChat:
			return State{Role: st.Role, View: ViewPatientRecords, Patient: st.Patient}, OutcomeNone
		case ViewPatientRecords:
			if st.Role == RoleDoctor {
				return State{Role: RoleDoctor, View: ViewDoctorSearch}, OutcomeNone
			}
			return State{Role: RolePatient, View: ViewPatientLogin}, OutcomeNone
		case ViewPatientLogin, ViewDoctorSearch:
			// Backing out of auth abandons the role.
			return Initial(), OutcomeNone
		}
		return st, OutcomeIgnored
	}
	return st, OutcomeIgnored
}
