package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound signals a CIN that matches no roster entry. It is a
// recoverable lookup miss, distinct from validation errors.
var ErrNotFound = errors.New("patient not found")

// Store owns the patient roster. Lookups return copies; the only
// mutation is AppendRecord, which is synchronous: the returned patient
// already reflects the new record.
type Store struct {
	mu       sync.RWMutex
	patients []*Patient
	byCIN    map[string]*Patient // keyed by upper-cased CIN
}

// New builds a store from a seed roster. CINs must be unique
// (case-insensitively) and every attachment tag must parse.
func New(seed []Patient) (*Store, error) {
	s := &Store{byCIN: make(map[string]*Patient, len(seed))}
	for i := range seed {
		p := clonePatient(&seed[i])
		key := cinKey(p.CIN)
		if key == "" {
			return nil, fmt.Errorf("patient %q has an empty CIN", p.Name)
		}
		if _, dup := s.byCIN[key]; dup {
			return nil, fmt.Errorf("duplicate CIN %q in seed", p.CIN)
		}
		for ri := range p.Records {
			if err := normalizeAttachments(&p.Records[ri]); err != nil {
				return nil, fmt.Errorf("patient %s record %s: %w", p.CIN, p.Records[ri].ID, err)
			}
		}
		s.patients = append(s.patients, &p)
		s.byCIN[key] = &p
	}
	return s, nil
}

// FindByCIN looks up a patient by national ID, case-insensitively.
// Empty or malformed input simply fails to match and reports ErrNotFound.
func (s *Store) FindByCIN(cin string) (Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byCIN[cinKey(cin)]
	if !ok {
		return Patient{}, ErrNotFound
	}
	return clonePatient(p), nil
}

// AppendRecord assigns a fresh ID to rec and adds it to the patient's
// record list. Existing records are never removed or reordered. The
// returned patient is the post-append state.
func (s *Store) AppendRecord(cin string, rec MedicalRecord) (Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byCIN[cinKey(cin)]
	if !ok {
		return Patient{}, ErrNotFound
	}
	if err := normalizeAttachments(&rec); err != nil {
		return Patient{}, err
	}
	rec.ID = uuid.NewString()
	p.Records = append([]MedicalRecord{rec}, p.Records...)
	return clonePatient(p), nil
}

// Patients returns the roster in seed order, as copies.
func (s *Store) Patients() []Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Patient, 0, len(s.patients))
	for _, p := range s.patients {
		out = append(out, clonePatient(p))
	}
	return out
}

// SampleCINs returns the roster CINs, used as suggested identifiers
// when a lookup misses.
func (s *Store) SampleCINs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.patients))
	for _, p := range s.patients {
		out = append(out, p.CIN)
	}
	return out
}

func cinKey(cin string) string {
	return strings.ToUpper(strings.TrimSpace(cin))
}

func normalizeAttachments(rec *MedicalRecord) error {
	for i := range rec.Attachments {
		att := &rec.Attachments[i]
		typ, err := ParseAttachmentType(string(att.Type))
		if err != nil {
			return err
		}
		att.Type = typ
		if att.ID == "" {
			att.ID = uuid.NewString()
		}
	}
	return nil
}
