// Package store holds the in-memory patient roster and its single
// mutation entry point. The store is the source of truth for records:
// callers get copies, never aliases into the internal slices.
package store

import (
	"fmt"
	"sort"
	"strings"
)

// AttachmentType is a closed tag describing attached medical media.
type AttachmentType string

const (
	AttachmentXRay         AttachmentType = "xray"
	AttachmentScan         AttachmentType = "scan"
	AttachmentLab          AttachmentType = "lab"
	AttachmentECG          AttachmentType = "ecg"
	AttachmentDocument     AttachmentType = "document"
	AttachmentPrescription AttachmentType = "prescription"
)

// ParseAttachmentType normalizes a raw tag into one of the six known
// types. Unknown tags are an error at the store boundary rather than a
// silent default.
func ParseAttachmentType(raw string) (AttachmentType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "xray", "x-ray":
		return AttachmentXRay, nil
	case "scan":
		return AttachmentScan, nil
	case "lab":
		return AttachmentLab, nil
	case "ecg":
		return AttachmentECG, nil
	case "document":
		return AttachmentDocument, nil
	case "prescription":
		return AttachmentPrescription, nil
	}
	return "", fmt.Errorf("unknown attachment type %q", raw)
}

// LabelKey returns the i18n key for the type's display label.
func (t AttachmentType) LabelKey() string {
	return string(t) + "Label"
}

// MedicalAttachment is a named, typed reference to supporting media.
type MedicalAttachment struct {
	ID   string         `yaml:"id"`
	Type AttachmentType `yaml:"type"`
	Name string         `yaml:"name"`
	URL  string         `yaml:"url"`
}

// MedicalRecord is one visit/diagnosis entry. Records are immutable
// once created; the store only ever appends new ones.
type MedicalRecord struct {
	ID          string              `yaml:"id"`
	Date        string              `yaml:"date"` // ISO calendar date, 2006-01-02
	Hospital    string              `yaml:"hospital"`
	Department  string              `yaml:"department"`
	Diagnosis   string              `yaml:"diagnosis"`
	Notes       string              `yaml:"notes"`
	Attachments []MedicalAttachment `yaml:"attachments,omitempty"`
}

// Patient is one roster entry. The CIN is the immutable lookup key.
type Patient struct {
	CIN         string          `yaml:"cin"`
	Name        string          `yaml:"name"`
	DateOfBirth string          `yaml:"date_of_birth"`
	Gender      string          `yaml:"gender"` // "M" or "F"
	Records     []MedicalRecord `yaml:"records"`
}

// RecordsByDateDesc returns the patient's records sorted newest first.
// Storage order is insertion order; the sort happens on every render,
// so a doctor-added record with an old date lands where it belongs.
func (p Patient) RecordsByDateDesc() []MedicalRecord {
	out := make([]MedicalRecord, len(p.Records))
	copy(out, p.Records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

func clonePatient(p *Patient) Patient {
	out := *p
	out.Records = cloneRecords(p.Records)
	return out
}

func cloneRecords(records []MedicalRecord) []MedicalRecord {
	out := make([]MedicalRecord, len(records))
	copy(out, records)
	for i := range out {
		if len(out[i].Attachments) > 0 {
			atts := make([]MedicalAttachment, len(out[i].Attachments))
			copy(atts, out[i].Attachments)
			out[i].Attachments = atts
		}
	}
	return out
}
