package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewSeeded()
	require.NoError(t, err)
	return s
}

func TestSeed_LoadsRoster(t *testing.T) {
	patients, err := Seed()
	require.NoError(t, err)
	require.Len(t, patients, 3)

	assert.Equal(t, "AB123456", patients[0].CIN)
	assert.Equal(t, "Ahmed Ben Salem", patients[0].Name)
	assert.Len(t, patients[0].Records, 3)
	assert.Equal(t, "CD789012", patients[1].CIN)
	assert.Equal(t, "EF345678", patients[2].CIN)
}

func TestFindByCIN_CaseInsensitive(t *testing.T) {
	s := newSeededStore(t)

	for _, cin := range []string{"AB123456", "ab123456", "Ab123456", "  AB123456 "} {
		p, err := s.FindByCIN(cin)
		require.NoError(t, err, "lookup %q", cin)
		assert.Equal(t, "Ahmed Ben Salem", p.Name)
	}
}

func TestFindByCIN_AllSeededPatients(t *testing.T) {
	s := newSeededStore(t)

	for _, seeded := range s.Patients() {
		p, err := s.FindByCIN(seeded.CIN)
		require.NoError(t, err)
		assert.Equal(t, seeded.CIN, p.CIN)
	}
}

func TestFindByCIN_NotFound(t *testing.T) {
	s := newSeededStore(t)

	for _, cin := range []string{"ZZ000000", "", "   ", "AB1234567"} {
		_, err := s.FindByCIN(cin)
		assert.ErrorIs(t, err, ErrNotFound, "lookup %q", cin)
	}
}

func TestFindByCIN_ReadIsIdempotent(t *testing.T) {
	s := newSeededStore(t)

	first, err := s.FindByCIN("CD789012")
	require.NoError(t, err)
	second, err := s.FindByCIN("CD789012")
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two reads with no intervening write differ (-first +second):\n%s", diff)
	}
}

func TestAppendRecord_GrowsByOneAndPreservesExisting(t *testing.T) {
	s := newSeededStore(t)
	before, err := s.FindByCIN("AB123456")
	require.NoError(t, err)

	rec := MedicalRecord{
		Date:       "2025-01-10",
		Hospital:   "Hôpital Charles Nicolle",
		Department: "Médecine générale",
		Diagnosis:  "Flu",
		Notes:      "Repos et hydratation.",
	}
	after, err := s.AppendRecord("AB123456", rec)
	require.NoError(t, err)

	require.Len(t, after.Records, len(before.Records)+1)
	assert.NotEmpty(t, after.Records[0].ID, "appended record must get a fresh ID")

	// The new record equals the input except for the assigned ID.
	got := after.Records[0]
	got.ID = ""
	if diff := cmp.Diff(rec, got); diff != "" {
		t.Errorf("appended record mutated (-want +got):\n%s", diff)
	}

	// Existing records are untouched, in their original order.
	if diff := cmp.Diff(before.Records, after.Records[1:]); diff != "" {
		t.Errorf("pre-existing records changed (-before +after):\n%s", diff)
	}
}

func TestAppendRecord_IDsAreUnique(t *testing.T) {
	s := newSeededStore(t)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		p, err := s.AppendRecord("EF345678", MedicalRecord{Date: "2025-02-01", Diagnosis: "Contrôle"})
		require.NoError(t, err)
		id := p.Records[0].ID
		assert.False(t, seen[id], "duplicate record ID %q", id)
		seen[id] = true
	}
}

func TestAppendRecord_VisibleOnNextLookup(t *testing.T) {
	s := newSeededStore(t)

	updated, err := s.AppendRecord("CD789012", MedicalRecord{Date: "2025-03-01", Diagnosis: "Suivi"})
	require.NoError(t, err)

	fetched, err := s.FindByCIN("cd789012")
	require.NoError(t, err)
	if diff := cmp.Diff(updated, fetched); diff != "" {
		t.Errorf("lookup after append does not reflect the update (-returned +fetched):\n%s", diff)
	}
}

func TestAppendRecord_UnknownPatient(t *testing.T) {
	s := newSeededStore(t)
	_, err := s.AppendRecord("ZZ000000", MedicalRecord{Date: "2025-01-01"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendRecord_RejectsUnknownAttachmentType(t *testing.T) {
	s := newSeededStore(t)
	_, err := s.AppendRecord("AB123456", MedicalRecord{
		Date:        "2025-01-01",
		Attachments: []MedicalAttachment{{Type: "hologram", Name: "?"}},
	})
	assert.Error(t, err)
}

func TestAppendRecord_ReturnedCopyDoesNotAliasStore(t *testing.T) {
	s := newSeededStore(t)

	p, err := s.AppendRecord("AB123456", MedicalRecord{Date: "2025-01-01", Diagnosis: "X"})
	require.NoError(t, err)
	p.Records[0].Diagnosis = "tampered"

	fresh, err := s.FindByCIN("AB123456")
	require.NoError(t, err)
	assert.Equal(t, "X", fresh.Records[0].Diagnosis)
}

func TestNew_RejectsDuplicateCIN(t *testing.T) {
	_, err := New([]Patient{
		{CIN: "AA111111", Name: "A"},
		{CIN: "aa111111", Name: "B"},
	})
	assert.Error(t, err)
}

func TestParseAttachmentType(t *testing.T) {
	cases := []struct {
		in      string
		want    AttachmentType
		wantErr bool
	}{
		{"xray", AttachmentXRay, false},
		{"x-ray", AttachmentXRay, false},
		{"X-Ray", AttachmentXRay, false},
		{"scan", AttachmentScan, false},
		{"lab", AttachmentLab, false},
		{"ecg", AttachmentECG, false},
		{"document", AttachmentDocument, false},
		{"prescription", AttachmentPrescription, false},
		{"hologram", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseAttachmentType(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestRecordsByDateDesc(t *testing.T) {
	p := Patient{Records: []MedicalRecord{
		{ID: "a", Date: "2024-05-10"},
		{ID: "b", Date: "2024-10-15"},
		{ID: "c", Date: "2024-08-20"},
	}}

	sorted := p.RecordsByDateDesc()
	var ids []string
	for _, r := range sorted {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids)

	// Storage order is untouched.
	assert.Equal(t, "a", p.Records[0].ID)
}

func TestRecordsByDateDesc_AppliedOnEveryRender(t *testing.T) {
	// A doctor-added record with an OLD date must not surface first just
	// because it was inserted at the head of storage.
	s := newSeededStore(t)
	p, err := s.AppendRecord("AB123456", MedicalRecord{Date: "2020-01-01", Diagnosis: "Flu"})
	require.NoError(t, err)

	assert.Equal(t, "Flu", p.Records[0].Diagnosis, "storage prepends")

	sorted := p.RecordsByDateDesc()
	assert.NotEqual(t, "Flu", sorted[0].Diagnosis, "display sorts by date, not insertion")
	assert.Equal(t, "Flu", sorted[len(sorted)-1].Diagnosis)
}
