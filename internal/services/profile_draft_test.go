package services

import (
	"encoding/json"
	"testing"

	"github.com/mtareb/medichat/internal/models"
)

func TestNewProfileDraftHasOneSlotPerSection(t *testing.T) {
	draft := NewProfileDraft()

	if len(draft.Allergies) != 1 || draft.Allergies[0] != "" {
		t.Fatalf("expected one empty allergy slot, got %v", draft.Allergies)
	}
	if len(draft.FamilyHistory) != 1 || draft.FamilyHistory[0] != "" {
		t.Fatalf("expected one empty family history slot, got %v", draft.FamilyHistory)
	}
	if len(draft.Surgeries) != 1 || draft.Surgeries[0] != (models.Surgery{}) {
		t.Fatalf("expected one empty surgery slot, got %v", draft.Surgeries)
	}
	if len(draft.Prescriptions) != 1 || draft.Prescriptions[0] != (models.Prescription{}) {
		t.Fatalf("expected one empty prescription slot, got %v", draft.Prescriptions)
	}
}

func TestDraftFromProfileKeepsSavedEntriesAndPadsEmptySections(t *testing.T) {
	age := 34.0
	weight := 72.5
	profile := models.Profile{
		Email:     "user@example.com",
		FirstName: "Dana",
		Age:       &age,
		WeightKg:  &weight,
		Allergies: []string{"penicillin", "latex"},
	}

	draft := DraftFromProfile(profile)

	if draft.Email != "user@example.com" || draft.FirstName != "Dana" {
		t.Fatalf("scalar fields not carried over: %+v", draft)
	}
	if draft.Age != "34" {
		t.Fatalf("expected age %q, got %q", "34", draft.Age)
	}
	if draft.WeightKg != "72.5" {
		t.Fatalf("expected weight %q, got %q", "72.5", draft.WeightKg)
	}
	if len(draft.Allergies) != 2 || draft.Allergies[0] != "penicillin" || draft.Allergies[1] != "latex" {
		t.Fatalf("saved allergies should keep their order, got %v", draft.Allergies)
	}
	if len(draft.FamilyHistory) != 1 || len(draft.Surgeries) != 1 || len(draft.Prescriptions) != 1 {
		t.Fatalf("empty sections should be padded with one slot: %+v", draft)
	}
}

func TestDraftFromProfileRoundsFractionalAge(t *testing.T) {
	age := 34.9
	draft := DraftFromProfile(models.Profile{Age: &age})

	if draft.Age != "35" {
		t.Fatalf("expected a fractional age to round, got %q", draft.Age)
	}
}

func TestPayloadFiltersBlankListEntries(t *testing.T) {
	draft := NewProfileDraft()
	draft.Allergies = []string{"", "  ", "dust"}
	draft.FamilyHistory = []string{"", ""}

	payload, err := draft.Payload()
	if err != nil {
		t.Fatalf("payload: %v", err)
	}

	if len(payload.Allergies) != 1 || payload.Allergies[0] != "dust" {
		t.Fatalf("expected [dust], got %v", payload.Allergies)
	}
	if payload.FamilyHistory == nil || len(payload.FamilyHistory) != 0 {
		t.Fatalf("all-blank section must become an empty array, got %v", payload.FamilyHistory)
	}
}

func TestPayloadDropsIncompleteSurgeries(t *testing.T) {
	draft := NewProfileDraft()
	draft.Surgeries = []models.Surgery{
		{Procedure: "appendectomy", Date: "2019-05-02"},
		{Procedure: "tonsillectomy"},
		{Date: "2021-01-01"},
		{},
	}

	payload, err := draft.Payload()
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	if len(payload.Surgeries) != 1 {
		t.Fatalf("expected one complete surgery, got %v", payload.Surgeries)
	}
	if payload.Surgeries[0].Procedure != "appendectomy" {
		t.Fatalf("wrong surgery kept: %+v", payload.Surgeries[0])
	}
}

func TestPayloadDropsPrescriptionsMissingAnyField(t *testing.T) {
	complete := models.Prescription{Drug: "metformin", Dosage: "500mg", Frequency: "twice daily", Reason: "diabetes"}
	draft := NewProfileDraft()
	draft.Prescriptions = []models.Prescription{
		complete,
		{Drug: "aspirin", Dosage: "100mg", Frequency: "daily"},
		{Drug: "ibuprofen", Frequency: "as needed", Reason: "pain"},
		{},
	}

	payload, err := draft.Payload()
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	if len(payload.Prescriptions) != 1 || payload.Prescriptions[0] != complete {
		t.Fatalf("only the complete prescription should survive, got %v", payload.Prescriptions)
	}
}

func TestPayloadParsesNumericFields(t *testing.T) {
	draft := NewProfileDraft()
	draft.Age = " 42 "
	draft.WeightKg = "80.5"
	draft.HeightCm = ""

	payload, err := draft.Payload()
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.Age == nil || *payload.Age != 42 {
		t.Fatalf("expected age 42, got %v", payload.Age)
	}
	if payload.WeightKg == nil || *payload.WeightKg != 80.5 {
		t.Fatalf("expected weight 80.5, got %v", payload.WeightKg)
	}
	if payload.HeightCm != nil {
		t.Fatalf("blank height must be omitted, got %v", *payload.HeightCm)
	}
}

func TestPayloadRejectsUnparseableNumbers(t *testing.T) {
	draft := NewProfileDraft()
	draft.Age = "forty"

	if _, err := draft.Payload(); err == nil {
		t.Fatal("expected an error for non-numeric age")
	}
}

func TestPayloadNeverContainsCredentialKeys(t *testing.T) {
	draft := NewProfileDraft()
	draft.Email = "user@example.com"

	payload, err := draft.Payload()
	if err != nil {
		t.Fatalf("payload: %v", err)
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	keys := map[string]any{}
	if err := json.Unmarshal(serialized, &keys); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if _, ok := keys["email"]; ok {
		t.Fatal("payload must not contain an email field")
	}
	if _, ok := keys["password"]; ok {
		t.Fatal("payload must not contain a password field")
	}
}

func TestSetSurgeryFieldFillsMissingSlots(t *testing.T) {
	draft := ProfileDraft{}

	if err := draft.SetSurgeryField(2, "procedure", "biopsy"); err != nil {
		t.Fatalf("set surgery field: %v", err)
	}
	if len(draft.Surgeries) != 3 {
		t.Fatalf("expected slots filled up to index, got %d", len(draft.Surgeries))
	}
	if draft.Surgeries[2].Procedure != "biopsy" || draft.Surgeries[0] != (models.Surgery{}) {
		t.Fatalf("unexpected surgeries state: %v", draft.Surgeries)
	}
}

func TestSetListItemUnknownSection(t *testing.T) {
	draft := NewProfileDraft()
	if err := draft.SetListItem("medications", 0, "x"); err == nil {
		t.Fatal("expected unknown section error")
	}
}

func TestAddSlotAppendsToNamedSection(t *testing.T) {
	draft := NewProfileDraft()

	if err := draft.AddSlot(SectionPrescriptions); err != nil {
		t.Fatalf("add slot: %v", err)
	}
	if len(draft.Prescriptions) != 2 {
		t.Fatalf("expected two prescription slots, got %d", len(draft.Prescriptions))
	}
	if err := draft.AddSlot("unknown"); err == nil {
		t.Fatal("expected unknown section error")
	}
}
