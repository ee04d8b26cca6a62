package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mtareb/medichat/internal/models"
)

// List section names as they appear in form field names and row-append
// requests.
const (
	SectionAllergies     = "allergies"
	SectionFamilyHistory = "family_history"
	SectionSurgeries     = "surgeries"
	SectionPrescriptions = "prescriptions"
)

var ErrUnknownSection = errors.New("unknown profile section")

// ProfileDraft is the in-memory, unsaved state of the profile form. All
// fields are strings because they mirror input elements; numeric parsing
// happens only when building the save payload. Email is display-only and is
// never part of the payload.
type ProfileDraft struct {
	Email         string
	FirstName     string
	LastName      string
	Age           string
	Gender        string
	WeightKg      string
	HeightCm      string
	ContactNumber string
	Address       string
	Allergies     []string
	FamilyHistory []string
	Surgeries     []models.Surgery
	Prescriptions []models.Prescription
}

// NewProfileDraft returns an empty draft with one editable slot per list
// section.
func NewProfileDraft() ProfileDraft {
	draft := ProfileDraft{}
	draft.EnsureEditableSlots()
	return draft
}

// DraftFromProfile converts a fetched record into form state. Saved entries
// keep their order; empty list sections are padded so the form always shows
// at least one editable row.
func DraftFromProfile(profile models.Profile) ProfileDraft {
	draft := ProfileDraft{
		Email:         profile.Email,
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		Age:           formatDraftInt(profile.Age),
		Gender:        profile.Gender,
		WeightKg:      formatDraftFloat(profile.WeightKg),
		HeightCm:      formatDraftFloat(profile.HeightCm),
		ContactNumber: profile.ContactNumber,
		Address:       profile.Address,
		Allergies:     append([]string(nil), profile.Allergies...),
		FamilyHistory: append([]string(nil), profile.FamilyHistory...),
		Surgeries:     append([]models.Surgery(nil), profile.Surgeries...),
		Prescriptions: append([]models.Prescription(nil), profile.Prescriptions...),
	}
	draft.EnsureEditableSlots()
	return draft
}

// EnsureEditableSlots pads every empty list section with one blank entry so
// the form never renders a section with zero input rows.
func (draft *ProfileDraft) EnsureEditableSlots() {
	if len(draft.Allergies) == 0 {
		draft.Allergies = []string{""}
	}
	if len(draft.FamilyHistory) == 0 {
		draft.FamilyHistory = []string{""}
	}
	if len(draft.Surgeries) == 0 {
		draft.Surgeries = []models.Surgery{{}}
	}
	if len(draft.Prescriptions) == 0 {
		draft.Prescriptions = []models.Prescription{{}}
	}
}

// SetListItem replaces the value at an index of a free-text section, growing
// the section with blank slots when the index is past the end.
func (draft *ProfileDraft) SetListItem(section string, index int, value string) error {
	if index < 0 {
		return fmt.Errorf("section %s: negative index %d", section, index)
	}
	switch section {
	case SectionAllergies:
		draft.Allergies = setStringSlot(draft.Allergies, index, value)
	case SectionFamilyHistory:
		draft.FamilyHistory = setStringSlot(draft.FamilyHistory, index, value)
	default:
		return ErrUnknownSection
	}
	return nil
}

// SetSurgeryField updates one sub-field of the surgery at an index, filling
// the slot with a default empty record first when it is absent.
func (draft *ProfileDraft) SetSurgeryField(index int, field string, value string) error {
	if index < 0 {
		return fmt.Errorf("surgeries: negative index %d", index)
	}
	for len(draft.Surgeries) <= index {
		draft.Surgeries = append(draft.Surgeries, models.Surgery{})
	}
	switch field {
	case "procedure":
		draft.Surgeries[index].Procedure = value
	case "date":
		draft.Surgeries[index].Date = value
	default:
		return fmt.Errorf("surgeries: unknown field %q", field)
	}
	return nil
}

// SetPrescriptionField updates one sub-field of the prescription at an
// index, filling the slot with a default empty record first when it is
// absent.
func (draft *ProfileDraft) SetPrescriptionField(index int, field string, value string) error {
	if index < 0 {
		return fmt.Errorf("prescriptions: negative index %d", index)
	}
	for len(draft.Prescriptions) <= index {
		draft.Prescriptions = append(draft.Prescriptions, models.Prescription{})
	}
	switch field {
	case "drug":
		draft.Prescriptions[index].Drug = value
	case "dosage":
		draft.Prescriptions[index].Dosage = value
	case "frequency":
		draft.Prescriptions[index].Frequency = value
	case "reason":
		draft.Prescriptions[index].Reason = value
	default:
		return fmt.Errorf("prescriptions: unknown field %q", field)
	}
	return nil
}

// AddSlot appends one empty entry to the named section.
func (draft *ProfileDraft) AddSlot(section string) error {
	switch section {
	case SectionAllergies:
		draft.Allergies = append(draft.Allergies, "")
	case SectionFamilyHistory:
		draft.FamilyHistory = append(draft.FamilyHistory, "")
	case SectionSurgeries:
		draft.Surgeries = append(draft.Surgeries, models.Surgery{})
	case SectionPrescriptions:
		draft.Prescriptions = append(draft.Prescriptions, models.Prescription{})
	default:
		return ErrUnknownSection
	}
	return nil
}

func setStringSlot(values []string, index int, value string) []string {
	for len(values) <= index {
		values = append(values, "")
	}
	values[index] = value
	return values
}

func formatDraftInt(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(int(math.Round(*value)))
}

func formatDraftFloat(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

// Payload normalizes the draft into the save body: numeric fields are parsed
// (blank means omitted), blank free-text entries are discarded, surgeries
// need both fields, prescriptions need all four. List fields are always
// non-nil so an all-blank section serializes as an empty array.
func (draft ProfileDraft) Payload() (models.ProfilePayload, error) {
	age, err := parseOptionalInt("age", draft.Age)
	if err != nil {
		return models.ProfilePayload{}, err
	}
	weight, err := parseOptionalFloat("weight", draft.WeightKg)
	if err != nil {
		return models.ProfilePayload{}, err
	}
	height, err := parseOptionalFloat("height", draft.HeightCm)
	if err != nil {
		return models.ProfilePayload{}, err
	}

	payload := models.ProfilePayload{
		FirstName:     strings.TrimSpace(draft.FirstName),
		LastName:      strings.TrimSpace(draft.LastName),
		Age:           age,
		Gender:        strings.TrimSpace(draft.Gender),
		WeightKg:      weight,
		HeightCm:      height,
		ContactNumber: strings.TrimSpace(draft.ContactNumber),
		Address:       strings.TrimSpace(draft.Address),
		Allergies:     filterBlankEntries(draft.Allergies),
		FamilyHistory: filterBlankEntries(draft.FamilyHistory),
		Surgeries:     filterIncompleteSurgeries(draft.Surgeries),
		Prescriptions: filterIncompletePrescriptions(draft.Prescriptions),
	}
	return payload, nil
}

func parseOptionalInt(field string, raw string) (*int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%s must be a whole number", field)
	}
	return &value, nil
}

func parseOptionalFloat(field string, raw string) (*float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", field)
	}
	return &value, nil
}

func filterBlankEntries(values []string) []string {
	kept := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return kept
}

func filterIncompleteSurgeries(entries []models.Surgery) []models.Surgery {
	kept := make([]models.Surgery, 0, len(entries))
	for _, entry := range entries {
		procedure := strings.TrimSpace(entry.Procedure)
		date := strings.TrimSpace(entry.Date)
		if procedure == "" || date == "" {
			continue
		}
		kept = append(kept, models.Surgery{Procedure: procedure, Date: date})
	}
	return kept
}

func filterIncompletePrescriptions(entries []models.Prescription) []models.Prescription {
	kept := make([]models.Prescription, 0, len(entries))
	for _, entry := range entries {
		normalized := models.Prescription{
			Drug:      strings.TrimSpace(entry.Drug),
			Dosage:    strings.TrimSpace(entry.Dosage),
			Frequency: strings.TrimSpace(entry.Frequency),
			Reason:    strings.TrimSpace(entry.Reason),
		}
		if normalized.Drug == "" || normalized.Dosage == "" || normalized.Frequency == "" || normalized.Reason == "" {
			continue
		}
		kept = append(kept, normalized)
	}
	return kept
}
