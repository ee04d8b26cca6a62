package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mtareb/medichat/internal/services"
)

// profileFormInput mirrors the profile form's field names. List sections
// post repeated keys in row order; surgeries and prescriptions post one
// repeated key per sub-field, aligned by index. Email is parsed only so the
// read-only display survives a re-render; it never reaches the payload.
type profileFormInput struct {
	Email                   string   `form:"email"`
	FirstName               string   `form:"first_name"`
	LastName                string   `form:"last_name"`
	Age                     string   `form:"age"`
	Gender                  string   `form:"gender"`
	WeightKg                string   `form:"weight_kg"`
	HeightCm                string   `form:"height_cm"`
	ContactNumber           string   `form:"contact_number"`
	Address                 string   `form:"address"`
	Allergies               []string `form:"allergies"`
	FamilyHistory           []string `form:"family_history"`
	SurgeryProcedures       []string `form:"surgery_procedure"`
	SurgeryDates            []string `form:"surgery_date"`
	PrescriptionDrugs       []string `form:"prescription_drug"`
	PrescriptionDosages     []string `form:"prescription_dosage"`
	PrescriptionFrequencies []string `form:"prescription_frequency"`
	PrescriptionReasons     []string `form:"prescription_reason"`
}

// parseProfileForm rebuilds the draft from the posted form by replaying the
// form's values through the draft's field-level operations.
func parseProfileForm(c *fiber.Ctx) (services.ProfileDraft, error) {
	input := profileFormInput{}
	if err := c.BodyParser(&input); err != nil {
		return services.NewProfileDraft(), err
	}

	draft := services.ProfileDraft{
		Email:         input.Email,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Age:           input.Age,
		Gender:        input.Gender,
		WeightKg:      input.WeightKg,
		HeightCm:      input.HeightCm,
		ContactNumber: input.ContactNumber,
		Address:       input.Address,
	}

	for index, value := range input.Allergies {
		_ = draft.SetListItem(services.SectionAllergies, index, value)
	}
	for index, value := range input.FamilyHistory {
		_ = draft.SetListItem(services.SectionFamilyHistory, index, value)
	}
	for index, value := range input.SurgeryProcedures {
		_ = draft.SetSurgeryField(index, "procedure", value)
	}
	for index, value := range input.SurgeryDates {
		_ = draft.SetSurgeryField(index, "date", value)
	}
	for index, value := range input.PrescriptionDrugs {
		_ = draft.SetPrescriptionField(index, "drug", value)
	}
	for index, value := range input.PrescriptionDosages {
		_ = draft.SetPrescriptionField(index, "dosage", value)
	}
	for index, value := range input.PrescriptionFrequencies {
		_ = draft.SetPrescriptionField(index, "frequency", value)
	}
	for index, value := range input.PrescriptionReasons {
		_ = draft.SetPrescriptionField(index, "reason", value)
	}

	draft.EnsureEditableSlots()
	return draft, nil
}

func buildProfilePageData(draft services.ProfileDraft, flash FlashPayload) fiber.Map {
	return fiber.Map{
		"Title":         "Medichat | My Information",
		"Draft":         draft,
		"ErrorBanner":   flash.ProfileError,
		"SuccessBanner": flash.ProfileSuccess,
	}
}
