package commands

import (
	"github.com/go-playground/validator/v10"

	domainerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
	"youthhub/contexts/listings/opportunity-service/ports"
)

var validate = validator.New()

// draftShape mirrors ports.Draft for tag-driven validation; draftFieldNames
// maps struct fields back to the wire names reported in ValidationError.
type draftShape struct {
	Title            string `validate:"required"`
	ShortSummary     string `validate:"required"`
	Description      string `validate:"required"`
	Type             string `validate:"required,oneof=mun internship volunteering summer_camp competition hackathon"`
	Subject          string `validate:"required"`
	Price            string `validate:"omitempty,oneof=free paid"`
	Audience         string `validate:"omitempty,oneof=all emiratis"`
	Format           string `validate:"required,oneof=online offline"`
	MinAge           *int   `validate:"omitempty,gte=0,lte=120"`
	MaxAge           *int   `validate:"omitempty,gte=0,lte=120"`
	RegistrationLink string `validate:"omitempty,url"`
	ImageURL         string `validate:"omitempty,url"`
}

var draftFieldNames = map[string]string{
	"Title":            "title",
	"ShortSummary":     "short_summary",
	"Description":      "description",
	"Type":             "type",
	"Subject":          "subject",
	"Price":            "price",
	"Audience":         "audience",
	"Format":           "format",
	"MinAge":           "min_age",
	"MaxAge":           "max_age",
	"RegistrationLink": "registration_link",
	"ImageURL":         "image_url",
}

// validateDraft checks the full submission payload before anything touches
// the repository. It returns every offending field at once so a submitter
// can correct the form in one pass.
func validateDraft(draft ports.Draft) error {
	shape := draftShape{
		Title:            draft.Title,
		ShortSummary:     draft.ShortSummary,
		Description:      draft.Description,
		Type:             draft.Type,
		Subject:          draft.Subject,
		Price:            draft.Price,
		Audience:         draft.Audience,
		Format:           draft.Format,
		MinAge:           draft.MinAge,
		MaxAge:           draft.MaxAge,
		RegistrationLink: draft.RegistrationLink,
		ImageURL:         draft.ImageURL,
	}

	fields := tagViolations(validate.Struct(shape))
	fields = append(fields, ageRangeViolations(draft.MinAge, draft.MaxAge)...)
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}
	return nil
}

func tagViolations(err error) []domainerrors.FieldError {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []domainerrors.FieldError{{Field: "payload", Message: "invalid payload"}}
	}
	fields := make([]domainerrors.FieldError, 0, len(verrs))
	for _, item := range verrs {
		name := draftFieldNames[item.StructField()]
		if name == "" {
			name = item.StructField()
		}
		fields = append(fields, domainerrors.FieldError{
			Field:   name,
			Message: violationMessage(item),
		})
	}
	return fields
}

func violationMessage(item validator.FieldError) string {
	switch item.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + item.Param()
	case "url":
		return "must be a valid URL"
	case "gte":
		return "must be at least " + item.Param()
	case "lte":
		return "must be at most " + item.Param()
	default:
		return "is invalid"
	}
}

func ageRangeViolations(minAge *int, maxAge *int) []domainerrors.FieldError {
	if minAge == nil || maxAge == nil {
		return nil
	}
	if *minAge <= *maxAge {
		return nil
	}
	return []domainerrors.FieldError{{
		Field:   "min_age",
		Message: "must not exceed max_age",
	}}
}
