package commands

import (
	"context"
	"log/slog"
	"strings"

	application "youthhub/contexts/listings/opportunity-service/application"
	"youthhub/contexts/listings/opportunity-service/domain/entities"
	domainerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
	"youthhub/contexts/listings/opportunity-service/ports"
)

// EditOpportunityCommand applies a partial update. Status never changes
// through an edit, whatever state the record is in.
type EditOpportunityCommand struct {
	OpportunityID string
	Patch         ports.Patch
	Actor         ports.Viewer
}

type EditOpportunityUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u EditOpportunityUseCase) Execute(ctx context.Context, cmd EditOpportunityCommand) (entities.Opportunity, error) {
	logger := application.ResolveLogger(u.Logger)

	if !cmd.Actor.Admin {
		return entities.Opportunity{}, domainerrors.ErrForbidden
	}
	opportunityID := strings.TrimSpace(cmd.OpportunityID)
	if opportunityID == "" {
		return entities.Opportunity{}, domainerrors.ErrInvalidRequest
	}

	record, err := u.Repository.Get(ctx, opportunityID)
	if err != nil {
		return entities.Opportunity{}, err
	}

	applyPatch(&record, cmd.Patch)
	if err := validateDraft(draftFromRecord(record)); err != nil {
		return entities.Opportunity{}, err
	}
	record.UpdatedAt = u.Clock.Now().UTC()

	if err := u.Repository.Update(ctx, record); err != nil {
		return entities.Opportunity{}, err
	}

	logger.Info("opportunity edited",
		"event", "opportunity_edited",
		"module", "listings/opportunity-service",
		"layer", "application",
		"opportunity_id", opportunityID,
		"admin_id", cmd.Actor.UserID,
	)
	return record, nil
}

func applyPatch(record *entities.Opportunity, patch ports.Patch) {
	if patch.Title != nil {
		record.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.ShortSummary != nil {
		record.ShortSummary = strings.TrimSpace(*patch.ShortSummary)
	}
	if patch.Description != nil {
		record.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Type != nil {
		record.Type = entities.Type(strings.TrimSpace(*patch.Type))
	}
	if patch.Subject != nil {
		record.Subject = strings.TrimSpace(*patch.Subject)
	}
	if patch.Price != nil {
		record.Price = entities.Price(strings.TrimSpace(*patch.Price))
	}
	if patch.Audience != nil {
		record.Audience = entities.Audience(strings.TrimSpace(*patch.Audience))
	}
	if patch.Format != nil {
		record.Format = entities.Format(strings.TrimSpace(*patch.Format))
	}
	if patch.ClearDeadline {
		record.Deadline = nil
	} else if patch.Deadline != nil {
		deadline := patch.Deadline.UTC()
		record.Deadline = &deadline
	}
	if patch.MinAge != nil {
		record.MinAge = patch.MinAge
	}
	if patch.MaxAge != nil {
		record.MaxAge = patch.MaxAge
	}
	if patch.RegistrationLink != nil {
		record.RegistrationLink = strings.TrimSpace(*patch.RegistrationLink)
	}
	if patch.ImageURL != nil {
		record.ImageURL = strings.TrimSpace(*patch.ImageURL)
	}
}

// draftFromRecord re-validates the merged record with the same rules as a
// fresh submission, so a patch cannot sneak an invalid field past moderation.
func draftFromRecord(record entities.Opportunity) ports.Draft {
	return ports.Draft{
		Title:            record.Title,
		ShortSummary:     record.ShortSummary,
		Description:      record.Description,
		Type:             string(record.Type),
		Subject:          record.Subject,
		Price:            string(record.Price),
		Audience:         string(record.Audience),
		Format:           string(record.Format),
		Deadline:         record.Deadline,
		MinAge:           record.MinAge,
		MaxAge:           record.MaxAge,
		RegistrationLink: record.RegistrationLink,
		ImageURL:         record.ImageURL,
	}
}
