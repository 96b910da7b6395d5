package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "youthhub/contexts/listings/opportunity-service/application"
	"youthhub/contexts/listings/opportunity-service/domain/entities"
	domainerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
	"youthhub/contexts/listings/opportunity-service/ports"
)

// SubmitOpportunityCommand is a community submission. The caller must be
// authenticated; the record always enters moderation as pending no matter
// what the payload claims.
type SubmitOpportunityCommand struct {
	Draft ports.Draft
	Actor ports.Viewer
}

type SubmitOpportunityUseCase struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u SubmitOpportunityUseCase) Execute(ctx context.Context, cmd SubmitOpportunityCommand) (entities.Opportunity, error) {
	logger := application.ResolveLogger(u.Logger)

	if !cmd.Actor.Authenticated() {
		return entities.Opportunity{}, domainerrors.ErrUnauthenticated
	}
	if err := validateDraft(cmd.Draft); err != nil {
		return entities.Opportunity{}, err
	}

	id, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Opportunity{}, err
	}

	now := u.Clock.Now().UTC()
	record := recordFromDraft(cmd.Draft)
	record.OpportunityID = id
	record.Status = entities.StatusPending
	record.SubmittedBy = cmd.Actor.UserID
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := u.Repository.Create(ctx, record); err != nil {
		return entities.Opportunity{}, err
	}

	logger.Info("opportunity submitted for review",
		"event", "opportunity_submitted",
		"module", "listings/opportunity-service",
		"layer", "application",
		"opportunity_id", record.OpportunityID,
		"submitted_by", record.SubmittedBy,
	)
	return record, nil
}

// recordFromDraft normalizes a validated draft into an entity, applying the
// free/all defaults for blank price/audience.
func recordFromDraft(draft ports.Draft) entities.Opportunity {
	price := entities.Price(strings.TrimSpace(draft.Price))
	if price == "" {
		price = entities.PriceFree
	}
	audience := entities.Audience(strings.TrimSpace(draft.Audience))
	if audience == "" {
		audience = entities.AudienceAll
	}
	return entities.Opportunity{
		Title:            strings.TrimSpace(draft.Title),
		ShortSummary:     strings.TrimSpace(draft.ShortSummary),
		Description:      strings.TrimSpace(draft.Description),
		Type:             entities.Type(strings.TrimSpace(draft.Type)),
		Subject:          strings.TrimSpace(draft.Subject),
		Price:            price,
		Audience:         audience,
		Format:           entities.Format(strings.TrimSpace(draft.Format)),
		Deadline:         normalizeOptionalTime(draft.Deadline),
		MinAge:           draft.MinAge,
		MaxAge:           draft.MaxAge,
		RegistrationLink: strings.TrimSpace(draft.RegistrationLink),
		ImageURL:         strings.TrimSpace(draft.ImageURL),
	}
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}
