package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"youthhub/contexts/listings/opportunity-service/domain/entities"
	domainerrors "youthhub/contexts/listings/opportunity-service/domain/errors"
	"youthhub/contexts/listings/opportunity-service/domain/services"
	"youthhub/contexts/listings/opportunity-service/ports"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Create(ctx context.Context, record entities.Opportunity) error {
	row := opportunityModelFromEntity(record)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidRequest
		}
		return mapStoreError(err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, opportunityID string) (entities.Opportunity, error) {
	var row opportunityModel
	err := r.db.WithContext(ctx).
		Where("opportunity_id = ?", strings.TrimSpace(opportunityID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Opportunity{}, domainerrors.ErrNotFound
		}
		return entities.Opportunity{}, mapStoreError(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) List(ctx context.Context, filter services.Filter, statuses []entities.Status) ([]entities.Opportunity, error) {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}

	tx := r.db.WithContext(ctx).
		Model(&opportunityModel{}).
		Where("status IN ?", values)
	if filter.Type != "" {
		tx = tx.Where("type = ?", filter.Type)
	}
	if filter.Price != "" {
		tx = tx.Where("price = ?", filter.Price)
	}
	if filter.Audience != "" {
		tx = tx.Where("audience = ?", filter.Audience)
	}
	if filter.Format != "" {
		tx = tx.Where("format = ?", filter.Format)
	}
	if strings.TrimSpace(filter.Subject) != "" {
		tx = tx.Where("subject ILIKE ?", "%"+strings.TrimSpace(filter.Subject)+"%")
	}

	var rows []opportunityModel
	if err := tx.Order("created_at DESC, opportunity_id ASC").Find(&rows).Error; err != nil {
		return nil, mapStoreError(err)
	}

	items := make([]entities.Opportunity, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) Update(ctx context.Context, record entities.Opportunity) error {
	result := r.db.WithContext(ctx).
		Model(&opportunityModel{}).
		Where("opportunity_id = ?", strings.TrimSpace(record.OpportunityID)).
		Updates(opportunityUpdatesFromEntity(record))
	if result.Error != nil {
		return mapStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, opportunityID string, status entities.Status, updatedAt time.Time) (entities.Opportunity, error) {
	result := r.db.WithContext(ctx).
		Model(&opportunityModel{}).
		Where("opportunity_id = ?", strings.TrimSpace(opportunityID)).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": updatedAt.UTC(),
		})
	if result.Error != nil {
		return entities.Opportunity{}, mapStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Opportunity{}, domainerrors.ErrNotFound
	}
	return r.Get(ctx, opportunityID)
}

func (r *Repository) Delete(ctx context.Context, opportunityID string) error {
	result := r.db.WithContext(ctx).
		Where("opportunity_id = ?", strings.TrimSpace(opportunityID)).
		Delete(&opportunityModel{})
	if result.Error != nil {
		return mapStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *Repository) CountByStatus(ctx context.Context) (ports.StatusCounts, error) {
	type statusCountRow struct {
		Status string
		Count  int
	}

	var rows []statusCountRow
	err := r.db.WithContext(ctx).
		Model(&opportunityModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).
		Error
	if err != nil {
		return ports.StatusCounts{}, mapStoreError(err)
	}

	counts := ports.StatusCounts{}
	for _, row := range rows {
		switch entities.Status(row.Status) {
		case entities.StatusApproved:
			counts.Approved = row.Count
		case entities.StatusPending:
			counts.Pending = row.Count
		case entities.StatusRejected:
			counts.Rejected = row.Count
		}
		counts.Total += row.Count
	}
	return counts, nil
}

type opportunityModel struct {
	OpportunityID    string     `gorm:"column:opportunity_id;primaryKey"`
	Title            string     `gorm:"column:title"`
	ShortSummary     string     `gorm:"column:short_summary"`
	Description      string     `gorm:"column:description"`
	Type             string     `gorm:"column:type"`
	Subject          string     `gorm:"column:subject"`
	Price            string     `gorm:"column:price"`
	Audience         string     `gorm:"column:audience"`
	Format           string     `gorm:"column:format"`
	Deadline         *time.Time `gorm:"column:deadline"`
	MinAge           *int       `gorm:"column:min_age"`
	MaxAge           *int       `gorm:"column:max_age"`
	RegistrationLink string     `gorm:"column:registration_link"`
	ImageURL         string     `gorm:"column:image_url"`
	Status           string     `gorm:"column:status"`
	SubmittedBy      *string    `gorm:"column:submitted_by"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (opportunityModel) TableName() string {
	return "opportunities"
}

func opportunityModelFromEntity(item entities.Opportunity) opportunityModel {
	var submittedBy *string
	if value := strings.TrimSpace(item.SubmittedBy); value != "" {
		submittedBy = &value
	}
	return opportunityModel{
		OpportunityID:    strings.TrimSpace(item.OpportunityID),
		Title:            strings.TrimSpace(item.Title),
		ShortSummary:     strings.TrimSpace(item.ShortSummary),
		Description:      strings.TrimSpace(item.Description),
		Type:             string(item.Type),
		Subject:          strings.TrimSpace(item.Subject),
		Price:            string(item.Price),
		Audience:         string(item.Audience),
		Format:           string(item.Format),
		Deadline:         normalizeOptionalTime(item.Deadline),
		MinAge:           item.MinAge,
		MaxAge:           item.MaxAge,
		RegistrationLink: strings.TrimSpace(item.RegistrationLink),
		ImageURL:         strings.TrimSpace(item.ImageURL),
		Status:           string(item.Status),
		SubmittedBy:      submittedBy,
		CreatedAt:        item.CreatedAt.UTC(),
		UpdatedAt:        item.UpdatedAt.UTC(),
	}
}

// opportunityUpdatesFromEntity writes every editable column explicitly so
// cleared optionals (deadline, ages) reach the row as NULL.
func opportunityUpdatesFromEntity(item entities.Opportunity) map[string]any {
	row := opportunityModelFromEntity(item)
	return map[string]any{
		"title":             row.Title,
		"short_summary":     row.ShortSummary,
		"description":       row.Description,
		"type":              row.Type,
		"subject":           row.Subject,
		"price":             row.Price,
		"audience":          row.Audience,
		"format":            row.Format,
		"deadline":          row.Deadline,
		"min_age":           row.MinAge,
		"max_age":           row.MaxAge,
		"registration_link": row.RegistrationLink,
		"image_url":         row.ImageURL,
		"updated_at":        row.UpdatedAt,
	}
}

func (m opportunityModel) toEntity() entities.Opportunity {
	submittedBy := ""
	if m.SubmittedBy != nil {
		submittedBy = *m.SubmittedBy
	}
	return entities.Opportunity{
		OpportunityID:    m.OpportunityID,
		Title:            m.Title,
		ShortSummary:     m.ShortSummary,
		Description:      m.Description,
		Type:             entities.Type(m.Type),
		Subject:          m.Subject,
		Price:            entities.Price(m.Price),
		Audience:         entities.Audience(m.Audience),
		Format:           entities.Format(m.Format),
		Deadline:         normalizeOptionalTime(m.Deadline),
		MinAge:           m.MinAge,
		MaxAge:           m.MaxAge,
		RegistrationLink: m.RegistrationLink,
		ImageURL:         m.ImageURL,
		Status:           entities.Status(m.Status),
		SubmittedBy:      submittedBy,
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// mapStoreError surfaces backend unavailability as a retryable error while
// leaving everything else untouched for the caller to classify.
func mapStoreError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.ErrTransient
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "08") {
		// Class 08: connection exceptions.
		return domainerrors.ErrTransient
	}
	return err
}

var _ ports.Repository = (*Repository)(nil)
