package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"youthhub/contexts/listings/bookmark-service/domain/entities"
	domainerrors "youthhub/contexts/listings/bookmark-service/domain/errors"
	"youthhub/contexts/listings/bookmark-service/ports"
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

func (r *Repository) Add(ctx context.Context, bookmark entities.Bookmark) (entities.Bookmark, error) {
	row := bookmarkModelFromEntity(bookmark)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).
		Error
	if err != nil {
		return entities.Bookmark{}, mapStoreError(err)
	}

	// The insert may have hit an existing pair; read back the winning row so
	// the caller sees the stored timestamp.
	var stored bookmarkModel
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND opportunity_id = ?", row.UserID, row.OpportunityID).
		First(&stored).
		Error
	if err != nil {
		return entities.Bookmark{}, mapStoreError(err)
	}
	return stored.toEntity(), nil
}

func (r *Repository) Remove(ctx context.Context, userID string, opportunityID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND opportunity_id = ?", strings.TrimSpace(userID), strings.TrimSpace(opportunityID)).
		Delete(&bookmarkModel{}).
		Error
	if err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (r *Repository) ListForUser(ctx context.Context, userID string) ([]entities.Bookmark, error) {
	var rows []bookmarkModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Order("created_at DESC, opportunity_id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, mapStoreError(err)
	}

	items := make([]entities.Bookmark, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) RemoveAllForOpportunity(ctx context.Context, opportunityID string) error {
	err := r.db.WithContext(ctx).
		Where("opportunity_id = ?", strings.TrimSpace(opportunityID)).
		Delete(&bookmarkModel{}).
		Error
	if err != nil {
		return mapStoreError(err)
	}
	return nil
}

type bookmarkModel struct {
	UserID        string    `gorm:"column:user_id;primaryKey"`
	OpportunityID string    `gorm:"column:opportunity_id;primaryKey"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (bookmarkModel) TableName() string {
	return "bookmarks"
}

func bookmarkModelFromEntity(item entities.Bookmark) bookmarkModel {
	return bookmarkModel{
		UserID:        strings.TrimSpace(item.UserID),
		OpportunityID: strings.TrimSpace(item.OpportunityID),
		CreatedAt:     item.CreatedAt.UTC(),
	}
}

func (m bookmarkModel) toEntity() entities.Bookmark {
	return entities.Bookmark{
		UserID:        m.UserID,
		OpportunityID: m.OpportunityID,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

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
