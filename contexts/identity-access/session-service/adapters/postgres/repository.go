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

	"youthhub/contexts/identity-access/session-service/domain/entities"
	domainerrors "youthhub/contexts/identity-access/session-service/domain/errors"
	"youthhub/contexts/identity-access/session-service/ports"
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

func (r *Repository) Get(ctx context.Context, userID string) (entities.Profile, error) {
	var row profileModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Profile{}, domainerrors.ErrNotFound
		}
		return entities.Profile{}, mapStoreError(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) Create(ctx context.Context, profile entities.Profile) error {
	row := profileModelFromEntity(profile)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).
		Error
	if err != nil {
		return mapStoreError(err)
	}
	return nil
}

type profileModel struct {
	UserID    string    `gorm:"column:user_id;primaryKey"`
	Email     string    `gorm:"column:email"`
	FullName  string    `gorm:"column:full_name"`
	Role      string    `gorm:"column:role"`
	School    *string   `gorm:"column:school"`
	Grade     *string   `gorm:"column:grade"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (profileModel) TableName() string {
	return "profiles"
}

func profileModelFromEntity(item entities.Profile) profileModel {
	return profileModel{
		UserID:    strings.TrimSpace(item.UserID),
		Email:     strings.TrimSpace(item.Email),
		FullName:  strings.TrimSpace(item.FullName),
		Role:      string(item.Role),
		School:    item.School,
		Grade:     item.Grade,
		CreatedAt: item.CreatedAt.UTC(),
	}
}

func (m profileModel) toEntity() entities.Profile {
	return entities.Profile{
		UserID:    m.UserID,
		Email:     m.Email,
		FullName:  m.FullName,
		Role:      entities.Role(m.Role),
		School:    m.School,
		Grade:     m.Grade,
		CreatedAt: m.CreatedAt.UTC(),
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

var _ ports.ProfileRepository = (*Repository)(nil)
