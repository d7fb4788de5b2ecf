package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/nearbiz/internal/models"
)

type AuditLogFilter struct {
	UserID uint
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

type AuditLogGormRepository struct {
	db *gorm.DB
}

func NewAuditLogGormRepository(db *gorm.DB) *AuditLogGormRepository {
	return &AuditLogGormRepository{db: db}
}

// List returns one page of the user's audit log, newest first, and the total
// number of matching rows.
func (r *AuditLogGormRepository) List(
	ctx context.Context,
	f AuditLogFilter,
) ([]models.AuditLog, int64, error) {

	// --------------------------------------------------
	// Base query, always scoped to the user
	// --------------------------------------------------
	q := r.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("user_id = ?", f.UserID)

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
