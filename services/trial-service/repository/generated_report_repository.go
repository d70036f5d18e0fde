package repository

import (
	"context"
	"errors"

	"github.com/RigelNana/arkclinic/services/trial-service/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GeneratedReportRepository interface {
	Create(ctx context.Context, report *models.GeneratedReport) error
	GetByUserIDWithPagination(ctx context.Context, userID uuid.UUID, page, pageSize int32) ([]*models.GeneratedReport, int64, error)
	GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*models.GeneratedReport, error)
}

type GeneratedReportRepositoryImpl struct {
	*BaseRepositoryImpl[models.GeneratedReport]
}

func NewGeneratedReportRepository(db *gorm.DB) GeneratedReportRepository {
	return &GeneratedReportRepositoryImpl{
		BaseRepositoryImpl: NewBaseRepository[models.GeneratedReport](db),
	}
}

func (r *GeneratedReportRepositoryImpl) GetByUserIDWithPagination(ctx context.Context, userID uuid.UUID, page, pageSize int32) ([]*models.GeneratedReport, int64, error) {
	var reports []*models.GeneratedReport
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&models.GeneratedReport{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := pageBounds(page, pageSize)
	err := db.Where("user_id = ?", userID).
		Order("generated_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

func reportByOwnerQuery(db *gorm.DB, id, userID uuid.UUID) *gorm.DB {
	return db.Where("id = ? AND user_id = ?", id, userID)
}

func (r *GeneratedReportRepositoryImpl) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*models.GeneratedReport, error) {
	var report models.GeneratedReport
	err := reportByOwnerQuery(r.db.WithContext(ctx), id, userID).First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}
