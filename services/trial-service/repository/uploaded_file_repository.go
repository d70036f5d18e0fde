package repository

import (
	"context"

	"github.com/RigelNana/arkclinic/services/trial-service/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UploadedFileRepository interface {
	BaseRepository[models.UploadedFile]
	// Transition moves the file to status "to" only while its current status
	// is one of "from". extra columns are written in the same statement.
	Transition(ctx context.Context, id uuid.UUID, from []models.FileStatus, to models.FileStatus, extra map[string]any) error
	FindCompletedByUser(ctx context.Context, userID uuid.UUID) ([]*models.UploadedFile, error)
	GetByUserIDWithPagination(ctx context.Context, userID uuid.UUID, page, pageSize int32) ([]*models.UploadedFile, int64, error)
}

type UploadedFileRepositoryImpl struct {
	*BaseRepositoryImpl[models.UploadedFile]
}

func NewUploadedFileRepository(db *gorm.DB) UploadedFileRepository {
	return &UploadedFileRepositoryImpl{
		BaseRepositoryImpl: NewBaseRepository[models.UploadedFile](db),
	}
}

func transitionQuery(db *gorm.DB, id uuid.UUID, from []models.FileStatus, to models.FileStatus, extra map[string]any) *gorm.DB {
	updates := map[string]any{"processing_status": to}
	for k, v := range extra {
		updates[k] = v
	}
	return db.Model(&models.UploadedFile{}).
		Where("id = ? AND processing_status IN ?", id, from).
		Updates(updates)
}

func (r *UploadedFileRepositoryImpl) Transition(ctx context.Context, id uuid.UUID, from []models.FileStatus, to models.FileStatus, extra map[string]any) error {
	res := transitionQuery(r.db.WithContext(ctx), id, from, to, extra)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func completedByUserQuery(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Where("user_id = ? AND processing_status = ?", userID, models.FileStatusCompleted).
		Order("created_at ASC, id ASC")
}

func (r *UploadedFileRepositoryImpl) FindCompletedByUser(ctx context.Context, userID uuid.UUID) ([]*models.UploadedFile, error) {
	var files []*models.UploadedFile
	if err := completedByUserQuery(r.db.WithContext(ctx), userID).Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *UploadedFileRepositoryImpl) GetByUserIDWithPagination(ctx context.Context, userID uuid.UUID, page, pageSize int32) ([]*models.UploadedFile, int64, error) {
	var files []*models.UploadedFile
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&models.UploadedFile{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := pageBounds(page, pageSize)
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&files).Error
	if err != nil {
		return nil, 0, err
	}
	return files, total, nil
}
