package repository

import (
	"context"

	"gorm.io/gorm"

	"fittrack/internal/model"
)

// TrackRepository defines track persistence operations. Tracks are created
// and deleted, never updated.
type TrackRepository interface {
	Create(ctx context.Context, track *model.Track) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Track, error)
	ListByUser(ctx context.Context, userID uint, limit, page int) ([]model.Track, error)
}

type trackRepository struct {
	db *gorm.DB
}

// NewTrackRepository builds a GORM-backed track repository.
func NewTrackRepository(db *gorm.DB) TrackRepository {
	return &trackRepository{db: db}
}

func (r *trackRepository) Create(ctx context.Context, track *model.Track) error {
	return r.db.WithContext(ctx).Create(track).Error
}

func (r *trackRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Track{}, id).Error
}

func (r *trackRepository) FindByID(ctx context.Context, id uint) (*model.Track, error) {
	var track model.Track
	if err := r.db.WithContext(ctx).First(&track, id).Error; err != nil {
		return nil, err
	}
	return &track, nil
}

func (r *trackRepository) ListByUser(ctx context.Context, userID uint, limit, page int) ([]model.Track, error) {
	var tracks []model.Track
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Limit(limit).
		Offset(pageOffset(limit, page)).
		Find(&tracks).Error
	if err != nil {
		return nil, err
	}
	return tracks, nil
}
