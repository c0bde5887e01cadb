package repository

import (
	"context"

	"gorm.io/gorm"

	"fittrack/internal/model"
)

// ListExercisesQuery carries the optional filters for listing exercises.
type ListExercisesQuery struct {
	Limit     int
	Page      int
	ProgramID *uint
	Search    *string
}

// ExerciseRepository defines exercise persistence operations.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *model.Exercise) error
	Update(ctx context.Context, exercise *model.Exercise) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Exercise, error)
	List(ctx context.Context, q ListExercisesQuery) ([]model.Exercise, error)
}

type exerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository builds a GORM-backed exercise repository.
func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) Create(ctx context.Context, exercise *model.Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

func (r *exerciseRepository) Update(ctx context.Context, exercise *model.Exercise) error {
	return r.db.WithContext(ctx).Save(exercise).Error
}

func (r *exerciseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Exercise{}, id).Error
}

func (r *exerciseRepository) FindByID(ctx context.Context, id uint) (*model.Exercise, error) {
	var exercise model.Exercise
	if err := r.db.WithContext(ctx).First(&exercise, id).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) List(ctx context.Context, q ListExercisesQuery) ([]model.Exercise, error) {
	tx := r.db.WithContext(ctx).Order("id")
	if q.ProgramID != nil {
		tx = tx.Where("program_id = ?", *q.ProgramID)
	}
	if q.Search != nil {
		tx = tx.Where("LOWER(name) LIKE LOWER(?)", "%"+*q.Search+"%")
	}

	var exercises []model.Exercise
	err := tx.Limit(q.Limit).Offset(pageOffset(q.Limit, q.Page)).Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}
