package repository

import (
	"context"

	"gorm.io/gorm"

	"fittrack/internal/model"
)

// ProgramRepository defines program persistence operations.
type ProgramRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Program, error)
	List(ctx context.Context, limit, page int, search *string) ([]model.Program, error)
}

type programRepository struct {
	db *gorm.DB
}

// NewProgramRepository builds a GORM-backed program repository.
func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) FindByID(ctx context.Context, id uint) (*model.Program, error) {
	var program model.Program
	if err := r.db.WithContext(ctx).First(&program, id).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *programRepository) List(ctx context.Context, limit, page int, search *string) ([]model.Program, error) {
	tx := r.db.WithContext(ctx).Order("id")
	if search != nil {
		tx = tx.Where("LOWER(name) LIKE LOWER(?)", "%"+*search+"%")
	}

	var programs []model.Program
	if err := tx.Limit(limit).Offset(pageOffset(limit, page)).Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}
