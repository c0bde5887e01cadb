package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fittrack/internal/cache"
	"fittrack/internal/errors"
	"fittrack/internal/model"
	"fittrack/internal/repository"
)

const exerciseCacheTTL = 5 * time.Minute

// ListExercisesInput carries paging and optional filters.
type ListExercisesInput struct {
	Limit     int
	Page      int
	ProgramID *uint
	Search    *string
}

// UpdateExerciseInput carries the mutable exercise fields; nil means "leave as is".
type UpdateExerciseInput struct {
	Name       *string
	Difficulty *model.Difficulty
}

// ExerciseService exposes exercise catalog operations.
type ExerciseService interface {
	Create(ctx context.Context, name string, difficulty model.Difficulty) (*model.Exercise, error)
	Get(ctx context.Context, id uint) (*model.Exercise, error)
	List(ctx context.Context, in ListExercisesInput) ([]model.Exercise, error)
	Update(ctx context.Context, id uint, in UpdateExerciseInput) (*model.Exercise, error)
	Delete(ctx context.Context, id uint) error
	AddToProgram(ctx context.Context, exerciseID, programID uint) (*model.Exercise, error)
	RemoveFromProgram(ctx context.Context, exerciseID, programID uint) (*model.Exercise, error)
}

type exerciseService struct {
	exercises repository.ExerciseRepository
	programs  repository.ProgramRepository
	cache     *cache.Client
}

// NewExerciseService builds an ExerciseService.
func NewExerciseService(
	exercises repository.ExerciseRepository,
	programs repository.ProgramRepository,
	cache *cache.Client,
) ExerciseService {
	return &exerciseService{
		exercises: exercises,
		programs:  programs,
		cache:     cache,
	}
}

func (s *exerciseService) cacheKey(id uint) string {
	return fmt.Sprintf("exercise:%d", id)
}

// Create persists a new exercise. Name uniqueness comes from the storage
// constraint; a collision surfaces as the domain conflict error.
func (s *exerciseService) Create(ctx context.Context, name string, difficulty model.Difficulty) (*model.Exercise, error) {
	exercise := &model.Exercise{
		Name:       name,
		Difficulty: difficulty,
	}
	if err := s.exercises.Create(ctx, exercise); err != nil {
		if repository.IsDuplicateEntry(err) {
			return nil, errors.ErrExerciseNameTaken
		}
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	return exercise, nil
}

// Get retrieves an exercise by id with read-through caching.
func (s *exerciseService) Get(ctx context.Context, id uint) (*model.Exercise, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Exercise
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	exercise, err := s.exercises.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("find exercise: %w", err)
	}

	if payload, err := json.Marshal(exercise); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, exerciseCacheTTL)
	}
	return exercise, nil
}

// List returns one page of exercises, optionally filtered by exact program id
// and case-insensitive name substring.
func (s *exerciseService) List(ctx context.Context, in ListExercisesInput) ([]model.Exercise, error) {
	exercises, err := s.exercises.List(ctx, repository.ListExercisesQuery{
		Limit:     in.Limit,
		Page:      in.Page,
		ProgramID: in.ProgramID,
		Search:    in.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// Update applies a partial update. A rename onto an existing name is a
// conflict.
func (s *exerciseService) Update(ctx context.Context, id uint, in UpdateExerciseInput) (*model.Exercise, error) {
	exercise, err := s.exercises.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("find exercise: %w", err)
	}

	if in.Name != nil {
		exercise.Name = *in.Name
	}
	if in.Difficulty != nil {
		exercise.Difficulty = *in.Difficulty
	}

	if err := s.exercises.Update(ctx, exercise); err != nil {
		if repository.IsDuplicateEntry(err) {
			return nil, errors.ErrExerciseNameTaken
		}
		return nil, fmt.Errorf("update exercise: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return exercise, nil
}

// Delete removes an existing exercise.
func (s *exerciseService) Delete(ctx context.Context, id uint) error {
	if _, err := s.exercises.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrExerciseNotFound
		}
		return fmt.Errorf("find exercise: %w", err)
	}

	if err := s.exercises.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// AddToProgram attaches an exercise to a program. Both sides must exist.
func (s *exerciseService) AddToProgram(ctx context.Context, exerciseID, programID uint) (*model.Exercise, error) {
	return s.setProgram(ctx, exerciseID, programID, &programID)
}

// RemoveFromProgram detaches an exercise from a program. The program's
// existence is checked before detaching even though the cleared field does
// not depend on it.
func (s *exerciseService) RemoveFromProgram(ctx context.Context, exerciseID, programID uint) (*model.Exercise, error) {
	return s.setProgram(ctx, exerciseID, programID, nil)
}

func (s *exerciseService) setProgram(ctx context.Context, exerciseID, programID uint, ref *uint) (*model.Exercise, error) {
	exercise, err := s.exercises.FindByID(ctx, exerciseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("find exercise: %w", err)
	}

	if _, err := s.programs.FindByID(ctx, programID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("find program: %w", err)
	}

	exercise.ProgramID = ref
	if err := s.exercises.Update(ctx, exercise); err != nil {
		return nil, fmt.Errorf("update exercise: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(exerciseID))
	return exercise, nil
}
