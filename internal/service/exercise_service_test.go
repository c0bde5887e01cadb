package service

import (
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"fittrack/internal/errors"
	"fittrack/internal/model"
	"fittrack/internal/repository"
)

func newExerciseService(exercises *MockExerciseRepository, programs *MockProgramRepository) ExerciseService {
	return NewExerciseService(exercises, programs, nil)
}

func duplicateEntryErr() error {
	return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
}

func TestExerciseService_Create(t *testing.T) {
	t.Run("persists new exercise", func(t *testing.T) {
		mockExercises := new(MockExerciseRepository)
		mockExercises.On("Create", mock.Anything, mock.AnythingOfType("*model.Exercise")).Return(nil)

		service := newExerciseService(mockExercises, new(MockProgramRepository))
		exercise, err := service.Create(context.Background(), "Push-ups", model.DifficultyMedium)

		assert.NoError(t, err)
		assert.Equal(t, "Push-ups", exercise.Name)
		assert.Equal(t, model.DifficultyMedium, exercise.Difficulty)
		assert.Nil(t, exercise.ProgramID)
		mockExercises.AssertExpectations(t)
	})

	t.Run("name collision surfaces as conflict", func(t *testing.T) {
		mockExercises := new(MockExerciseRepository)
		mockExercises.On("Create", mock.Anything, mock.AnythingOfType("*model.Exercise")).
			Return(duplicateEntryErr())

		service := newExerciseService(mockExercises, new(MockProgramRepository))
		exercise, err := service.Create(context.Background(), "Push-ups", model.DifficultyMedium)

		assert.Equal(t, errors.ErrExerciseNameTaken, err)
		assert.Nil(t, exercise)
		mockExercises.AssertExpectations(t)
	})
}

func TestExerciseService_Get(t *testing.T) {
	t.Run("round-trips stored fields", func(t *testing.T) {
		programID := uint(2)
		mockExercises := new(MockExerciseRepository)
		mockExercises.On("FindByID", mock.Anything, uint(8)).Return(&model.Exercise{
			ID:         8,
			Name:       "Push-ups",
			Difficulty: model.DifficultyMedium,
			ProgramID:  &programID,
		}, nil)

		service := newExerciseService(mockExercises, new(MockProgramRepository))
		exercise, err := service.Get(context.Background(), 8)

		assert.NoError(t, err)
		assert.Equal(t, "Push-ups", exercise.Name)
		assert.Equal(t, model.DifficultyMedium, exercise.Difficulty)
		assert.Equal(t, uint(2), *exercise.ProgramID)
	})

	t.Run("missing exercise", func(t *testing.T) {
		mockExercises := new(MockExerciseRepository)
		mockExercises.On("FindByID", mock.Anything, uint(8)).Return(nil, gorm.ErrRecordNotFound)

		service := newExerciseService(mockExercises, new(MockProgramRepository))
		exercise, err := service.Get(context.Background(), 8)

		assert.Equal(t, errors.ErrExerciseNotFound, err)
		assert.Nil(t, exercise)
	})
}

func TestExerciseService_List_PassesFilters(t *testing.T) {
	programID := uint(2)
	search := "push"
	mockExercises := new(MockExerciseRepository)
	mockExercises.On("List", mock.Anything, repository.ListExercisesQuery{
		Limit:     2,
		Page:      1,
		ProgramID: &programID,
		Search:    &search,
	}).Return([]model.Exercise{{ID: 3}, {ID: 4}}, nil)

	service := newExerciseService(mockExercises, new(MockProgramRepository))
	exercises, err := service.List(context.Background(), ListExercisesInput{
		Limit:     2,
		Page:      1,
		ProgramID: &programID,
		Search:    &search,
	})

	assert.NoError(t, err)
	assert.Len(t, exercises, 2)
	mockExercises.AssertExpectations(t)
}

func TestExerciseService_Update(t *testing.T) {
	t.Run("missing exercise", func(t *testing.T) {
		mockExercises := new(MockExerciseRepository)
		mockExercises.On("FindByID", mock.Anything, uint(8)).Return(nil, gorm.ErrRecordNotFound)

		service := newExerciseService(mockExercises, new(MockProgramRepository))
		exercise, err := service.Update(context.Background(), 8, UpdateExerciseInput{})

		assert.Equal(t, errors.ErrExerciseNotFound, err)
		assert.Nil(t, exercise)
	})

	t.Run("rename collision surfaces as conflict", func(t *testing.T) {
		mockExercises := new(MockExerciseRepository)
		mockExercises.On("FindByID", mock.Anything, uint(8)).
			Return(&model.Exercise{ID: 8, Name: "Squats", Difficulty: model.DifficultyEasy}, nil)
		mockExercises.On("Update", mock.Anything, mock.AnythingOfType("*model.Exercise")).
			Return(duplicateEntryErr())

		service := newExerciseService(mockExercises, new(MockProgramRepository))
		name := "Push-ups"
		exercise, err := service.Update(context.Background(), 8, UpdateExerciseInput{Name: &name})

		assert.Equal(t, errors.ErrExerciseNameTaken, err)
		assert.Nil(t, exercise)
		mockExercises.AssertExpectations(t)
	})

	t.Run("partial update keeps difficulty", func(t *testing.T) {
		mockExercises := new(MockExerciseRepository)
		mockExercises.On("FindByID", mock.Anything, uint(8)).
			Return(&model.Exercise{ID: 8, Name: "Squats", Difficulty: model.DifficultyEasy}, nil)
		mockExercises.On("Update", mock.Anything, mock.AnythingOfType("*model.Exercise")).Return(nil)

		service := newExerciseService(mockExercises, new(MockProgramRepository))
		name := "Jump squats"
		exercise, err := service.Update(context.Background(), 8, UpdateExerciseInput{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, "Jump squats", exercise.Name)
		assert.Equal(t, model.DifficultyEasy, exercise.Difficulty)
	})
}

func TestExerciseService_Delete(t *testing.T) {
	t.Run("missing exercise", func(t *testing.T) {
		mockExercises := new(MockExerciseRepository)
		mockExercises.On("FindByID", mock.Anything, uint(8)).Return(nil, gorm.ErrRecordNotFound)

		service := newExerciseService(mockExercises, new(MockProgramRepository))
		err := service.Delete(context.Background(), 8)

		assert.Equal(t, errors.ErrExerciseNotFound, err)
		mockExercises.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("existing exercise is removed", func(t *testing.T) {
		mockExercises := new(MockExerciseRepository)
		mockExercises.On("FindByID", mock.Anything, uint(8)).Return(&model.Exercise{ID: 8}, nil)
		mockExercises.On("Delete", mock.Anything, uint(8)).Return(nil)

		service := newExerciseService(mockExercises, new(MockProgramRepository))
		err := service.Delete(context.Background(), 8)

		assert.NoError(t, err)
		mockExercises.AssertExpectations(t)
	})
}

func TestExerciseService_AddToProgram(t *testing.T) {
	t.Run("missing exercise", func(t *testing.T) {
		mockExercises := new(MockExerciseRepository)
		mockExercises.On("FindByID", mock.Anything, uint(8)).Return(nil, gorm.ErrRecordNotFound)

		service := newExerciseService(mockExercises, new(MockProgramRepository))
		exercise, err := service.AddToProgram(context.Background(), 8, 2)

		assert.Equal(t, errors.ErrExerciseNotFound, err)
		assert.Nil(t, exercise)
	})

	t.Run("missing program leaves the exercise unchanged", func(t *testing.T) {
		mockExercises := new(MockExerciseRepository)
		mockExercises.On("FindByID", mock.Anything, uint(8)).
			Return(&model.Exercise{ID: 8, Name: "Push-ups"}, nil)
		mockPrograms := new(MockProgramRepository)
		mockPrograms.On("FindByID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)

		service := newExerciseService(mockExercises, mockPrograms)
		exercise, err := service.AddToProgram(context.Background(), 8, 2)

		assert.Equal(t, errors.ErrProgramNotFound, err)
		assert.Nil(t, exercise)
		mockExercises.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("attaches the program reference", func(t *testing.T) {
		mockExercises := new(MockExerciseRepository)
		mockExercises.On("FindByID", mock.Anything, uint(8)).
			Return(&model.Exercise{ID: 8, Name: "Push-ups"}, nil)
		mockExercises.On("Update", mock.Anything, mock.AnythingOfType("*model.Exercise")).Return(nil)
		mockPrograms := new(MockProgramRepository)
		mockPrograms.On("FindByID", mock.Anything, uint(2)).Return(&model.Program{ID: 2}, nil)

		service := newExerciseService(mockExercises, mockPrograms)
		exercise, err := service.AddToProgram(context.Background(), 8, 2)

		assert.NoError(t, err)
		assert.Equal(t, uint(2), *exercise.ProgramID)
		mockExercises.AssertExpectations(t)
	})
}

func TestExerciseService_RemoveFromProgram(t *testing.T) {
	t.Run("program existence is checked before detaching", func(t *testing.T) {
		programID := uint(2)
		mockExercises := new(MockExerciseRepository)
		mockExercises.On("FindByID", mock.Anything, uint(8)).
			Return(&model.Exercise{ID: 8, ProgramID: &programID}, nil)
		mockPrograms := new(MockProgramRepository)
		mockPrograms.On("FindByID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)

		service := newExerciseService(mockExercises, mockPrograms)
		exercise, err := service.RemoveFromProgram(context.Background(), 8, 2)

		assert.Equal(t, errors.ErrProgramNotFound, err)
		assert.Nil(t, exercise)
		mockExercises.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("clears the program reference", func(t *testing.T) {
		programID := uint(2)
		mockExercises := new(MockExerciseRepository)
		mockExercises.On("FindByID", mock.Anything, uint(8)).
			Return(&model.Exercise{ID: 8, ProgramID: &programID}, nil)
		mockExercises.On("Update", mock.Anything, mock.AnythingOfType("*model.Exercise")).Return(nil)
		mockPrograms := new(MockProgramRepository)
		mockPrograms.On("FindByID", mock.Anything, uint(2)).Return(&model.Program{ID: 2}, nil)

		service := newExerciseService(mockExercises, mockPrograms)
		exercise, err := service.RemoveFromProgram(context.Background(), 8, 2)

		assert.NoError(t, err)
		assert.Nil(t, exercise.ProgramID)
		mockExercises.AssertExpectations(t)
	})
}
