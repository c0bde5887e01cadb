package service

import (
	"context"
	"fmt"

	"fittrack/internal/model"
	"fittrack/internal/repository"
)

// ProgramService exposes program catalog operations.
type ProgramService interface {
	List(ctx context.Context, limit, page int, search *string) ([]model.Program, error)
}

type programService struct {
	programs repository.ProgramRepository
}

// NewProgramService builds a ProgramService.
func NewProgramService(programs repository.ProgramRepository) ProgramService {
	return &programService{programs: programs}
}

// List returns one page of programs, optionally filtered by case-insensitive
// name substring.
func (s *programService) List(ctx context.Context, limit, page int, search *string) ([]model.Program, error) {
	programs, err := s.programs.List(ctx, limit, page, search)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}
