package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fittrack/internal/auth"
	"fittrack/internal/cache"
	"fittrack/internal/errors"
	"fittrack/internal/model"
	"fittrack/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UpdateUserInput carries the mutable profile fields; nil means "leave as is".
type UpdateUserInput struct {
	Name     *string
	Surname  *string
	Nickname *string
	Age      *int
	Role     *model.Role
}

// UserService exposes user profile and track operations.
type UserService interface {
	Get(ctx context.Context, requestedID *uint, caller auth.Identity) (*model.User, error)
	List(ctx context.Context, limit, page int, caller auth.Identity) ([]interface{}, error)
	Update(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error)
	TrackExercise(ctx context.Context, caller auth.Identity, exerciseID uint, duration int) (*model.Track, error)
	ListTrackedExercises(ctx context.Context, caller auth.Identity, limit, page int) ([]model.Track, error)
	RemoveTrackedExercise(ctx context.Context, caller auth.Identity, trackID uint) error
}

type userService struct {
	users     repository.UserRepository
	exercises repository.ExerciseRepository
	tracks    repository.TrackRepository
	cache     *cache.Client
}

// NewUserService builds a UserService.
func NewUserService(
	users repository.UserRepository,
	exercises repository.ExerciseRepository,
	tracks repository.TrackRepository,
	cache *cache.Client,
) UserService {
	return &userService{
		users:     users,
		exercises: exercises,
		tracks:    tracks,
		cache:     cache,
	}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// Get resolves a profile. Requesting another user's profile is admin-only;
// with no requested id the caller gets their own profile.
func (s *userService) Get(ctx context.Context, requestedID *uint, caller auth.Identity) (*model.User, error) {
	targetID := caller.ID
	if requestedID != nil {
		if caller.Role != model.RoleAdmin {
			return nil, errors.ErrForbidden
		}
		targetID = *requestedID
	}

	if data, _ := s.cache.Get(ctx, s.cacheKey(targetID)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(targetID), payload, userCacheTTL)
	}
	return user, nil
}

// List returns one page of users projected by the caller's role: full
// profiles for admins, id+nickname for everyone else. Same data set, no
// permission error.
func (s *userService) List(ctx context.Context, limit, page int, caller auth.Identity) ([]interface{}, error) {
	users, err := s.users.List(ctx, limit, page)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return model.ProjectUsers(users, caller.Role), nil
}

// Update applies a partial profile update. The admin gate runs at the route
// level before this is reached.
func (s *userService) Update(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if in.Name != nil {
		user.Name = in.Name
	}
	if in.Surname != nil {
		user.Surname = in.Surname
	}
	if in.Nickname != nil {
		user.Nickname = in.Nickname
	}
	if in.Age != nil {
		user.Age = in.Age
	}
	if in.Role != nil {
		user.Role = *in.Role
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

// TrackExercise records a completed session for the caller. The caller row is
// re-checked defensively even though authentication should guarantee it.
func (s *userService) TrackExercise(ctx context.Context, caller auth.Identity, exerciseID uint, duration int) (*model.Track, error) {
	if _, err := s.users.FindByID(ctx, caller.ID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if _, err := s.exercises.FindByID(ctx, exerciseID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("find exercise: %w", err)
	}

	track := &model.Track{
		ExerciseID:  exerciseID,
		UserID:      caller.ID,
		CompletedAt: time.Now(),
		Duration:    duration,
	}
	if err := s.tracks.Create(ctx, track); err != nil {
		return nil, fmt.Errorf("create track: %w", err)
	}
	return track, nil
}

// ListTrackedExercises returns one page of the caller's own tracks, never
// another user's.
func (s *userService) ListTrackedExercises(ctx context.Context, caller auth.Identity, limit, page int) ([]model.Track, error) {
	tracks, err := s.tracks.ListByUser(ctx, caller.ID, limit, page)
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	return tracks, nil
}

// RemoveTrackedExercise deletes a track owned by the caller. Ownership is
// checked against the track's user id; a mismatch is forbidden and the track
// persists.
func (s *userService) RemoveTrackedExercise(ctx context.Context, caller auth.Identity, trackID uint) error {
	track, err := s.tracks.FindByID(ctx, trackID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrTrackNotFound
		}
		return fmt.Errorf("find track: %w", err)
	}

	if track.UserID != caller.ID {
		return errors.ErrForbidden
	}

	if err := s.tracks.Delete(ctx, trackID); err != nil {
		return fmt.Errorf("delete track: %w", err)
	}
	return nil
}
