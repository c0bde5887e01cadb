package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fittrack/internal/auth"
	apperrors "fittrack/internal/errors"
	"fittrack/internal/model"
	"fittrack/internal/service"
	"fittrack/internal/validation"
)

// UserHandler handles user profile and track endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest represents a partial profile update.
type UpdateUserRequest struct {
	Name     *string     `json:"name" validate:"omitempty,min=3,max=200"`
	Surname  *string     `json:"surname" validate:"omitempty,min=3,max=200"`
	Nickname *string     `json:"nickname" validate:"omitempty,min=3,max=200"`
	Age      *int        `json:"age" validate:"omitempty,gte=0,lte=200"`
	Role     *model.Role `json:"role" validate:"omitempty,oneof=ADMIN USER"`
}

// TrackExerciseRequest records one completed exercise session.
type TrackExerciseRequest struct {
	ExerciseID uint `json:"exerciseId" validate:"required,gt=0"`
	Duration   int  `json:"duration" validate:"required,gt=0"`
}

func callerIdentity(c echo.Context) (auth.Identity, error) {
	ident, ok := auth.IdentityFromContext(c)
	if !ok {
		return auth.Identity{}, apperrors.ErrUserNotFound
	}
	return ident, nil
}

// Get godoc
// @Summary Get a user profile
// @Description Returns the caller's own profile, or any profile by id for admins.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param id query int false "User ID (admin only)"
// @Success 200 {object} Response
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user [get]
func (h *UserHandler) Get(c echo.Context) error {
	ident, err := callerIdentity(c)
	if err != nil {
		return respondError(c, err)
	}

	fields := validation.StrictQuery(c.QueryParams(), "id")
	requestedID, fe := validation.OptionalID("id", c.QueryParam("id"))
	if fe != nil {
		fields = append(fields, *fe)
	}
	if len(fields) > 0 {
		return respondFieldErrors(c, fields)
	}

	user, err := h.userService.Get(c.Request().Context(), requestedID, ident)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Data:    user,
		Message: "User profile",
	})
}

// List godoc
// @Summary List users
// @Description Admin callers receive full profiles; other callers receive id and nickname only.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (1-100, default 10)"
// @Param page query int true "Zero-based page"
// @Success 200 {object} Response
// @Failure 400 {object} validation.Error
// @Router /user/list [get]
func (h *UserHandler) List(c echo.Context) error {
	ident, err := callerIdentity(c)
	if err != nil {
		return respondError(c, err)
	}

	fields := validation.StrictQuery(c.QueryParams(), "limit", "page")
	limit, fe := validation.Limit(c.QueryParam("limit"))
	if fe != nil {
		fields = append(fields, *fe)
	}
	page, fe := validation.Page(c.QueryParam("page"))
	if fe != nil {
		fields = append(fields, *fe)
	}
	if len(fields) > 0 {
		return respondFieldErrors(c, fields)
	}

	views, err := h.userService.List(c.Request().Context(), limit, page, ident)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Data:    views,
		Message: "List of users",
	})
}

// Update godoc
// @Summary Update a user profile
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Profile fields"
// @Success 200 {object} Response
// @Failure 400 {object} validation.Error
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, fe := validation.ID("id", c.Param("id"))
	if fe != nil {
		return respondFieldErrors(c, []validation.FieldError{*fe})
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	user, err := h.userService.Update(c.Request().Context(), id, service.UpdateUserInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Nickname: req.Nickname,
		Age:      req.Age,
		Role:     req.Role,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Data:    user,
		Message: "User updated",
	})
}

// TrackExercise godoc
// @Summary Record a completed exercise
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TrackExerciseRequest true "Completed session"
// @Success 201 {object} Response
// @Failure 400 {object} validation.Error
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/track-exercise [post]
func (h *UserHandler) TrackExercise(c echo.Context) error {
	ident, err := callerIdentity(c)
	if err != nil {
		return respondError(c, err)
	}

	var req TrackExerciseRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	track, err := h.userService.TrackExercise(c.Request().Context(), ident, req.ExerciseID, req.Duration)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, Response{
		Data:    track,
		Message: "Exercise tracked",
	})
}

// ListTrackedExercises godoc
// @Summary List the caller's tracked exercises
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (1-100, default 10)"
// @Param page query int true "Zero-based page"
// @Success 200 {object} Response
// @Failure 400 {object} validation.Error
// @Router /user/track-exercise/list [get]
func (h *UserHandler) ListTrackedExercises(c echo.Context) error {
	ident, err := callerIdentity(c)
	if err != nil {
		return respondError(c, err)
	}

	fields := validation.StrictQuery(c.QueryParams(), "limit", "page")
	limit, fe := validation.Limit(c.QueryParam("limit"))
	if fe != nil {
		fields = append(fields, *fe)
	}
	page, fe := validation.Page(c.QueryParam("page"))
	if fe != nil {
		fields = append(fields, *fe)
	}
	if len(fields) > 0 {
		return respondFieldErrors(c, fields)
	}

	tracks, err := h.userService.ListTrackedExercises(c.Request().Context(), ident, limit, page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Data:    tracks,
		Message: "List of tracked exercises",
	})
}

// RemoveTrackedExercise godoc
// @Summary Delete one of the caller's tracks
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param trackId path int true "Track ID"
// @Success 200 {object} Response
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/track-exercise/{trackId} [delete]
func (h *UserHandler) RemoveTrackedExercise(c echo.Context) error {
	ident, err := callerIdentity(c)
	if err != nil {
		return respondError(c, err)
	}

	trackID, fe := validation.ID("trackId", c.Param("trackId"))
	if fe != nil {
		return respondFieldErrors(c, []validation.FieldError{*fe})
	}

	if err := h.userService.RemoveTrackedExercise(c.Request().Context(), ident, trackID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Message: "Track deleted",
	})
}
