package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fittrack/internal/model"
	"fittrack/internal/service"
	"fittrack/internal/validation"
)

// ExerciseHandler handles exercise catalog endpoints.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new exercise handler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// CreateExerciseRequest represents a new catalog entry.
type CreateExerciseRequest struct {
	Name       string           `json:"name" validate:"required,min=1,max=200"`
	Difficulty model.Difficulty `json:"difficulty" validate:"required,oneof=EASY MEDIUM HARD"`
}

// UpdateExerciseRequest represents a partial exercise update.
type UpdateExerciseRequest struct {
	Name       *string           `json:"name" validate:"omitempty,min=1,max=200"`
	Difficulty *model.Difficulty `json:"difficulty" validate:"omitempty,oneof=EASY MEDIUM HARD"`
}

// Create godoc
// @Summary Create an exercise
// @Tags exercise
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExerciseRequest true "Exercise data"
// @Success 201 {object} Response
// @Failure 400 {object} validation.Error
// @Failure 409 {object} errors.ErrorResponse
// @Router /exercise [post]
func (h *ExerciseHandler) Create(c echo.Context) error {
	var req CreateExerciseRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	exercise, err := h.exerciseService.Create(c.Request().Context(), req.Name, req.Difficulty)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, Response{
		Data:    exercise,
		Message: "Exercise created",
	})
}

// Get godoc
// @Summary Get an exercise by id
// @Tags exercise
// @Produce json
// @Param id path int true "Exercise ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /exercise/{id} [get]
func (h *ExerciseHandler) Get(c echo.Context) error {
	id, fe := validation.ID("id", c.Param("id"))
	if fe != nil {
		return respondFieldErrors(c, []validation.FieldError{*fe})
	}

	exercise, err := h.exerciseService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Data:    exercise,
		Message: "Exercise",
	})
}

// List godoc
// @Summary List exercises
// @Tags exercise
// @Produce json
// @Param limit query int false "Page size (1-100, default 10)"
// @Param page query int true "Zero-based page"
// @Param programId query int false "Filter by program"
// @Param search query string false "Name substring filter (3-200 chars)"
// @Success 200 {object} Response
// @Failure 400 {object} validation.Error
// @Router /exercise/list [get]
func (h *ExerciseHandler) List(c echo.Context) error {
	fields := validation.StrictQuery(c.QueryParams(), "limit", "page", "programId", "search")
	limit, fe := validation.Limit(c.QueryParam("limit"))
	if fe != nil {
		fields = append(fields, *fe)
	}
	page, fe := validation.Page(c.QueryParam("page"))
	if fe != nil {
		fields = append(fields, *fe)
	}
	programID, fe := validation.OptionalID("programId", c.QueryParam("programId"))
	if fe != nil {
		fields = append(fields, *fe)
	}
	search, fe := validation.Search(c.QueryParam("search"))
	if fe != nil {
		fields = append(fields, *fe)
	}
	if len(fields) > 0 {
		return respondFieldErrors(c, fields)
	}

	exercises, err := h.exerciseService.List(c.Request().Context(), service.ListExercisesInput{
		Limit:     limit,
		Page:      page,
		ProgramID: programID,
		Search:    search,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Data:    exercises,
		Message: "List of exercises",
	})
}

// Update godoc
// @Summary Update an exercise
// @Tags exercise
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Param request body UpdateExerciseRequest true "Exercise fields"
// @Success 200 {object} Response
// @Failure 400 {object} validation.Error
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /exercise/{id} [patch]
func (h *ExerciseHandler) Update(c echo.Context) error {
	id, fe := validation.ID("id", c.Param("id"))
	if fe != nil {
		return respondFieldErrors(c, []validation.FieldError{*fe})
	}

	var req UpdateExerciseRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	exercise, err := h.exerciseService.Update(c.Request().Context(), id, service.UpdateExerciseInput{
		Name:       req.Name,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Data:    exercise,
		Message: "Exercise updated",
	})
}

// Delete godoc
// @Summary Delete an exercise
// @Tags exercise
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /exercise/{id} [delete]
func (h *ExerciseHandler) Delete(c echo.Context) error {
	id, fe := validation.ID("id", c.Param("id"))
	if fe != nil {
		return respondFieldErrors(c, []validation.FieldError{*fe})
	}

	if err := h.exerciseService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Message: "Exercise deleted",
	})
}

// AddToProgram godoc
// @Summary Attach an exercise to a program
// @Tags exercise
// @Produce json
// @Security BearerAuth
// @Param exerciseId path int true "Exercise ID"
// @Param programId path int true "Program ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /exercise/{exerciseId}/program/{programId} [post]
func (h *ExerciseHandler) AddToProgram(c echo.Context) error {
	exerciseID, programID, fields := programLinkParams(c)
	if len(fields) > 0 {
		return respondFieldErrors(c, fields)
	}

	exercise, err := h.exerciseService.AddToProgram(c.Request().Context(), exerciseID, programID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Data:    exercise,
		Message: "Exercise added to program",
	})
}

// RemoveFromProgram godoc
// @Summary Detach an exercise from a program
// @Tags exercise
// @Produce json
// @Security BearerAuth
// @Param exerciseId path int true "Exercise ID"
// @Param programId path int true "Program ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /exercise/{exerciseId}/program/{programId} [delete]
func (h *ExerciseHandler) RemoveFromProgram(c echo.Context) error {
	exerciseID, programID, fields := programLinkParams(c)
	if len(fields) > 0 {
		return respondFieldErrors(c, fields)
	}

	exercise, err := h.exerciseService.RemoveFromProgram(c.Request().Context(), exerciseID, programID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Data:    exercise,
		Message: "Exercise removed from program",
	})
}

func programLinkParams(c echo.Context) (exerciseID, programID uint, fields []validation.FieldError) {
	exerciseID, fe := validation.ID("exerciseId", c.Param("exerciseId"))
	if fe != nil {
		fields = append(fields, *fe)
	}
	programID, fe = validation.ID("programId", c.Param("programId"))
	if fe != nil {
		fields = append(fields, *fe)
	}
	return exerciseID, programID, fields
}
