package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fittrack/internal/service"
	"fittrack/internal/validation"
)

// ProgramHandler handles program catalog endpoints.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new program handler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// List godoc
// @Summary List programs
// @Tags program
// @Produce json
// @Param limit query int false "Page size (1-100, default 10)"
// @Param page query int true "Zero-based page"
// @Param search query string false "Name substring filter (3-200 chars)"
// @Success 200 {object} Response
// @Failure 400 {object} validation.Error
// @Router /program/list [get]
func (h *ProgramHandler) List(c echo.Context) error {
	fields := validation.StrictQuery(c.QueryParams(), "limit", "page", "search")
	limit, fe := validation.Limit(c.QueryParam("limit"))
	if fe != nil {
		fields = append(fields, *fe)
	}
	page, fe := validation.Page(c.QueryParam("page"))
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

	programs, err := h.programService.List(c.Request().Context(), limit, page, search)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Data:    programs,
		Message: "List of programs",
	})
}
