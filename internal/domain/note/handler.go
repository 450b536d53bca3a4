package note

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/notes", h.CreateNote)
	api.GET("/patients/:id/notes", h.GetPatientNotes)
}

func (h *Handler) CreateNote(c echo.Context) error {
	var n Note
	if err := c.Bind(&n); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := h.svc.AddNote(c.Request().Context(), &n)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetPatientNotes(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient ID must be an integer")
	}

	notes, err := h.svc.GetPatientNotes(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, notes)
}

func toHTTPError(err error) *echo.HTTPError {
	var storageErr *StorageError
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &storageErr):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "note store unavailable")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
