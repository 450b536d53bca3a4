package patient

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
	api.GET("/patients", h.ListPatients)
	api.POST("/patients", h.CreatePatient)
	api.GET("/patients/:id", h.GetPatient)
	api.PUT("/patients/:id", h.UpdatePatient)
	api.DELETE("/patients/:id", h.DeletePatient)
}

// toHTTPError maps domain errors to response statuses: invalid argument and
// validation failures are the caller's fault (400), a natural-key collision
// is a conflict (409), a missing record is 404, and a storage failure is 503
// so the caller knows a retry may help. Anything else is a 500.
func toHTTPError(err error) *echo.HTTPError {
	var (
		dupErr *AlreadyExistsError
		nfErr  *NotFoundError
		stErr  *StorageError
	)
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &dupErr):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.As(err, &nfErr):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.As(err, &stErr):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) ListPatients(c echo.Context) error {
	patients, err := h.svc.GetPatients(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	if patients == nil {
		patients = []*Patient{}
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if violations := Validate(&p); len(violations) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, violations)
	}
	created, err := h.svc.CreatePatient(c.Request().Context(), &p)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, found, err := h.svc.GetPatientByID(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "Patient with the provided ID does not exist.")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.ID = id
	if violations := Validate(&p); len(violations) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, violations)
	}
	updated, err := h.svc.UpdatePatient(c.Request().Context(), &p)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, found, err := h.svc.GetPatientByID(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "Patient with the provided ID does not exist.")
	}
	if err := h.svc.DeletePatient(c.Request().Context(), p); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
