package encounter

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ehr/flowsheet/internal/domain/form"
	"github.com/ehr/flowsheet/internal/platform/auth"
	"github.com/ehr/flowsheet/pkg/pagination"
)

// FormResolver turns the ?form= query value into a form.
type FormResolver interface {
	ResolveForm(ctx context.Context, token string) (*form.Form, error)
}

// Chronology reports the configured encounter ordering.
type Chronology interface {
	Ascending() bool
}

type Handler struct {
	svc        *Service
	forms      FormResolver
	chronology Chronology
}

func NewHandler(svc *Service, forms FormResolver, chronology Chronology) *Handler {
	return &Handler{svc: svc, forms: forms, chronology: chronology}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "physician", "nurse"))
	g.GET("/patients/:patient_id/encounters", h.ListPatientEncounters)
	g.GET("/encounters/:id", h.GetEncounter)
	g.POST("/patients/:patient_id/encounters", h.CreateEncounter)
}

func (h *Handler) CreateEncounter(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patient_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
	}
	var enc Encounter
	if err := c.Bind(&enc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	enc.PatientID = patientID
	if err := h.svc.CreateEncounter(c.Request().Context(), &enc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, enc)
}

func (h *Handler) GetEncounter(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	enc, err := h.svc.GetEncounter(c.Request().Context(), id)
	if errors.Is(err, ErrEncounterNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "encounter not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, enc)
}

func (h *Handler) ListPatientEncounters(c echo.Context) error {
	ctx := c.Request().Context()
	patientID, err := uuid.Parse(c.Param("patient_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
	}

	var f Filter
	if ref := c.QueryParam("form"); ref != "" {
		frm, err := h.forms.ResolveForm(ctx, ref)
		if errors.Is(err, form.ErrInvalidFormReference) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		f.FormID = &frm.ID
	}

	encs, err := h.svc.ListForFlowsheet(ctx, patientID, f, h.chronology.Ascending())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	pg := pagination.FromContext(c)
	total := len(encs)
	return c.JSON(http.StatusOK, pagination.NewResponse(pagination.Slice(encs, pg), total, pg.Limit, pg.Offset))
}
