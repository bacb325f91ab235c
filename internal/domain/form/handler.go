package form

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/flowsheet/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole("admin", "physician", "nurse"))
	read.GET("/forms/:ref", h.GetForm)
	read.GET("/forms/:ref/concepts", h.GetConcepts)
	read.GET("/forms/:ref/drugs", h.GetDrugs)
}

type formResponse struct {
	*Form
	FormID string `json:"form_id_string"`
}

func (h *Handler) resolve(c echo.Context) (*Form, error) {
	f, err := h.svc.GetForm(c.Request().Context(), c.Param("ref"))
	if errors.Is(err, ErrInvalidFormReference) {
		return nil, echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return f, nil
}

func (h *Handler) GetForm(c echo.Context) error {
	f, err := h.resolve(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, formResponse{Form: f, FormID: FormIDString(f)})
}

func (h *Handler) GetConcepts(c echo.Context) error {
	f, err := h.resolve(c)
	if err != nil {
		return err
	}
	concepts, err := h.svc.ConceptsUsed(c.Request().Context(), f)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"form_id":  f.ID,
		"total":    len(concepts),
		"concepts": concepts,
	})
}

func (h *Handler) GetDrugs(c echo.Context) error {
	f, err := h.resolve(c)
	if err != nil {
		return err
	}
	drugs, err := h.svc.DrugsUsed(c.Request().Context(), f)
	if errors.Is(err, ErrMalformedMarkup) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"form_id": f.ID,
		"total":   len(drugs),
		"drugs":   drugs,
	})
}
