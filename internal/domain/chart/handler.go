package chart

import (
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
	readGroup := api.Group("", auth.RequireRole("admin", "physician", "nurse"))
	readGroup.GET("/chart", h.GetChart)
	readGroup.GET("/chart/settings", h.GetSettings)

	adminGroup := api.Group("", auth.RequireRole("admin"))
	adminGroup.PUT("/chart/settings", h.UpdateSettings)
	adminGroup.POST("/chart/reload", h.Reload)
}

func (h *Handler) GetChart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Current())
}

func (h *Handler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Settings())
}

func (h *Handler) UpdateSettings(c echo.Context) error {
	var s Settings
	if err := c.Bind(&s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Update(c.Request().Context(), s); err != nil {
		if IsConfigError(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, h.svc.Current())
}

func (h *Handler) Reload(c echo.Context) error {
	if err := h.svc.Reload(c.Request().Context()); err != nil {
		if IsConfigError(err) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, h.svc.Current())
}
