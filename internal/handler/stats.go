package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.statsSvc.GetStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}
