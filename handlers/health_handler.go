package handlers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Anamitraroy22/school-management/store"
)

type HealthHandler struct {
	store store.SchoolStore
}

func NewHealthHandler(s store.SchoolStore) *HealthHandler { return &HealthHandler{store: s} }

// Live is used for /health.
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// DB pings the store and reports the current school count.
func (h *HealthHandler) DB(c echo.Context) error {
	if err := h.store.Ping(); err != nil {
		log.Printf("health db ping: %v", err)
		return fail(c, http.StatusInternalServerError, "Database connection failed")
	}
	count, err := h.store.Count()
	if err != nil {
		log.Printf("health db count: %v", err)
		return fail(c, http.StatusInternalServerError, "Database connection failed")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"message":     "Database connection successful!",
		"schoolCount": count,
	})
}
