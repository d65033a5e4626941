package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Anamitraroy22/school-management/handlers"
	"github.com/Anamitraroy22/school-management/store"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, s store.SchoolStore) {
	school := handlers.NewSchoolHandler(s)
	health := handlers.NewHealthHandler(s)

	e.GET("/health", health.Live)
	e.GET("/health/db", health.DB)

	e.GET("/schools", school.List)
	e.POST("/schools", school.Create)
	e.GET("/schools/:id", school.Get)
	e.PUT("/schools/:id", school.Update)
	e.DELETE("/schools/:id", school.Delete)
}
