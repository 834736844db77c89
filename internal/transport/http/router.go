package httptransport

import (
	"log/slog"

	"github.com/danabekov/course-catalog/internal/transport/http/handler"
	"github.com/danabekov/course-catalog/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, userHandler *handler.UserHandler, courseHandler *handler.CourseHandler, users middleware.Authenticator) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(users, logger)

	// Users: registration is open, everything else re-authenticates.
	r.POST("/users", userHandler.Register)
	r.GET("/users", authMW, userHandler.GetCurrent)
	r.DELETE("/users/:id", authMW, userHandler.Delete)

	// Courses: reads are public, mutations go through auth and the
	// ownership guard inside the usecase.
	r.GET("/courses", courseHandler.List)
	r.GET("/courses/:id", courseHandler.GetByID)
	r.POST("/courses", authMW, courseHandler.Create)
	r.PUT("/courses/:id", authMW, courseHandler.Update)
	r.DELETE("/courses/:id", authMW, courseHandler.Delete)

	return r
}
