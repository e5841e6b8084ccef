package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/empmgmt/employee-backend/internal/config"
	"github.com/empmgmt/employee-backend/internal/handler"
	"github.com/empmgmt/employee-backend/internal/middleware"
	"github.com/empmgmt/employee-backend/internal/response"
	"github.com/empmgmt/employee-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Employee   *handler.EmployeeHandler
	Department *handler.DepartmentHandler
}

// SetupRouter configures the Gin route groups. Every resource route sits
// behind the service-token middleware.
func SetupRouter(tokens *service.TokenService, handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.RequireServiceJWT(tokens)

	employee := router.Group("/employee", auth)
	{
		employee.GET("", handlers.Employee.GetAll)
		employee.GET("/:id", handlers.Employee.GetByID)
		employee.POST("", handlers.Employee.Create)
		employee.PUT("/:id", handlers.Employee.Update)
		employee.DELETE("/:id", handlers.Employee.Delete)
	}

	department := router.Group("/department", auth)
	{
		department.GET("", handlers.Department.GetAll)
		department.GET("/:id", handlers.Department.GetByID)
		department.POST("", handlers.Department.Create)
		department.PUT("/:id", handlers.Department.Update)
		department.DELETE("/:id", handlers.Department.Delete)
	}

	return router
}
