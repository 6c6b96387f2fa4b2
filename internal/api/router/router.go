package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dioadam27-sketch/SIMPDB/config"
	"github.com/dioadam27-sketch/SIMPDB/internal/api/handler"
	"github.com/dioadam27-sketch/SIMPDB/internal/api/middleware"
	"github.com/dioadam27-sketch/SIMPDB/pkg/jwt"
	"github.com/dioadam27-sketch/SIMPDB/pkg/redis"
)

// maxImportBody caps workbook uploads.
const maxImportBody = 8 << 20

// Setup builds the gin engine with all routes.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── Health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Auth (no token required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Authenticated routes
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			// Master data (admin only)
			courses := authorized.Group("/courses", middleware.RoleAuth("admin"))
			{
				courses.GET("", h.Master.ListCourses)
				courses.POST("", h.Master.CreateCourse)
				courses.DELETE("/:id", h.Master.DeleteCourse)
				courses.POST("/import", h.Master.ImportCourses)
			}

			lecturers := authorized.Group("/lecturers", middleware.RoleAuth("admin"))
			{
				lecturers.GET("", h.Master.ListLecturers)
				lecturers.POST("", h.Master.CreateLecturer)
				lecturers.DELETE("/:id", h.Master.DeleteLecturer)
				lecturers.POST("/import", h.Master.ImportLecturers)
			}

			rooms := authorized.Group("/rooms", middleware.RoleAuth("admin"))
			{
				rooms.GET("", h.Master.ListRooms)
				rooms.POST("", h.Master.CreateRoom)
				rooms.DELETE("/:id", h.Master.DeleteRoom)
				rooms.POST("/import", h.Master.ImportRooms)
			}

			classes := authorized.Group("/classes", middleware.RoleAuth("admin"))
			{
				classes.GET("", h.Master.ListClasses)
				classes.POST("", h.Master.CreateClass)
				classes.DELETE("/:id", h.Master.DeleteClass)
				classes.POST("/import", h.Master.ImportClasses)
			}

			// Timetable: reads for both roles, mutations admin only
			schedule := authorized.Group("/schedule")
			{
				schedule.GET("", h.Schedule.List)
				schedule.POST("", middleware.RoleAuth("admin"), h.Schedule.Create)
				schedule.DELETE("/:id", middleware.RoleAuth("admin"), h.Schedule.Delete)
				schedule.POST("/import", middleware.RoleAuth("admin"), middleware.BodyLimit(maxImportBody), h.Schedule.Import)
			}

			// Lecturer portal (admins may simulate a lecturer)
			portal := authorized.Group("/portal", middleware.RoleAuth("admin", "lecturer"))
			{
				portal.GET("/open-courses", h.Portal.OpenCourses)
				portal.GET("/open-slots", h.Portal.OpenSlots)
				portal.GET("/my", h.Portal.MySchedule)
				portal.POST("/claim", h.Portal.Claim)
				portal.POST("/release", h.Portal.Release)
			}

			// Monitoring (admin only)
			monitoring := authorized.Group("/monitoring", middleware.RoleAuth("admin"))
			{
				monitoring.GET("/dashboard", h.Monitoring.Dashboard)
				monitoring.GET("/occupancy", h.Monitoring.Occupancy)
			}

			// Excel downloads
			export := authorized.Group("/export")
			{
				export.GET("/schedule", h.Export.ExportSchedule)
				export.GET("/occupancy", middleware.RoleAuth("admin"), h.Export.ExportOccupancy)
			}

			// Remote-store sync (admin only)
			sync := authorized.Group("/sync", middleware.RoleAuth("admin"))
			{
				sync.POST("/refresh", h.Sync.Refresh)
				sync.GET("/status", h.Sync.Status)
			}
		}
	}

	return r
}
