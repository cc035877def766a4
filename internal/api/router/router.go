package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/config"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/api/handler"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/api/middleware"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/model"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/pkg/jwt"
	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/pkg/redis"
)

const maxBodyBytes = 1 << 20 // 1MB

// Setup builds the Gin engine with the full route surface.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth (no token required; login and signup are rate limited)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/signup", middleware.RateLimit(rdb, 5, time.Minute), h.Auth.Signup)
			auth.POST("/refresh", h.Auth.RefreshToken)
			auth.POST("/logout", h.Auth.Logout)
		}

		// public read-only surface
		v1.GET("/events/calendar.ics", h.Calendar.Feed)
		v1.GET("/results", h.Result.AllResults)
		v1.GET("/results/:eventId", h.Result.EventResults)

		// routes requiring authentication
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			// hostels
			hostels := authorized.Group("/hostels")
			{
				hostels.GET("", h.Hostel.List)
				hostels.GET("/:id", h.Hostel.Get)
				hostels.POST("", middleware.RoleAuth(model.ActionHostelManage), h.Hostel.Create)
				hostels.PUT("/:id", middleware.RoleAuth(model.ActionHostelManage), h.Hostel.Update)
				hostels.DELETE("/:id", middleware.RoleAuth(model.ActionHostelManage), h.Hostel.Delete)
			}

			// events and the event approval machine
			events := authorized.Group("/events")
			{
				events.GET("", h.Event.List)
				events.GET("/:id", h.Event.Get)
				events.POST("", middleware.RoleAuth(model.ActionEventCreate), h.Event.Create)
				events.PUT("/:id", middleware.RoleAuth(model.ActionEventUpdate), h.Event.Update)
				events.DELETE("/:id", middleware.RoleAuth(model.ActionEventDelete), h.Event.Delete)
				events.POST("/:id/approve", middleware.RoleAuth(model.ActionEventApprove), h.Event.Approve)
				events.POST("/:id/retract", middleware.RoleAuth(model.ActionEventApprove), h.Event.Retract)
				events.POST("/:id/finalize", middleware.RoleAuth(model.ActionEventFinalize), h.Event.Finalize)
				events.POST("/:id/unfinalize", middleware.RoleAuth(model.ActionEventFinalize), h.Event.Unfinalize)
			}

			// teams
			teams := authorized.Group("/teams")
			{
				teams.GET("", h.Team.List)
				teams.GET("/:id", h.Team.Get)
				teams.POST("", middleware.RoleAuth(model.ActionTeamCreate), h.Team.Create)
				teams.POST("/:id/members", middleware.RoleAuth(model.ActionTeamMemberAdd), h.Team.AddMember)
				teams.DELETE("/:id/members/:studentId", middleware.RoleAuth(model.ActionTeamMemberRemove), h.Team.RemoveMember)
			}

			// participations
			participations := authorized.Group("/participations")
			{
				participations.POST("", middleware.RoleAuth(model.ActionRegister), h.Participation.Register)
				participations.PUT("/:id/result", middleware.RoleAuth(model.ActionResultUpdate), h.Participation.UpdateResult)
				participations.DELETE("/:id", h.Participation.Cancel)
			}

			// hostel score records and their approval machine
			scores := authorized.Group("/scores")
			{
				scores.GET("", h.Score.List)
				scores.GET("/:id", h.Score.Get)
				scores.POST("", middleware.RoleAuth(model.ActionScoreRecord), h.Score.Create)
				scores.PUT("/:id", middleware.RoleAuth(model.ActionScoreRecord), h.Score.Update)
				scores.POST("/:id/approve", middleware.RoleAuth(model.ActionScoreApprove), h.Score.Approve)
				scores.POST("/:id/retract", middleware.RoleAuth(model.ActionScoreApprove), h.Score.Retract)
				scores.POST("/:id/finalize", middleware.RoleAuth(model.ActionScoreFinalize), h.Score.Finalize)
			}

			// export
			export := authorized.Group("/export")
			{
				export.GET("/results/:eventId", middleware.RoleAuth(model.ActionResultsExport), h.Export.ExportResults)
			}
		}
	}

	return r
}
