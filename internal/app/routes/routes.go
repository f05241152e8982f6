package routes

import (
	"context"
	"net/http"

	"github.com/bigbinarytech/institute/internal/app/controllers"
	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Controllers groups every controller the router needs
type Controllers struct {
	Auth           *controllers.AuthController
	Specialization *controllers.SpecializationController
	Course         *controllers.CourseController
	Team           *controllers.TeamController
	FAQ            *controllers.FAQController
	Content        *controllers.ContentController
	Media          *controllers.MediaController
	Profile        *controllers.ProfileController
	Site           *controllers.SiteController
}

// Options configures the non-API routes
type Options struct {
	UploadsDir     string
	UploadsURLPath string
	// HealthCheck reports whether backing services are reachable. Nil means always healthy.
	HealthCheck func(context.Context) error
	// MaxUploadBodyBytes caps the storage-media request body. Zero disables the cap.
	MaxUploadBodyBytes int64
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware, opts Options) {
	router.GET("/health", healthHandler(opts.HealthCheck))

	// Stored media and avatars
	router.Static(opts.UploadsURLPath, opts.UploadsDir)

	v1 := router.Group("/api/v1")

	// --- Public site routes ---
	v1.GET("/site", c.Site.Info)

	specializations := v1.Group("/specializations")
	{
		specializations.GET("", c.Specialization.ListPublic)
		specializations.GET("/:slug", c.Specialization.GetBySlug)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", c.Course.ListPublic)
		courses.GET("/:slug", c.Course.GetBySlug)
	}

	v1.GET("/team", c.Team.ListPublic)
	v1.GET("/faqs", c.FAQ.ListPublic)

	content := v1.Group("/content")
	{
		content.GET("", c.Content.List)
		content.GET("/:section", c.Content.Get)
	}

	media := v1.Group("/media")
	{
		media.GET("", c.Media.ListPublic)
		// keys may contain slashes
		media.GET("/*key", c.Media.Resolve)
	}

	// --- Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
		auth.POST("/refresh", c.Auth.RefreshToken)
		auth.POST("/logout", c.Auth.Logout)

		authenticated := auth.Group("")
		authenticated.Use(authMiddleware.JWTAuth(), authMiddleware.AdminRequired())
		authenticated.GET("/me", c.Auth.Me)
		authenticated.POST("/logout-all", c.Auth.LogoutAll)
	}

	// --- Dashboard routes, admins and editors ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.AdminRequired())
	{
		admin.GET("/dashboard/stats", c.Site.Stats)

		admin.GET("/profile", c.Profile.Get)
		admin.PUT("/profile", c.Profile.Update)

		adminSpecializations := admin.Group("/specializations")
		{
			adminSpecializations.GET("", c.Specialization.ListAll)
			adminSpecializations.POST("", c.Specialization.Create)
			adminSpecializations.PUT("/:id", c.Specialization.Update)
			adminSpecializations.DELETE("/:id", c.Specialization.Delete)
		}

		adminCourses := admin.Group("/courses")
		{
			adminCourses.GET("", c.Course.ListAll)
			adminCourses.GET("/:id", c.Course.GetByID)
			adminCourses.POST("", c.Course.Create)
			adminCourses.PUT("/:id", c.Course.Update)
			adminCourses.DELETE("/:id", c.Course.Delete)
		}

		adminTeam := admin.Group("/team")
		{
			adminTeam.GET("", c.Team.ListAll)
			adminTeam.POST("", c.Team.Create)
			adminTeam.PUT("/:id", c.Team.Update)
			adminTeam.DELETE("/:id", c.Team.Delete)
		}

		adminFAQs := admin.Group("/faqs")
		{
			adminFAQs.GET("", c.FAQ.ListAll)
			adminFAQs.POST("", c.FAQ.Create)
			adminFAQs.PUT("/:id", c.FAQ.Update)
			adminFAQs.DELETE("/:id", c.FAQ.Delete)
		}

		admin.PUT("/content/:section", c.Content.Update)

		admin.GET("/media", c.Media.Search)
		admin.POST("/functions/storage-media", middleware.LimitBody(opts.MaxUploadBodyBytes), c.Media.StorageMedia)

		// Only admins provision accounts
		admin.POST("/users", authMiddleware.AdminRequired(models.RoleAdmin), c.Auth.CreateAdmin)
	}
}

func healthHandler(check func(context.Context) error) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if check != nil {
			if err := check(ctx.Request.Context()); err != nil {
				ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
				return
			}
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
