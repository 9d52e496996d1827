package router

import (
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pathlight/corpsite-backend/internal/config"
	"github.com/pathlight/corpsite-backend/internal/handler"
	"github.com/pathlight/corpsite-backend/internal/metrics"
	"github.com/pathlight/corpsite-backend/internal/middleware"
	"github.com/pathlight/corpsite-backend/internal/model"
	"github.com/pathlight/corpsite-backend/internal/response"
	"github.com/pathlight/corpsite-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth        *handler.AuthHandler
	Banner      *handler.BannerHandler
	PageConfig  *handler.PageConfigHandler
	CaseStudy   *handler.CaseStudyHandler
	News        *handler.NewsHandler
	Hashtag     *handler.HashtagHandler
	Job         *handler.JobHandler
	Application *handler.ApplicationHandler
	Inquiry     *handler.InquiryHandler
	Captcha     *handler.CaptchaHandler
	OpLog       *handler.OperationLogHandler
	AdminUser   *handler.AdminUserHandler
	AdminRole   *handler.AdminRoleHandler
	Setting     *handler.SettingHandler
	Dashboard   *handler.DashboardHandler
	Media       *handler.MediaHandler
	System      *handler.SystemHandler
	WS          *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Per-route HTTP metrics.
	router.Use(metrics.Instrument())

	// Serve uploaded images statically with aggressive caching (1 year).
	// Only the images subtree is exposed; resumes live in cfg.ResumeDir
	// and are never served here.
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/images", filepath.Join(cfg.UploadDir, "images"))
	}

	router.GET("/health", handlers.System.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Rate limiter for unauthenticated form submissions, per client IP.
	publicLimiter := middleware.NewRateLimiter(cfg.PublicRateLimit, cfg.PublicRateInterval)

	// ─── 1. Public Group (No Auth) ─────────────────────────────────────
	publicAPI := router.Group("/api/v1")
	{
		// Read-only marketing site endpoints, cacheable for one minute.
		cached := publicAPI.Group("")
		cached.Use(middleware.CacheControl(60))
		{
			cached.GET("/banners", handlers.Banner.ListPublicBanners)
			cached.GET("/pages/:area", handlers.PageConfig.ListPublicPages)
			cached.GET("/case-studies", handlers.CaseStudy.ListPublicCaseStudies)
			cached.GET("/case-studies/:slug", handlers.CaseStudy.GetPublicCaseStudy)
			cached.GET("/news", handlers.News.ListPublicNews)
			cached.GET("/news/:slug", handlers.News.GetPublicNews)
			cached.GET("/jobs", handlers.Job.ListPublicJobs)
			cached.GET("/jobs/:id", handlers.Job.GetPublicJob)
			cached.GET("/settings", handlers.Setting.GetPublicSettings)
		}

		// Form submissions, rate limited.
		forms := publicAPI.Group("")
		forms.Use(publicLimiter.Middleware())
		{
			forms.POST("/inquiries", handlers.Inquiry.SubmitInquiry)
			forms.POST("/jobs/:id/apply", handlers.Application.SubmitApplication)
			forms.GET("/captcha/challenge", handlers.Captcha.GetChallenge)
		}
	}

	// ─── 2. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(publicLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)
	}

	// ─── 3. WebSocket Group (Admin WS Auth) ────────────────────────────
	wsGroup := router.Group("/ws/v1")
	wsGroup.Use(middleware.RequireAdminWSAuth(authService))
	{
		wsGroup.GET("/admin/activity", handlers.WS.ActivityStream)
	}

	// ─── 4. Admin Group (JWT + RBAC) ───────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		adminAPI.POST("/auth/logout", handlers.Auth.Logout)
		adminAPI.GET("/auth/me", handlers.Auth.Me)

		adminAPI.GET("/dashboard", handlers.Dashboard.GetDashboard)

		// Media upload
		adminAPI.POST("/media/upload",
			middleware.RequirePermission(string(model.PermissionMediaUpload)),
			handlers.Media.UploadImage,
		)

		// Banners
		adminAPI.GET("/banners",
			middleware.RequirePermission(string(model.PermissionBannersRead)),
			handlers.Banner.ListBanners,
		)
		adminAPI.POST("/banners",
			middleware.RequirePermission(string(model.PermissionBannersWrite)),
			handlers.Banner.CreateBanner,
		)
		adminAPI.PUT("/banners/reorder",
			middleware.RequirePermission(string(model.PermissionBannersWrite)),
			handlers.Banner.ReorderBanners,
		)
		adminAPI.PUT("/banners/:id",
			middleware.RequirePermission(string(model.PermissionBannersWrite)),
			handlers.Banner.UpdateBanner,
		)
		adminAPI.DELETE("/banners/:id",
			middleware.RequirePermission(string(model.PermissionBannersWrite)),
			handlers.Banner.DeleteBanner,
		)

		// Page configuration
		adminAPI.GET("/pages/:area",
			middleware.RequirePermission(string(model.PermissionPagesRead)),
			handlers.PageConfig.ListPages,
		)
		adminAPI.PUT("/pages/:area",
			middleware.RequirePermission(string(model.PermissionPagesWrite)),
			handlers.PageConfig.ReplacePages,
		)

		// Case studies
		adminAPI.GET("/case-studies",
			middleware.RequirePermission(string(model.PermissionCaseStudiesRead)),
			handlers.CaseStudy.ListCaseStudies,
		)
		adminAPI.GET("/case-studies/:id",
			middleware.RequirePermission(string(model.PermissionCaseStudiesRead)),
			handlers.CaseStudy.GetCaseStudy,
		)
		adminAPI.POST("/case-studies",
			middleware.RequirePermission(string(model.PermissionCaseStudiesWrite)),
			handlers.CaseStudy.CreateCaseStudy,
		)
		adminAPI.PUT("/case-studies/:id",
			middleware.RequirePermission(string(model.PermissionCaseStudiesWrite)),
			handlers.CaseStudy.UpdateCaseStudy,
		)
		adminAPI.POST("/case-studies/:id/publish",
			middleware.RequirePermission(string(model.PermissionCaseStudiesPublish)),
			handlers.CaseStudy.PublishCaseStudy,
		)
		adminAPI.POST("/case-studies/:id/unpublish",
			middleware.RequirePermission(string(model.PermissionCaseStudiesPublish)),
			handlers.CaseStudy.UnpublishCaseStudy,
		)
		adminAPI.DELETE("/case-studies/:id",
			middleware.RequirePermission(string(model.PermissionCaseStudiesWrite)),
			handlers.CaseStudy.DeleteCaseStudy,
		)

		// News
		adminAPI.GET("/news",
			middleware.RequirePermission(string(model.PermissionNewsRead)),
			handlers.News.ListNews,
		)
		adminAPI.GET("/news/:id",
			middleware.RequirePermission(string(model.PermissionNewsRead)),
			handlers.News.GetNews,
		)
		adminAPI.POST("/news",
			middleware.RequirePermission(string(model.PermissionNewsWrite)),
			handlers.News.CreateNews,
		)
		adminAPI.PUT("/news/:id",
			middleware.RequirePermission(string(model.PermissionNewsWrite)),
			handlers.News.UpdateNews,
		)
		adminAPI.POST("/news/:id/publish",
			middleware.RequirePermission(string(model.PermissionNewsPublish)),
			handlers.News.PublishNews,
		)
		adminAPI.POST("/news/:id/unpublish",
			middleware.RequirePermission(string(model.PermissionNewsPublish)),
			handlers.News.UnpublishNews,
		)
		adminAPI.DELETE("/news/:id",
			middleware.RequirePermission(string(model.PermissionNewsWrite)),
			handlers.News.DeleteNews,
		)

		// Hashtags
		adminAPI.GET("/hashtags",
			middleware.RequireAnyPermission(
				string(model.PermissionHashtagsRead),
				string(model.PermissionCaseStudiesWrite),
				string(model.PermissionNewsWrite),
			),
			handlers.Hashtag.ListHashtags,
		)
		adminAPI.POST("/hashtags",
			middleware.RequirePermission(string(model.PermissionHashtagsWrite)),
			handlers.Hashtag.CreateHashtag,
		)
		adminAPI.PUT("/hashtags/:id",
			middleware.RequirePermission(string(model.PermissionHashtagsWrite)),
			handlers.Hashtag.UpdateHashtag,
		)
		adminAPI.DELETE("/hashtags/:id",
			middleware.RequirePermission(string(model.PermissionHashtagsWrite)),
			handlers.Hashtag.DeleteHashtag,
		)

		// Jobs
		adminAPI.GET("/jobs",
			middleware.RequirePermission(string(model.PermissionJobsRead)),
			handlers.Job.ListJobs,
		)
		adminAPI.GET("/jobs/:id",
			middleware.RequirePermission(string(model.PermissionJobsRead)),
			handlers.Job.GetJob,
		)
		adminAPI.POST("/jobs",
			middleware.RequirePermission(string(model.PermissionJobsWrite)),
			handlers.Job.CreateJob,
		)
		adminAPI.PUT("/jobs/reorder",
			middleware.RequirePermission(string(model.PermissionJobsWrite)),
			handlers.Job.ReorderJobs,
		)
		adminAPI.PUT("/jobs/:id",
			middleware.RequirePermission(string(model.PermissionJobsWrite)),
			handlers.Job.UpdateJob,
		)
		adminAPI.DELETE("/jobs/:id",
			middleware.RequirePermission(string(model.PermissionJobsWrite)),
			handlers.Job.DeleteJob,
		)

		// Applications
		adminAPI.GET("/applications",
			middleware.RequirePermission(string(model.PermissionApplicationsRead)),
			handlers.Application.ListApplications,
		)
		adminAPI.GET("/applications/export",
			middleware.RequireAllPermissions(
				string(model.PermissionApplicationsRead),
				string(model.PermissionApplicationsExport),
			),
			handlers.Application.ExportApplications,
		)
		adminAPI.GET("/applications/:id",
			middleware.RequirePermission(string(model.PermissionApplicationsRead)),
			handlers.Application.GetApplication,
		)
		adminAPI.GET("/applications/:id/resume",
			middleware.RequirePermission(string(model.PermissionApplicationsRead)),
			handlers.Application.DownloadResume,
		)

		// Inquiries
		adminAPI.GET("/inquiries",
			middleware.RequirePermission(string(model.PermissionInquiriesRead)),
			handlers.Inquiry.ListInquiries,
		)
		adminAPI.GET("/inquiries/:id",
			middleware.RequirePermission(string(model.PermissionInquiriesRead)),
			handlers.Inquiry.GetInquiry,
		)
		adminAPI.POST("/inquiries/:id/handle",
			middleware.RequirePermission(string(model.PermissionInquiriesWrite)),
			handlers.Inquiry.HandleInquiry,
		)

		// Captcha diagnostics
		adminAPI.POST("/captcha/verify",
			middleware.RequirePermission(string(model.PermissionCaptchaVerify)),
			handlers.Captcha.VerifyCaptcha,
		)

		// Audit trail
		adminAPI.GET("/logs",
			middleware.RequirePermission(string(model.PermissionLogsRead)),
			handlers.OpLog.ListOperationLogs,
		)

		// Admin accounts
		adminAPI.GET("/users",
			middleware.RequirePermission(string(model.PermissionAdminsRead)),
			handlers.AdminUser.ListAdmins,
		)
		adminAPI.GET("/users/:id",
			middleware.RequirePermission(string(model.PermissionAdminsRead)),
			handlers.AdminUser.GetAdmin,
		)
		adminAPI.POST("/users",
			middleware.RequirePermission(string(model.PermissionAdminsWrite)),
			handlers.AdminUser.CreateAdmin,
		)
		adminAPI.PUT("/users/:id",
			middleware.RequirePermission(string(model.PermissionAdminsWrite)),
			handlers.AdminUser.UpdateAdmin,
		)
		adminAPI.DELETE("/users/:id",
			middleware.RequirePermission(string(model.PermissionAdminsWrite)),
			handlers.AdminUser.DeleteAdmin,
		)

		// Roles
		adminAPI.GET("/roles",
			middleware.RequirePermission(string(model.PermissionRolesRead)),
			handlers.AdminRole.ListRoles,
		)
		adminAPI.GET("/roles/permissions",
			middleware.RequirePermission(string(model.PermissionRolesRead)),
			handlers.AdminRole.ListPermissions,
		)
		adminAPI.GET("/roles/:id",
			middleware.RequirePermission(string(model.PermissionRolesRead)),
			handlers.AdminRole.GetRole,
		)
		adminAPI.POST("/roles",
			middleware.RequirePermission(string(model.PermissionRolesWrite)),
			handlers.AdminRole.CreateRole,
		)
		adminAPI.PUT("/roles/:id",
			middleware.RequirePermission(string(model.PermissionRolesWrite)),
			handlers.AdminRole.UpdateRole,
		)
		adminAPI.DELETE("/roles/:id",
			middleware.RequirePermission(string(model.PermissionRolesWrite)),
			handlers.AdminRole.DeleteRole,
		)

		// Settings
		adminAPI.GET("/settings",
			middleware.RequirePermission(string(model.PermissionSettingsRead)),
			handlers.Setting.GetSettings,
		)
		adminAPI.PUT("/settings",
			middleware.RequirePermission(string(model.PermissionSettingsWrite)),
			handlers.Setting.UpdateSettings,
		)
	}

	return router
}
