package router

import (
	"fmt"
	"strings"

	"github.com/aidlink-next/internal/cache"
	"github.com/aidlink-next/internal/config"
	"github.com/aidlink-next/internal/constants"
	adminhandlers "github.com/aidlink-next/internal/http/handlers/admin"
	publichandlers "github.com/aidlink-next/internal/http/handlers/public"
	"github.com/aidlink-next/internal/logger"
	"github.com/aidlink-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "al"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts",
	}
	formRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:public_form", redisPrefix),
		WindowSeconds: cfg.Security.FormRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.FormRateLimit.MaxAttempts,
		Message:       "too many submissions",
	}

	cookieName := cfg.JWT.CookieName
	requireAuth := RequireAuth(c.AuthService, cookieName)
	requireCapability := func(capability string) gin.HandlerFunc {
		return RequireCapability(c.AuthService, cookieName, capability)
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图片）
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetSiteConfig)
			public.GET("/events", publicHandler.GetEvents)
			public.GET("/events/:slug", publicHandler.GetEventBySlug)
			public.GET("/projects", publicHandler.GetProjects)
			public.GET("/projects/:slug", publicHandler.GetProjectBySlug)
			public.GET("/gallery", publicHandler.GetGallery)
			public.GET("/impact-stats", publicHandler.GetImpactStats)
			public.GET("/testimonials", publicHandler.GetTestimonials)
			public.GET("/partners", publicHandler.GetPartners)
			public.GET("/captcha/image", publicHandler.GetImageCaptcha)
			public.POST("/messages", RateLimitMiddleware(redisClient, formRule, KeyByIP), publicHandler.SubmitMessage)
			public.POST("/volunteers", RateLimitMiddleware(redisClient, formRule, KeyByIPAndJSONField("email")), publicHandler.VolunteerSignup)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), adminHandler.AdminLogin)

			// 仅要求登录
			session := admin.Group("")
			session.Use(requireAuth)
			{
				session.POST("/logout", adminHandler.AdminLogout)
				session.GET("/me", adminHandler.AdminMe)
				session.PUT("/password", adminHandler.UpdateAdminPassword)
				session.GET("/dashboard/overview", adminHandler.GetDashboardOverview)
				session.GET("/dashboard/trends", adminHandler.GetDashboardTrends)
				session.POST("/upload", adminHandler.UploadFile)
			}

			// 账号管理（仅超级管理员）
			accounts := admin.Group("")
			accounts.Use(requireAuth, RequireSuperadmin())
			{
				accounts.GET("/accounts", adminHandler.GetAdminAccounts)
				accounts.GET("/accounts/:id", adminHandler.GetAdminAccount)
				accounts.POST("/accounts", adminHandler.CreateAdminAccount)
				accounts.PUT("/accounts/:id", adminHandler.UpdateAdminAccount)
				accounts.PUT("/accounts/:id/password", adminHandler.ResetAdminAccountPassword)
				accounts.DELETE("/accounts/:id", adminHandler.DeleteAdminAccount)
				accounts.GET("/capabilities", adminHandler.GetCapabilities)
				accounts.GET("/settings", adminHandler.GetSiteConfig)
				accounts.PUT("/settings", adminHandler.UpdateSiteConfig)
			}

			// 活动管理
			events := admin.Group("")
			events.Use(requireCapability(constants.CapabilityManageEvents))
			{
				events.GET("/events", adminHandler.GetAdminEvents)
				events.GET("/events/:id", adminHandler.GetAdminEvent)
				events.POST("/events", adminHandler.CreateEvent)
				events.PUT("/events/:id", adminHandler.UpdateEvent)
				events.DELETE("/events/:id", adminHandler.DeleteEvent)
			}

			// 项目管理
			projects := admin.Group("")
			projects.Use(requireCapability(constants.CapabilityManageProjects))
			{
				projects.GET("/projects", adminHandler.GetAdminProjects)
				projects.GET("/projects/:id", adminHandler.GetAdminProject)
				projects.POST("/projects", adminHandler.CreateProject)
				projects.PUT("/projects/:id", adminHandler.UpdateProject)
				projects.DELETE("/projects/:id", adminHandler.DeleteProject)
			}

			// 相册管理
			gallery := admin.Group("")
			gallery.Use(requireCapability(constants.CapabilityManageGallery))
			{
				gallery.GET("/gallery", adminHandler.GetAdminGalleryItems)
				gallery.GET("/gallery/:id", adminHandler.GetAdminGalleryItem)
				gallery.POST("/gallery", adminHandler.CreateGalleryItem)
				gallery.PUT("/gallery/:id", adminHandler.UpdateGalleryItem)
				gallery.DELETE("/gallery/:id", adminHandler.DeleteGalleryItem)
			}

			// 影响力统计管理
			impact := admin.Group("")
			impact.Use(requireCapability(constants.CapabilityManageImpact))
			{
				impact.GET("/impact-stats", adminHandler.GetAdminImpactStats)
				impact.GET("/impact-stats/:id", adminHandler.GetAdminImpactStat)
				impact.POST("/impact-stats", adminHandler.CreateImpactStat)
				impact.PUT("/impact-stats/:id", adminHandler.UpdateImpactStat)
				impact.DELETE("/impact-stats/:id", adminHandler.DeleteImpactStat)
			}

			// 消息管理
			messages := admin.Group("")
			messages.Use(requireCapability(constants.CapabilityManageMessages))
			{
				messages.GET("/messages", adminHandler.GetAdminMessages)
				messages.GET("/messages/unread-count", adminHandler.GetUnreadMessageCount)
				messages.GET("/messages/:id", adminHandler.GetAdminMessage)
				messages.PUT("/messages/:id/read", adminHandler.MarkMessageRead)
				messages.DELETE("/messages/:id", adminHandler.DeleteMessage)
			}

			// 捐赠管理
			donations := admin.Group("")
			donations.Use(requireCapability(constants.CapabilityManageDonations))
			{
				donations.GET("/donations", adminHandler.GetAdminDonations)
				donations.GET("/donations/:id", adminHandler.GetAdminDonation)
				donations.POST("/donations", adminHandler.CreateDonation)
				donations.PUT("/donations/:id", adminHandler.UpdateDonation)
				donations.POST("/donations/:id/receive", adminHandler.MarkDonationReceived)
				donations.DELETE("/donations/:id", adminHandler.DeleteDonation)
			}

			// 志愿者管理
			volunteers := admin.Group("")
			volunteers.Use(requireCapability(constants.CapabilityManageVolunteers))
			{
				volunteers.GET("/volunteers", adminHandler.GetAdminVolunteers)
				volunteers.GET("/volunteers/:id", adminHandler.GetAdminVolunteer)
				volunteers.PUT("/volunteers/:id/status", adminHandler.UpdateVolunteerStatus)
				volunteers.DELETE("/volunteers/:id", adminHandler.DeleteVolunteer)
			}

			// 感言管理
			testimonials := admin.Group("")
			testimonials.Use(requireCapability(constants.CapabilityManageTestimonials))
			{
				testimonials.GET("/testimonials", adminHandler.GetAdminTestimonials)
				testimonials.POST("/testimonials", adminHandler.CreateTestimonial)
				testimonials.PUT("/testimonials/:id", adminHandler.UpdateTestimonial)
				testimonials.DELETE("/testimonials/:id", adminHandler.DeleteTestimonial)
			}

			// 合作伙伴管理
			partners := admin.Group("")
			partners.Use(requireCapability(constants.CapabilityManagePartners))
			{
				partners.GET("/partners", adminHandler.GetAdminPartners)
				partners.POST("/partners", adminHandler.CreatePartner)
				partners.PUT("/partners/:id", adminHandler.UpdatePartner)
				partners.DELETE("/partners/:id", adminHandler.DeletePartner)
			}
		}
	}

	return r
}
