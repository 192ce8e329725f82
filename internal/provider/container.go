package provider

import (
	"github.com/aidlink-next/internal/cache"
	"github.com/aidlink-next/internal/config"
	"github.com/aidlink-next/internal/logger"
	"github.com/aidlink-next/internal/models"
	"github.com/aidlink-next/internal/queue"
	"github.com/aidlink-next/internal/repository"
	"github.com/aidlink-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo       repository.AdminRepository
	EventRepo       repository.EventRepository
	ProjectRepo     repository.ProjectRepository
	GalleryRepo     repository.GalleryRepository
	ImpactStatRepo  repository.ImpactStatRepository
	MessageRepo     repository.MessageRepository
	DonationRepo    repository.DonationRepository
	VolunteerRepo   repository.VolunteerRepository
	TestimonialRepo repository.TestimonialRepository
	PartnerRepo     repository.PartnerRepository
	SettingRepo     repository.SettingRepository
	DashboardRepo   repository.DashboardRepository

	// Services
	AuthService         *service.AuthService
	AdminAccountService *service.AdminAccountService
	CaptchaService      *service.CaptchaService
	UploadService       *service.UploadService
	EventService        *service.EventService
	ProjectService      *service.ProjectService
	GalleryService      *service.GalleryService
	ImpactStatService   *service.ImpactStatService
	MessageService      *service.MessageService
	DonationService     *service.DonationService
	VolunteerService    *service.VolunteerService
	TestimonialService  *service.TestimonialService
	PartnerService      *service.PartnerService
	SettingService      *service.SettingService
	DashboardService    *service.DashboardService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.EventRepo = repository.NewEventRepository(db)
	c.ProjectRepo = repository.NewProjectRepository(db)
	c.GalleryRepo = repository.NewGalleryRepository(db)
	c.ImpactStatRepo = repository.NewImpactStatRepository(db)
	c.MessageRepo = repository.NewMessageRepository(db)
	c.DonationRepo = repository.NewDonationRepository(db)
	c.VolunteerRepo = repository.NewVolunteerRepository(db)
	c.TestimonialRepo = repository.NewTestimonialRepository(db)
	c.PartnerRepo = repository.NewPartnerRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.AdminAccountService = service.NewAdminAccountService(c.Config, c.AdminRepo, c.AuthService)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.UploadService = service.NewUploadService(c.Config)
	c.SettingService = service.NewSettingService(c.SettingRepo)
	c.EventService = service.NewEventService(c.EventRepo)
	c.ProjectService = service.NewProjectService(c.ProjectRepo)
	c.GalleryService = service.NewGalleryService(c.GalleryRepo, c.EventRepo)
	c.ImpactStatService = service.NewImpactStatService(c.ImpactStatRepo)
	c.MessageService = service.NewMessageService(c.MessageRepo, c.QueueClient)
	c.DonationService = service.NewDonationService(c.DonationRepo, c.ProjectRepo, c.QueueClient)
	c.VolunteerService = service.NewVolunteerService(c.VolunteerRepo, c.EventRepo)
	c.TestimonialService = service.NewTestimonialService(c.TestimonialRepo)
	c.PartnerService = service.NewPartnerService(c.PartnerRepo)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo)
}
