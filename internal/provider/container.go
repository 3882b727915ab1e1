package provider

import (
	"github.com/shiptrack-api/internal/cache"
	"github.com/shiptrack-api/internal/config"
	"github.com/shiptrack-api/internal/logger"
	"github.com/shiptrack-api/internal/models"
	"github.com/shiptrack-api/internal/queue"
	"github.com/shiptrack-api/internal/repository"
	"github.com/shiptrack-api/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ShipmentRepo repository.ShipmentRepository
	EnquiryRepo  repository.EnquiryRepository
	LoginLogRepo repository.LoginLogRepository

	// Services
	AuthService      *service.AuthService
	ShipmentService  *service.ShipmentService
	EnquiryService   *service.EnquiryService
	DashboardService *service.DashboardService
	CaptchaService   *service.CaptchaService
	EmailService     *service.EmailService
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
	c.ShipmentRepo = repository.NewShipmentRepository(db)
	c.EnquiryRepo = repository.NewEnquiryRepository(db)
	c.LoginLogRepo = repository.NewLoginLogRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.LoginLogRepo)
	c.ShipmentService = service.NewShipmentService(c.Config, c.ShipmentRepo, c.QueueClient)
	c.EnquiryService = service.NewEnquiryService(c.EnquiryRepo, c.QueueClient)
	c.DashboardService = service.NewDashboardService(c.ShipmentRepo, c.EnquiryRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.EmailService = service.NewEmailService(&c.Config.Email)
}
