package provider

import (
	"github.com/parcel-next/internal/cache"
	"github.com/parcel-next/internal/config"
	"github.com/parcel-next/internal/logger"
	"github.com/parcel-next/internal/models"
	"github.com/parcel-next/internal/repository"
	"github.com/parcel-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	CustomerRepo      repository.CustomerRepository
	SenderRepo        repository.SenderRepository
	ReceiverRepo      repository.ReceiverRepository
	StationRepo       repository.StationRepository
	VehicleRepo       repository.VehicleRepository
	DeliveryStaffRepo repository.DeliveryStaffRepository
	ParcelRepo        repository.ParcelRepository
	ItemRepo          repository.ItemRepository

	// Services
	CustomerService      *service.CustomerService
	SenderService        *service.SenderService
	ReceiverService      *service.ReceiverService
	StationService       *service.StationService
	VehicleService       *service.VehicleService
	DeliveryStaffService *service.DeliveryStaffService
	ParcelService        *service.ParcelService
	ItemService          *service.ItemService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.SenderRepo = repository.NewSenderRepository(db)
	c.ReceiverRepo = repository.NewReceiverRepository(db)
	c.StationRepo = repository.NewStationRepository(db)
	c.VehicleRepo = repository.NewVehicleRepository(db)
	c.DeliveryStaffRepo = repository.NewDeliveryStaffRepository(db)
	c.ParcelRepo = repository.NewParcelRepository(db)
	c.ItemRepo = repository.NewItemRepository(db)
}

func (c *Container) initServices() {
	generator := service.NewTrackingNumberGenerator(
		c.Config.Tracking.Prefix,
		c.Config.Tracking.RandomLen,
		c.Config.Tracking.MaxAttempts,
	)

	c.CustomerService = service.NewCustomerService(c.CustomerRepo)
	c.SenderService = service.NewSenderService(c.SenderRepo)
	c.ReceiverService = service.NewReceiverService(c.ReceiverRepo)
	c.StationService = service.NewStationService(c.StationRepo)
	c.VehicleService = service.NewVehicleService(c.VehicleRepo)
	c.DeliveryStaffService = service.NewDeliveryStaffService(c.DeliveryStaffRepo)
	c.ParcelService = service.NewParcelService(c.ParcelRepo, c.StationRepo, c.VehicleRepo, c.DeliveryStaffRepo, generator)
	c.ItemService = service.NewItemService(c.ItemRepo, c.CustomerRepo)
}
