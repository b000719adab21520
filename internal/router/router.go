package router

import (
	"github.com/parcel-next/internal/cache"
	"github.com/parcel-next/internal/config"
	"github.com/parcel-next/internal/http/handlers"
	"github.com/parcel-next/internal/logger"
	"github.com/parcel-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := handlers.New(c)

	trackRule := RateLimitRule{
		Prefix:        cache.BuildKey("rate:track"),
		WindowSeconds: cfg.Security.TrackRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.TrackRateLimit.MaxRequests,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/", handler.Hello)
	r.GET("/health", handler.Health)

	apiV1 := r.Group("/api/v1")
	{
		customers := apiV1.Group("/customers")
		{
			customers.GET("", handler.GetCustomers)
			customers.GET("/:id", handler.GetCustomer)
			customers.GET("/email/:email", handler.GetCustomerByEmail)
			customers.POST("", handler.CreateCustomer)
			customers.PUT("/:id", handler.UpdateCustomer)
			customers.PATCH("/:id/activate", handler.ActivateCustomer)
			customers.PATCH("/:id/deactivate", handler.DeactivateCustomer)
			customers.DELETE("/:id", handler.DeleteCustomer)
		}

		senders := apiV1.Group("/senders")
		{
			senders.GET("", handler.GetSenders)
			senders.GET("/:id", handler.GetSender)
			senders.POST("", handler.CreateSender)
			senders.PUT("/:id", handler.UpdateSender)
			senders.DELETE("/:id", handler.DeleteSender)
		}

		receivers := apiV1.Group("/receivers")
		{
			receivers.GET("", handler.GetReceivers)
			receivers.GET("/:id", handler.GetReceiver)
			receivers.POST("", handler.CreateReceiver)
			receivers.PUT("/:id", handler.UpdateReceiver)
			receivers.PATCH("/:id/activate", handler.ActivateReceiver)
			receivers.PATCH("/:id/deactivate", handler.DeactivateReceiver)
			receivers.DELETE("/:id", handler.DeleteReceiver)
		}

		stations := apiV1.Group("/stations")
		{
			stations.GET("", handler.GetStations)
			stations.GET("/:id", handler.GetStation)
			stations.GET("/code/:code", handler.GetStationByCode)
			stations.POST("", handler.CreateStation)
			stations.PUT("/:id", handler.UpdateStation)
			stations.DELETE("/:id", handler.DeleteStation)
		}

		vehicles := apiV1.Group("/vehicles")
		{
			vehicles.GET("", handler.GetVehicles)
			vehicles.GET("/:id", handler.GetVehicle)
			vehicles.GET("/license/:license_plate", handler.GetVehicleByLicensePlate)
			vehicles.POST("", handler.CreateVehicle)
			vehicles.PUT("/:id", handler.UpdateVehicle)
			vehicles.DELETE("/:id", handler.DeleteVehicle)
		}

		staff := apiV1.Group("/delivery-staff")
		{
			staff.GET("", handler.GetDeliveryStaffList)
			staff.GET("/:id", handler.GetDeliveryStaff)
			staff.GET("/employee/:employee_id", handler.GetDeliveryStaffByEmployeeID)
			staff.POST("", handler.CreateDeliveryStaff)
			staff.PUT("/:id", handler.UpdateDeliveryStaff)
			staff.DELETE("/:id", handler.DeleteDeliveryStaff)
		}

		parcels := apiV1.Group("/parcels")
		{
			parcels.GET("", handler.GetParcels)
			parcels.GET("/:id", handler.GetParcel)
			parcels.GET("/track/:tracking_number",
				RateLimitMiddleware(cache.Client(), trackRule, KeyByIP),
				handler.TrackParcel,
			)
			parcels.POST("", handler.CreateParcel)
			parcels.PUT("/:id", handler.UpdateParcel)
			parcels.PATCH("/:id/status", handler.UpdateParcelStatus)
			parcels.PATCH("/:id/assign-vehicle", handler.AssignVehicle)
			parcels.PATCH("/:id/assign-delivery-staff", handler.AssignDeliveryStaff)
			parcels.DELETE("/:id", handler.DeleteParcel)
		}

		items := apiV1.Group("/items")
		{
			items.GET("", handler.GetItems)
			items.GET("/:id", handler.GetItem)
			items.POST("", handler.CreateItem)
			items.PUT("/:id", handler.UpdateItem)
			items.DELETE("/:id", handler.DeleteItem)
		}
	}

	return r
}
