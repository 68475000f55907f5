package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"procurement-api/internal/controllers"
	"procurement-api/internal/repositories"
	"procurement-api/internal/services"
)

// Services groups everything the HTTP layer calls into.
type Services struct {
	Users     services.UserServiceInterface
	Clients   services.ClientServiceInterface
	Equipment services.EquipmentServiceInterface
	Requests  services.RequestServiceInterface
	Offers    services.OfferServiceInterface
}

// NewServices wires every service to the same unit-of-work manager.
func NewServices(uow repositories.UnitOfWork, logger *zap.Logger) Services {
	return Services{
		Users:     services.NewUserService(uow, logger.Named("users")),
		Clients:   services.NewClientService(uow, logger.Named("clients")),
		Equipment: services.NewEquipmentService(uow, logger.Named("equipment")),
		Requests:  services.NewRequestService(uow, logger.Named("requests")),
		Offers:    services.NewOfferService(uow, logger.Named("offers")),
	}
}

func InitRouter(e *echo.Echo, svc Services, db controllers.Pinger, logger *zap.Logger) {
	logger.Info("InitRouter: registering routes")

	healthCtrl := controllers.NewHealthController(db, logger)
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")

	runUserRouter(api, controllers.NewUserController(svc.Users, logger))
	runClientRouter(api, controllers.NewClientController(svc.Clients, logger))
	runEquipmentRouter(api, controllers.NewEquipmentController(svc.Equipment, logger))
	runRequestRouter(api, controllers.NewRequestController(svc.Requests, logger))
	runOfferRouter(api, controllers.NewOfferController(svc.Offers, logger))

	logger.Info("InitRouter: routes registered")
}
