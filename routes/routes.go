package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jaythan-dev/projeto-concessionaria/handlers"
	"github.com/jaythan-dev/projeto-concessionaria/middleware"
	"github.com/jaythan-dev/projeto-concessionaria/services"
	"github.com/jaythan-dev/projeto-concessionaria/utils"
)

// Dependencies 路由所需的依赖
type Dependencies struct {
	Brands *services.BrandService
	Owners *services.OwnerService
	Cars   *services.CarService

	// Store 为 nil 时健康检查始终返回 ok
	Store handlers.Pinger
	// WSManager 为 nil 时不注册 /ws
	WSManager *utils.WebSocketManager

	CORSOrigins []string
	Logger      *zap.Logger
}

// SetupRoutes 设置路由
func SetupRoutes(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(deps.CORSOrigins))
	r.Use(middleware.ErrorHandler(logger))

	brandHandler := handlers.NewBrandHandler(deps.Brands)
	ownerHandler := handlers.NewOwnerHandler(deps.Owners)
	carHandler := handlers.NewCarHandler(deps.Cars)
	healthHandler := handlers.NewHealthHandler(deps.Store, logger)

	r.GET("/health", healthHandler.Health)

	// WebSocket路由
	if deps.WSManager != nil {
		websocketHandler := handlers.NewWebSocketHandler(deps.WSManager, deps.CORSOrigins, logger)
		r.GET("/ws", websocketHandler.HandleWebSocket)
	}

	// 品牌相关路由
	brands := r.Group("/brands")
	{
		brands.GET("", brandHandler.GetBrands)
		brands.GET("/:id", brandHandler.GetBrand)
		brands.POST("", brandHandler.CreateBrand)
		brands.PUT("/:id", brandHandler.UpdateBrand)
		brands.DELETE("/:id", brandHandler.DeleteBrand)
	}

	// 车主相关路由
	owners := r.Group("/owners")
	{
		owners.GET("", ownerHandler.GetOwners)
		owners.GET("/:id", ownerHandler.GetOwner)
		owners.POST("", ownerHandler.CreateOwner)
		owners.PUT("/:id", ownerHandler.UpdateOwner)
		owners.DELETE("/:id", ownerHandler.DeleteOwner)
	}

	// 汽车相关路由
	cars := r.Group("/cars")
	{
		cars.GET("", carHandler.GetCars)
		cars.GET("/:id", carHandler.GetCar)
		cars.POST("", carHandler.CreateCar)
		cars.PUT("/:id", carHandler.UpdateCar)
		cars.DELETE("/:id", carHandler.DeleteCar)
	}

	return r
}
