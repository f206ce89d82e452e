package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nntexpressinc/blackhawks.tms-sub001/configs"
	"github.com/nntexpressinc/blackhawks.tms-sub001/controllers"
	"github.com/nntexpressinc/blackhawks.tms-sub001/middlewares"
	"github.com/nntexpressinc/blackhawks.tms-sub001/repository"
	"github.com/nntexpressinc/blackhawks.tms-sub001/services"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
	"github.com/nntexpressinc/blackhawks.tms-sub001/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	loadRepo := repository.NewLoadRepository(db)
	brokerRepo := repository.NewBrokerRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	chatRepo := repository.NewChatRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	unitSvc := services.NewUnitService(unitRepo)
	loadSvc := services.NewLoadService(db, loadRepo, brokerRepo, unitSvc)
	brokerSvc := services.NewBrokerService(brokerRepo)
	chatSvc := services.NewChatService(chatRepo, loadRepo)
	docSvc := services.NewDocumentService(docRepo, loadRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// WS hub
	hub := ws.NewLoadChannelHub(chatSvc)
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	loadCtrl := controllers.NewLoadController(loadSvc)
	brokerCtrl := controllers.NewBrokerController(brokerSvc)
	unitCtrl := controllers.NewUnitController(unitSvc)
	chatCtrl := controllers.NewChatController(chatSvc, hub)
	docCtrl := controllers.NewDocumentController(docSvc, cfg.UploadDir)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Everything below carries a token; each route is additionally gated by
	// one capability key and the services re-check before acting.
	api := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		loads := api.Group("/loads")
		{
			loads.GET("", middlewares.RequirePermission(utils.PermLoadsView), loadCtrl.List)
			loads.GET("/:id", middlewares.RequirePermission(utils.PermLoadsView), loadCtrl.Detail)
			loads.POST("", middlewares.RequirePermission(utils.PermLoadsCreate), loadCtrl.CreateDraft)
			loads.PATCH("/:id", middlewares.RequirePermission(utils.PermLoadsEdit), loadCtrl.Patch)
			loads.PUT("/:id", middlewares.RequirePermission(utils.PermLoadsEdit), loadCtrl.Save)
			loads.POST("/:id/advance", middlewares.RequirePermission(utils.PermLoadsAdvance), loadCtrl.Advance)
			loads.POST("/:id/unit", middlewares.RequirePermission(utils.PermLoadsEdit), loadCtrl.ApplyUnit)

			loads.GET("/:id/chat", middlewares.RequirePermission(utils.PermChatView), chatCtrl.ListMessages)
			loads.POST("/:id/chat", middlewares.RequirePermission(utils.PermChatPost), chatCtrl.PostMessage)

			loads.GET("/:id/documents", middlewares.RequirePermission(utils.PermDocumentsView), docCtrl.List)
			loads.POST("/:id/documents", middlewares.RequirePermission(utils.PermDocumentsUpload), docCtrl.Upload)
		}

		api.GET("/customer_brokers", middlewares.RequirePermission(utils.PermBrokersView), brokerCtrl.List)
		api.POST("/customer_brokers", middlewares.RequirePermission(utils.PermBrokersCreate), brokerCtrl.Create)

		api.GET("/units", middlewares.RequirePermission(utils.PermUnitsView), unitCtrl.List)
		api.GET("/units/:id", middlewares.RequirePermission(utils.PermUnitsView), unitCtrl.Detail)
		api.GET("/trailers/:id", middlewares.RequirePermission(utils.PermUnitsView), unitCtrl.TrailerDetail)
	}

	// WS: token via query or header
	r.GET("/ws/loads/:id", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
