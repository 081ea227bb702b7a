package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/audit"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/config"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/handlers"
	infraRepo "github.com/SmartCafeteriaHQ/cafeteria-api/internal/infra/repository"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/mailer"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/middleware"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/otp"
	"github.com/SmartCafeteriaHQ/cafeteria-api/internal/storage"
	ucOrder "github.com/SmartCafeteriaHQ/cafeteria-api/internal/usecase/order"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	mail mailer.Mailer,
	otpStore otp.Store,
	disk storage.Disk,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	orderRepo := infraRepo.NewOrderGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	otpIssuer := otp.NewIssuer(otpStore, mail, cfg.OTPTTL)

	// ======================================================
	// USE CASES — ORDERS
	// ======================================================
	placeOrderUC := ucOrder.NewPlaceOrder(orderRepo, auditDispatcher)
	setStatusUC := ucOrder.NewSetStatus(orderRepo, mail, auditDispatcher)
	deleteOrderUC := ucOrder.NewDeleteOrder(orderRepo, auditDispatcher)
	rateItemUC := ucOrder.NewRateItem(orderRepo)
	feedbackUC := ucOrder.NewSubmitFeedback(orderRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	otpHandler := handlers.NewOTPHandler(otpIssuer)
	meHandler := handlers.NewMeHandler(db)
	profileHandler := handlers.NewProfileHandler(db, disk)

	cafeteriaHandler := handlers.NewCafeteriaHandler(db)
	menuHandler := handlers.NewMenuHandler(db, disk)
	browseHandler := handlers.NewBrowseHandler(db)

	orderAdminHandler := handlers.NewOrderAdminHandler(orderRepo, setStatusUC, deleteOrderUC)
	orderUserHandler := handlers.NewOrderUserHandler(
		orderRepo,
		placeOrderUC,
		deleteOrderUC,
		rateItemUC,
		feedbackUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// OTP
		// ------------------------------
		api.POST("/otp/send-otp", otpHandler.Send)
		api.POST("/otp/verify-otp", otpHandler.Verify)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me", meHandler.GetMe)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/cafeteria", cafeteriaHandler.Create)
				admin.PUT("/cafeteria/:id", cafeteriaHandler.Update)
				admin.DELETE("/cafeteria/:id", cafeteriaHandler.Delete)
				admin.GET("/my-cafeteria", cafeteriaHandler.MyCafeteria)

				admin.POST("/menu", menuHandler.Create)
				admin.GET("/menu/:cafeteriaId", menuHandler.List)
				admin.PUT("/menu/:id", menuHandler.Update)
				admin.DELETE("/menu/:id", menuHandler.Delete)
				admin.POST("/menu/:id/image", menuHandler.UploadImage)

				admin.GET("/orders", orderAdminHandler.List)
				admin.PUT("/order-status/:id", orderAdminHandler.SetStatus)
				admin.DELETE("/order/:id", orderAdminHandler.Delete)

				admin.PUT("/profile", profileHandler.Update)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// USER
			// ------------------------------
			user := secured.Group("/user")
			{
				user.GET("/cafeterias", browseHandler.Cafeterias)
				user.GET("/menu/:cafeteriaId", browseHandler.Menu)

				user.POST("/order", orderUserHandler.Place)
				user.GET("/my-orders", orderUserHandler.MyOrders)
				user.GET("/order/:id", orderUserHandler.Get)
				user.DELETE("/order/:id", orderUserHandler.Delete)
				user.PUT("/order/:id/feedback", orderUserHandler.Feedback)

				user.POST("/rate/:itemId", orderUserHandler.Rate)
			}
		}
	}
}
