package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"guest_management/internal/api/handlers"
	"guest_management/internal/metrics"
	"guest_management/internal/middleware"
	"guest_management/internal/service"
)

// Options 是建立路由時需要的周邊元件
type Options struct {
	Logger             zerolog.Logger
	Metrics            *metrics.Metrics
	LoginRatePerMinute int
}

// NewRouter 建立掛好中間件與所有路由的 gin engine
func NewRouter(services *service.Services, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(opts.Logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
	}
	r.Use(gin.Recovery())

	SetupRoutes(r, services, opts)
	return r
}

func SetupRoutes(r *gin.Engine, services *service.Services, opts Options) {
	handlers.RegisterValidation()

	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.Auth, opts.Metrics)
	userHandler := handlers.NewUserHandler(services.User)
	guestHandler := handlers.NewGuestHandler(services.Guest)
	staffHandler := handlers.NewStaffHandler(services.Staff)
	committeeHandler := handlers.NewCommitteeHandler(services.Committee)
	eventHandler := handlers.NewEventHandler(services.Event)

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	// 公開路由
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Guest Management System"})
	})
	r.POST("/login", middleware.RateLimit(opts.LoginRatePerMinute), authHandler.Login)

	// 需要驗證的路由
	authorized := r.Group("/")
	authorized.Use(middleware.AuthMiddleware(services.Auth))
	{
		admin := authorized.Group("/admin")
		{
			admin.POST("/", authHandler.CreateAdmin)
			admin.GET("/me", authHandler.Me)
		}

		users := authorized.Group("/users")
		{
			users.GET("/", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
		}

		guests := authorized.Group("/guests")
		{
			guests.POST("/", guestHandler.CreateGuest)
			guests.GET("/", guestHandler.ListGuests)
			guests.GET("/search/", guestHandler.SearchGuests)
			guests.GET("/level/:guest_level", guestHandler.ListGuestsByLevel)
			guests.GET("/:id", guestHandler.GetGuest)
			guests.PUT("/:id", guestHandler.UpdateGuest)
			guests.DELETE("/:id", guestHandler.DeleteGuest)
		}

		staff := authorized.Group("/staff")
		{
			staff.POST("/", staffHandler.CreateStaff)
			staff.GET("/", staffHandler.ListStaff)
			staff.GET("/:id", staffHandler.GetStaff)
			staff.PUT("/:id", staffHandler.UpdateStaff)
			staff.DELETE("/:id", staffHandler.DeleteStaff)
		}

		committee := authorized.Group("/committee")
		{
			committee.POST("/", committeeHandler.CreateMember)
			committee.GET("/", committeeHandler.ListMembers)
			committee.GET("/:id", committeeHandler.GetMember)
			committee.PUT("/:id", committeeHandler.UpdateMember)
			committee.DELETE("/:id", committeeHandler.DeleteMember)
		}

		events := authorized.Group("/events")
		{
			events.POST("/", eventHandler.CreateEvent)
			events.GET("/", eventHandler.ListEvents)
			events.GET("/:id", eventHandler.GetEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)

			// 活動成員
			events.POST("/:id/guests/:guest_id", eventHandler.AddGuest)
			events.DELETE("/:id/guests/:guest_id", eventHandler.RemoveGuest)
			events.POST("/:id/managers/:member_id", eventHandler.AddManager)
			events.DELETE("/:id/managers/:member_id", eventHandler.RemoveManager)
		}
	}
}
