package server

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/handler"
	custommw "github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/middleware"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/service"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/token"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	echo *echo.Echo

	tokens  *token.Manager
	limiter *custommw.RateLimiter

	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	likeHandler    *handler.LikeHandler
	adminHandler   *handler.AdminHandler
	supportHandler *handler.SupportHandler
}

type Services struct {
	Auth     service.AuthService
	Profile  service.ProfileService
	Catalog  service.CatalogService
	Cart     service.CartService
	Order    service.OrderService
	Like     service.LikeService
	Feedback service.FeedbackService
	Admin    service.AdminService
}

func NewServer(svcs Services, tokens *token.Manager, limiter *custommw.RateLimiter) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.HTTPErrorHandler = errorHandler

	s := &Server{
		echo:           e,
		tokens:         tokens,
		limiter:        limiter,
		authHandler:    handler.NewAuthHandler(svcs.Auth),
		profileHandler: handler.NewProfileHandler(svcs.Profile),
		catalogHandler: handler.NewCatalogHandler(svcs.Catalog, svcs.Like),
		cartHandler:    handler.NewCartHandler(svcs.Cart),
		orderHandler:   handler.NewOrderHandler(svcs.Order, svcs.Feedback),
		likeHandler:    handler.NewLikeHandler(svcs.Like),
		adminHandler:   handler.NewAdminHandler(svcs.Admin, svcs.Order, svcs.Feedback),
		supportHandler: handler.NewSupportHandler(svcs.Admin),
	}

	s.setupRoutes()
	return s
}

// errorHandler shapes every failure into the error envelope. Unknown errors
// are logged and collapsed to a 500 so internals never leak to clients.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := dto.ErrorBody{
		Code:    string(apperr.CodeInternal),
		Message: "Something went wrong",
	}

	var appErr *apperr.Error
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status
		body.Code = string(appErr.Code)
		body.Message = appErr.Message
		body.Field = appErr.Field
	case errors.As(err, &httpErr):
		status = httpErr.Code
		body.Code = string(apperr.CodeBadRequest)
		if status == http.StatusNotFound {
			body.Code = string(apperr.CodeResourceNotFound)
		}
		if msg, isStr := httpErr.Message.(string); isStr {
			body.Message = msg
		} else {
			body.Message = http.StatusText(status)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
		body.Code = string(apperr.CodeResourceNotFound)
		body.Message = "Resource not found"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		status = http.StatusConflict
		body.Code = string(apperr.CodeResourceAlreadyExists)
		body.Message = "Resource already exists"
	default:
		log.Println("unhandled error:", err)
	}

	if err := c.JSON(status, dto.ErrorEnvelope{Success: false, Error: body}); err != nil {
		log.Println("failed to write error response:", err)
	}
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api/v1")
	api.Use(s.limiter.Limit("api", 100, time.Minute))

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- auth --------
	auth := api.Group("/auth")
	authLimit := s.limiter.Limit("auth", 5, 15*time.Minute)
	auth.POST("/register", s.authHandler.Register, authLimit)
	auth.POST("/login", s.authHandler.Login, authLimit)
	auth.POST("/refresh", s.authHandler.Refresh)
	auth.POST("/logout", s.authHandler.Logout, custommw.Authenticate(s.tokens))
	auth.GET("/me", s.authHandler.Me, custommw.Authenticate(s.tokens))
	auth.PUT("/fcm-token", s.authHandler.UpdateFcmToken, custommw.Authenticate(s.tokens))

	// -------- catalog (public reads, admin writes) --------
	categories := api.Group("/categories")
	categories.GET("", s.catalogHandler.ListCategories)
	categories.GET("/tree", s.catalogHandler.CategoryTree)
	categories.GET("/:id", s.catalogHandler.GetCategory)
	categories.POST("", s.catalogHandler.CreateCategory, custommw.Authenticate(s.tokens), custommw.RequireAdmin())
	categories.PUT("/:id", s.catalogHandler.UpdateCategory, custommw.Authenticate(s.tokens), custommw.RequireAdmin())
	categories.DELETE("/:id", s.catalogHandler.DeleteCategory, custommw.Authenticate(s.tokens), custommw.RequireAdmin())

	subjects := api.Group("/subjects")
	subjects.GET("", s.catalogHandler.ListSubjects)
	subjects.GET("/tree", s.catalogHandler.SubjectTree)
	subjects.GET("/:id", s.catalogHandler.GetSubject)
	subjects.POST("", s.catalogHandler.CreateSubject, custommw.Authenticate(s.tokens), custommw.RequireAdmin())
	subjects.PUT("/:id", s.catalogHandler.UpdateSubject, custommw.Authenticate(s.tokens), custommw.RequireAdmin())
	subjects.DELETE("/:id", s.catalogHandler.DeleteSubject, custommw.Authenticate(s.tokens), custommw.RequireAdmin())

	products := api.Group("/products")
	products.GET("", s.catalogHandler.ListProducts, custommw.OptionalAuth(s.tokens))
	products.GET("/:id", s.catalogHandler.GetProduct, custommw.OptionalAuth(s.tokens))
	products.GET("/:id/variants", s.catalogHandler.ListVariants)
	products.POST("", s.catalogHandler.CreateProduct, custommw.Authenticate(s.tokens), custommw.RequireAdmin())
	products.PUT("/:id", s.catalogHandler.UpdateProduct, custommw.Authenticate(s.tokens), custommw.RequireAdmin())
	products.DELETE("/:id", s.catalogHandler.DeleteProduct, custommw.Authenticate(s.tokens), custommw.RequireAdmin())
	products.POST("/:id/variants", s.catalogHandler.CreateVariant, custommw.Authenticate(s.tokens), custommw.RequireAdmin())
	products.PUT("/:id/variants/:variantId", s.catalogHandler.UpdateVariant, custommw.Authenticate(s.tokens), custommw.RequireAdmin())
	products.POST("/:id/like", s.likeHandler.Toggle, custommw.Authenticate(s.tokens))

	// -------- cart --------
	cart := api.Group("/cart", custommw.Authenticate(s.tokens))
	cart.GET("", s.cartHandler.GetCart)
	cart.POST("", s.cartHandler.AddItem)
	cart.PUT("/:itemId", s.cartHandler.UpdateItem)
	cart.DELETE("/clear", s.cartHandler.Clear)
	cart.DELETE("/:itemId", s.cartHandler.RemoveItem)

	// -------- orders --------
	orders := api.Group("/orders", custommw.Authenticate(s.tokens))
	orders.POST("", s.orderHandler.Checkout)
	orders.GET("", s.orderHandler.ListMine)
	orders.GET("/:id", s.orderHandler.Get)
	orders.POST("/:id/cancel", s.orderHandler.Cancel)
	orders.POST("/:id/feedback", s.orderHandler.SubmitFeedback)
	orders.GET("/:id/feedback", s.orderHandler.GetFeedback)

	me := api.Group("/me", custommw.Authenticate(s.tokens))
	me.GET("/profile", s.profileHandler.Get)
	me.PUT("/profile", s.profileHandler.Update)
	me.GET("/likes", s.likeHandler.ListMine)

	api.GET("/support", s.supportHandler.Get)

	// -------- admin --------
	admin := api.Group("/admin", custommw.Authenticate(s.tokens), custommw.RequireAdmin())
	admin.GET("/dashboard", s.adminHandler.Dashboard)
	admin.GET("/users", s.adminHandler.ListUsers)
	admin.PUT("/users/:id", s.adminHandler.UpdateUser)
	admin.GET("/orders", s.adminHandler.ListOrders)
	admin.PUT("/orders/:id", s.adminHandler.UpdateOrder)
	admin.POST("/orders/:id/cancel", s.adminHandler.CancelOrder)
	admin.GET("/feedbacks", s.adminHandler.ListFeedback)
	admin.GET("/feedbacks/stats", s.adminHandler.FeedbackStats)
	admin.GET("/support", s.adminHandler.GetSupport)
	admin.PUT("/support", s.adminHandler.UpdateSupport)
	admin.GET("/settings", s.adminHandler.ListSettings)
	admin.PUT("/settings", s.adminHandler.SetSetting)
	admin.DELETE("/settings/:key", s.adminHandler.DeleteSetting)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
