package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/styledecor/booking-api/docs"
	"github.com/styledecor/booking-api/internal/api/handler"
	"github.com/styledecor/booking-api/internal/api/middleware"
	"github.com/styledecor/booking-api/internal/core/domain"
	"github.com/styledecor/booking-api/internal/core/ports"
	"github.com/styledecor/booking-api/internal/core/service"
	mongodb "github.com/styledecor/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/styledecor/booking-api/internal/infrastructure/db/redis"
	"github.com/styledecor/booking-api/internal/pkg/config"
)

// NewRouter builds the Echo instance with every route registered. All
// dependencies except the audit sink and payment provider are constructed
// here; those two have their own lifecycles owned by main.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	cfg *config.Config,
	audit service.AuditSink,
	provider ports.PaymentProvider,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("styledecor"))

	// --- Dependencies ---
	roleCache := redisdb.NewRoleCache(rdb)
	userRepo := mongodb.NewUserRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, 0)
	roles := service.NewRoleResolver(userRepo, roleCache, log)
	users := service.NewUserService(userRepo, cfg.BootstrapAdminEmail, roleCache, log)
	bookings := service.NewBookingService(bookingRepo, audit, log)
	catalog := service.NewCatalogService(catalogRepo, log)

	tokenHandler := handler.NewTokenHandler(tokens)
	userHandler := handler.NewUserHandler(users)
	bookingHandler := handler.NewBookingHandler(bookings)
	catalogHandler := handler.NewCatalogHandler(catalog)
	paymentHandler := handler.NewPaymentHandler(provider)

	auth := middleware.Auth(tokens, roles)
	authOptional := middleware.AuthOptional(tokens, roles)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	fulfillers := middleware.RBAC(domain.RoleDecorator, domain.RoleAdmin)

	// --- Credentials ---
	e.POST("/jwt", tokenHandler.Issue)

	// --- Catalog ---
	e.GET("/services", catalogHandler.List)
	e.GET("/services/:id", catalogHandler.Get)
	e.POST("/services", catalogHandler.Create, auth, adminOnly)
	e.PUT("/services/:id", catalogHandler.Update, auth, adminOnly)
	e.DELETE("/services/:id", catalogHandler.Delete, auth, adminOnly)

	// --- Bookings ---
	e.POST("/bookings", bookingHandler.Create, authOptional)
	e.GET("/bookings", bookingHandler.ListForClient, auth)
	e.GET("/bookings/all", bookingHandler.ListAll, auth, adminOnly)
	e.GET("/admin/bookings", bookingHandler.ListAll, auth, adminOnly)
	e.GET("/bookings/decorator/:email", bookingHandler.ListForDecorator, auth)
	e.PATCH("/bookings/assign/:id", bookingHandler.Assign, auth, adminOnly)
	e.PATCH("/bookings/status/:id", bookingHandler.UpdateStatus, auth, fulfillers)
	e.PATCH("/bookings/payment-success/:id", bookingHandler.ConfirmPayment, auth)
	e.DELETE("/bookings/:id", bookingHandler.Cancel, auth)

	// --- Users ---
	e.POST("/users", userHandler.Register)
	e.GET("/users/role/:email", userHandler.GetRole, auth)
	e.GET("/users/:email", userHandler.Get, auth)
	e.PUT("/users/:email", userHandler.Update, auth)
	e.GET("/admin/users", userHandler.ListAll, auth, adminOnly)

	// --- Payments ---
	e.POST("/create-payment-intent", paymentHandler.CreateIntent, auth)

	// --- Observability & docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
