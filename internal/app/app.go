package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/mondragon/guitar-shop/storefront-service/config"
	"github.com/mondragon/guitar-shop/storefront-service/internal/cart"
	"github.com/mondragon/guitar-shop/storefront-service/internal/controller"
	"github.com/mondragon/guitar-shop/storefront-service/internal/infrastructure/tracing"
	"github.com/mondragon/guitar-shop/storefront-service/internal/middleware"
	"github.com/mondragon/guitar-shop/storefront-service/internal/repository"
	"github.com/mondragon/guitar-shop/storefront-service/internal/service"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/response"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB     *mongo.Database
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	app.Server = e

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer("storefront-service")

			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					req := c.Request()
					c.SetRequest(req.WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	// Empty prefix so metrics aggregate across services without renaming
	e.Use(echoprometheus.NewMiddleware(""))

	if app.Config.MetricsPort != "" {
		go func() {
			metrics := echo.New()
			metrics.GET("/metrics", echoprometheus.NewHandler())
			if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	g := e.Group("/api/v1")
	g.Use(middleware.Logger)

	protect := echomiddleware.JWTWithConfig(echomiddleware.JWTConfig{
		SigningKey: []byte(app.Config.JWTSecret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			errorResponse := map[string]interface{}{
				"status":  "error",
				"message": "Invalid or expired JWT",
				"errors":  nil,
			}
			return c.JSON(http.StatusUnauthorized, errorResponse)
		},
	})

	productRepo := repository.CreateNewMongoDBProductRepository(app.DB)
	categoryRepo := repository.CreateNewMongoDBCategoryRepository(app.DB)
	userRepo := repository.CreateNewMongoDBUserRepository(app.DB)

	var cartStore cart.Store
	if app.Config.RedisConfig.Host != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%s", app.Config.RedisConfig.Host, app.Config.RedisConfig.Port),
		})
		cartStore = cart.CreateRedisStore(redisClient)
	} else {
		cartStore = cart.CreateMemoryStore()
	}

	productSvc := service.CreateProductService(productRepo, categoryRepo)
	categorySvc := service.CreateCategoryService(categoryRepo)
	userSvc := service.CreateUserService(userRepo, *app.Config)
	cartSvc := service.CreateCartService(productRepo, cartStore)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userSvc.EnsureAdmin(seedCtx, app.Config.AdminConfig.Name, app.Config.AdminConfig.Email, app.Config.AdminConfig.Password); err != nil {
		logger.Error().Err(err).Msg("Failed to seed admin account")
	}
	cancelSeed()

	controller.CreateAuthController(g, userSvc, protect)
	controller.CreateProductController(g, productSvc, protect, middleware.AdminOnly)
	controller.CreateCategoryController(g, categorySvc, protect, middleware.AdminOnly)
	controller.CreateCartController(g, cartSvc)
	controller.CreateAdminController(g, protect, middleware.AdminOnly)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Mondragon Guitars API is running", nil)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
