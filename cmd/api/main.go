package main

import (
	"context"
	"errors"
	"imoveis/cmd/internal/config"
	"imoveis/cmd/internal/domain/database"
	"imoveis/cmd/internal/domain/database/repository"
	"imoveis/cmd/internal/http/handler"
	basemw "imoveis/cmd/internal/http/middleware"
	"imoveis/cmd/internal/service"
	"imoveis/cmd/internal/utils/validators"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const propertiesPath = "/properties"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("unable to load config: %v", err)
	}

	if cfg.IsProduction() {
		log.SetLevel(log.INFO)
	} else {
		log.SetLevel(log.DEBUG)
	}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		log.Fatalf("unable to open %s database: %v", cfg.Database.Driver, err)
	}

	validate := validator.New()
	registerValidators(validate)

	e := newServer(cfg, db, validate)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shut down server: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newServer(cfg *config.Config, db *gorm.DB, validate *validator.Validate) *echo.Echo {
	// Repos
	propertyRepo := repository.NewPropertyRepository(db)

	// Services
	propertyService := service.NewPropertyService(propertyRepo, validate)

	// Handlers
	propertyRoutes := handler.NewPropertyDefault(propertyService)

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	// Properties
	g := e.Group(propertiesPath, basemw.NewBaseURLMiddleware(&basemw.BaseURLMiddlewareConfig{
		PublicURL:      cfg.PublicBaseURL,
		CollectionPath: propertiesPath,
	}))
	g.GET("", propertyRoutes.GetProperties)
	g.GET("/:id", propertyRoutes.GetProperty)
	g.GET("/type/:tipo", propertyRoutes.GetPropertiesByType)
	g.GET("/city/:cidade", propertyRoutes.GetPropertiesByCity)
	g.POST("", propertyRoutes.CreateProperty)
	g.PUT("/:id", propertyRoutes.UpdateProperty)
	g.DELETE("/:id", propertyRoutes.DeleteProperty)

	// Liveness probe
	e.GET("/health", healthCheckRoute)

	return e
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation(validators.TagPresent, validators.Present)
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
