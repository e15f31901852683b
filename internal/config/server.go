package config

import (
	"StatMedan/database/postgres"
	assistantHandler "StatMedan/internal/api/assistant/handler"
	assistantService "StatMedan/internal/api/assistant/service"
	catalogRepository "StatMedan/internal/api/catalog/repository"
	catalogService "StatMedan/internal/api/catalog/service"
	"StatMedan/internal/middleware"
	"StatMedan/pkg/bps"
	"StatMedan/pkg/nlp"
	"StatMedan/pkg/utils"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourcePostgres = "postgres"

	defaultRateLimitRPS   = 50
	defaultRateLimitBurst = 100
	catalogLoadTimeout    = 15 * time.Second
)

type ServerOption func(*Server) error

type Server struct {
	engine        *fiber.App
	db            *sqlx.DB
	log           *logrus.Logger
	middleware    middleware.Middleware
	validator     *validator.Validate
	utils         utils.IUtils
	catalog       bps.ICatalog
	responseDelay time.Duration
	handlers      []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithCatalog loads the dataset catalog from the source named by
// CATALOG_SOURCE. The Postgres source opens the database connection.
func WithCatalog() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before catalog")
		}

		var source bps.Source
		switch kind := strings.ToLower(os.Getenv("CATALOG_SOURCE")); kind {
		case "", CatalogSourceStatic:
			source = bps.NewStaticSource()
		case CatalogSourcePostgres:
			db, err := postgres.New()
			if err != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
				return fmt.Errorf("failed to create database connection: %w", err)
			}
			s.db = db
			source = catalogService.New(s.log, catalogRepository.New(db, s.log))
		default:
			return fmt.Errorf("unknown CATALOG_SOURCE %q", kind)
		}

		ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
		defer cancel()

		catalog, err := bps.Load(ctx, source)
		if err != nil {
			return err
		}

		s.log.WithFields(logrus.Fields{
			"datasets": catalog.Len(),
		}).Info("Dataset catalog ready")

		s.catalog = catalog
		return nil
	}
}

// WithStaticCatalog uses an already built catalog.
func WithStaticCatalog(catalog bps.ICatalog) ServerOption {
	return func(s *Server) error {
		s.catalog = catalog
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}

		rps, err := envFloat("RATE_LIMIT_RPS", defaultRateLimitRPS)
		if err != nil {
			return err
		}
		burst, err := envInt("RATE_LIMIT_BURST", defaultRateLimitBurst)
		if err != nil {
			return err
		}

		s.middleware = middleware.New(s.log, rps, burst)
		return nil
	}
}

func WithResponseDelay() ServerOption {
	return func(s *Server) error {
		ms, err := envInt("RESPONSE_DELAY_MS", 0)
		if err != nil {
			return err
		}
		if ms < 0 {
			return fmt.Errorf("RESPONSE_DELAY_MS must not be negative")
		}
		s.responseDelay = time.Duration(ms) * time.Millisecond
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Assistant Domain
	processor := nlp.NewProcessor(s.catalog, s.log)
	assistantConfig := assistantService.DefaultConfig()
	assistantConfig.ResponseDelay = s.responseDelay
	assistantServices := assistantService.NewAssistantService(s.log, processor, s.catalog, s.utils, assistantConfig)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, assistantHandlers)
}

// App exposes the engine with every route mounted.
func (s *Server) App() *fiber.App {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware)

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}

	return s.engine
}

func (s *Server) Run() error {
	app := s.App()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return app.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown() error {
	err := s.engine.Shutdown()
	if s.db != nil {
		if dbErr := s.db.Close(); dbErr != nil && err == nil {
			err = dbErr
		}
	}
	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message":  "Server is Healthy!",
			"datasets": s.catalog.Len(),
		})
	})
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
