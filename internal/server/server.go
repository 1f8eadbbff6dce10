package server

import (
	"log"
	"strings"

	"github.com/annaddsgr/Portfolio/internal/bootstrap"
	"github.com/annaddsgr/Portfolio/internal/config"
	"github.com/annaddsgr/Portfolio/internal/pkg/serverutils"
	"github.com/annaddsgr/Portfolio/internal/repository/contract"
	"github.com/annaddsgr/Portfolio/internal/service"
	"github.com/annaddsgr/Portfolio/pkg/briefing"
	"github.com/annaddsgr/Portfolio/pkg/preferences"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB, briefings are text only
	})

	app.Use(cors.New(corsConfig(cfg.App.CorsAllowedOrigins)))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(errorMappings()...))

	app.Use(container.PreferenceController.Middleware())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func errorMappings() []serverutils.ErrorMapping {
	return []serverutils.ErrorMapping{
		{Target: service.ErrBriefingNotFound, Status: fiber.StatusNotFound},
		{Target: contract.ErrArtifactNotFound, Status: fiber.StatusNotFound},
		{Target: briefing.ErrUnknownField, Status: fiber.StatusBadRequest},
		{Target: preferences.ErrInvalidTheme, Status: fiber.StatusBadRequest},
		{Target: service.ErrSubmissionInFlight, Status: fiber.StatusConflict},
		{Target: service.ErrNotAtFinalStep, Status: fiber.StatusConflict},
		{Target: service.ErrGenerationFailed, Status: fiber.StatusInternalServerError, Message: "Briefing could not be generated, please try again"},
		{Target: service.ErrDeliveryFailed, Status: fiber.StatusInternalServerError, Message: "Briefing could not be delivered, please try again"},
	}
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.BriefingController.RegisterRoutes(api)
	c.PreferenceController.RegisterRoutes(api)
	c.ContactController.RegisterRoutes(api)

	c.BriefingWsHandler.RegisterRoutes(app)

	// last: owns the wildcard
	c.PageController.RegisterRoutes(app)
}

// corsConfig allows credentials (the visitor cookie) only for explicit
// origins; fiber refuses a wildcard combined with credentials.
func corsConfig(origins string) cors.Config {
	origins = strings.TrimSpace(origins)
	if origins == "" {
		origins = "*"
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: !strings.Contains(origins, "*"),
		AllowHeaders:     "Origin, Content-Type, Accept, Accept-Language",
		AllowMethods:     "GET, POST, PUT, PATCH, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Content-Disposition",
	}
}
