package controller

import (
	"strings"
	"time"

	"github.com/annaddsgr/Portfolio/internal/dto"
	"github.com/annaddsgr/Portfolio/internal/mapper"
	"github.com/annaddsgr/Portfolio/internal/pkg/logger"
	"github.com/annaddsgr/Portfolio/internal/pkg/serverutils"
	"github.com/annaddsgr/Portfolio/pkg/i18n"
	"github.com/annaddsgr/Portfolio/pkg/preferences"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	localsVisitorID = "visitor_id"
	localsLocale    = "locale"
	localsSettings  = "preferences"
)

type IPreferenceController interface {
	RegisterRoutes(r fiber.Router)
	Middleware() fiber.Handler
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type preferenceController struct {
	service       *preferences.Service
	mapper        *mapper.PreferenceMapper
	cookieName    string
	cookieMaxAge  time.Duration
	defaultLocale i18n.Locale
	logger        logger.ILogger
}

func NewPreferenceController(service *preferences.Service, cookieName string, cookieMaxAge time.Duration, defaultLocale i18n.Locale, log logger.ILogger) IPreferenceController {
	return &preferenceController{
		service:       service,
		mapper:        mapper.NewPreferenceMapper(),
		cookieName:    cookieName,
		cookieMaxAge:  cookieMaxAge,
		defaultLocale: defaultLocale,
		logger:        log,
	}
}

func (c *preferenceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/preferences/v1")
	h.Get("", c.Show)
	h.Put("", c.Update)
}

// Middleware identifies the visitor by cookie, resolves the locale and
// makes the visitor's settings available through Settings. The store is
// only read when a handler asks for them.
func (c *preferenceController) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		visitorID := ctx.Cookies(c.cookieName)
		if _, err := uuid.Parse(visitorID); err != nil {
			visitorID = uuid.NewString()
			ctx.Cookie(&fiber.Cookie{
				Name:     c.cookieName,
				Value:    visitorID,
				Path:     "/",
				MaxAge:   int(c.cookieMaxAge.Seconds()),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		ctx.Locals(localsVisitorID, visitorID)
		ctx.Locals(localsLocale, c.resolveLocale(ctx))

		var (
			loaded   bool
			settings preferences.Settings
		)
		ctx.Locals(localsSettings, func() preferences.Settings {
			if !loaded {
				var err error
				settings, err = c.service.Load(ctx.UserContext(), visitorID)
				if err != nil {
					c.logger.Warn("PreferenceController", "Failed to load preferences, using defaults", map[string]interface{}{
						"visitor_id": visitorID,
						"error":      err.Error(),
					})
				}
				loaded = true
			}
			return settings
		})

		return ctx.Next()
	}
}

func (c *preferenceController) resolveLocale(ctx *fiber.Ctx) i18n.Locale {
	if lang := ctx.Query("lang"); lang != "" {
		return i18n.ParseLocale(lang)
	}

	// first tag wins, q-values are ignored
	if header := ctx.Get(fiber.HeaderAcceptLanguage); header != "" {
		tag := strings.TrimSpace(strings.SplitN(strings.SplitN(header, ",", 2)[0], ";", 2)[0])
		if tag != "" && tag != "*" {
			return i18n.ParseLocale(tag)
		}
	}
	return c.defaultLocale
}

func (c *preferenceController) Show(ctx *fiber.Ctx) error {
	res := c.mapper.ToResponse(VisitorID(ctx), Settings(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Success get preferences", res))
}

func (c *preferenceController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdatePreferencesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("body", "must be valid JSON")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	visitorID := VisitorID(ctx)
	settings, err := c.service.Update(ctx.UserContext(), visitorID, c.mapper.ToPatch(&req))
	if err != nil {
		return err
	}

	switch req.Action {
	case "increase_font":
		scale := settings.IncreaseFont().FontScale
		settings, err = c.service.Update(ctx.UserContext(), visitorID, preferences.Patch{FontScale: &scale})
	case "decrease_font":
		scale := settings.DecreaseFont().FontScale
		settings, err = c.service.Update(ctx.UserContext(), visitorID, preferences.Patch{FontScale: &scale})
	case "reset":
		settings, err = c.service.Reset(ctx.UserContext(), visitorID)
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update preferences", c.mapper.ToResponse(visitorID, settings)))
}

// VisitorID is the anonymous id set by the preference middleware.
func VisitorID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(localsVisitorID).(string)
	return id
}

// Locale is the language negotiated for this request.
func Locale(ctx *fiber.Ctx) i18n.Locale {
	if l, ok := ctx.Locals(localsLocale).(i18n.Locale); ok {
		return l
	}
	return i18n.DefaultLocale
}

// Settings returns the visitor's display settings, loading them on first use.
func Settings(ctx *fiber.Ctx) preferences.Settings {
	if load, ok := ctx.Locals(localsSettings).(func() preferences.Settings); ok {
		return load()
	}
	return preferences.Defaults()
}
