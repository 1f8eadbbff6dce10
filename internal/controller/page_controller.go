package controller

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/annaddsgr/Portfolio/internal/dto"
	"github.com/annaddsgr/Portfolio/internal/mapper"
	"github.com/annaddsgr/Portfolio/internal/pkg/logger"
	"github.com/annaddsgr/Portfolio/pkg/i18n"

	"github.com/gofiber/fiber/v2"
)

type IPageController interface {
	RegisterRoutes(app *fiber.App)
	Home(ctx *fiber.Ctx) error
	Briefing(ctx *fiber.Ctx) error
	NotFound(ctx *fiber.Ctx) error
}

type pageText struct {
	Home, Projects, About, Services, Contact string
	HeroTitle, HeroSoul, HeroSubtitle        string
	HeroManifesto, HeroCTA, CTABudget        string
	ProjectsTitle, ProjectsSubtitle          string
	AboutIntro, AboutMission, AboutVision    string
	ContactCTA, NotFoundBody                 string
}

type pageView struct {
	Lang         string
	Title        string
	Theme        string
	FontScale    int
	HighContrast bool
	T            pageText
	Steps        []dto.BriefingStepResponse
}

type pageController struct {
	templates *template.Template
	mapper    *mapper.BriefingMapper
	logger    logger.ILogger
}

func NewPageController(templates *template.Template, log logger.ILogger) IPageController {
	return &pageController{
		templates: templates,
		mapper:    mapper.NewBriefingMapper(),
		logger:    log,
	}
}

// RegisterRoutes must run after every other route: the wildcard answers
// whatever is left.
func (c *pageController) RegisterRoutes(app *fiber.App) {
	app.Get("/", c.Home)
	app.Get("/briefing", c.Briefing)
	app.Use(c.NotFound)
}

func (c *pageController) Home(ctx *fiber.Ctx) error {
	return c.render(ctx, fiber.StatusOK, "home", i18n.PageHomeTitle)
}

func (c *pageController) Briefing(ctx *fiber.Ctx) error {
	return c.render(ctx, fiber.StatusOK, "briefing", i18n.PageBriefingTitle)
}

func (c *pageController) NotFound(ctx *fiber.Ctx) error {
	if strings.HasPrefix(ctx.Path(), "/api/") || strings.HasPrefix(ctx.Path(), "/ws/") {
		return fiber.ErrNotFound
	}
	return c.render(ctx, fiber.StatusNotFound, "not_found", i18n.PageNotFoundTitle)
}

func (c *pageController) render(ctx *fiber.Ctx, status int, name string, title i18n.Key) error {
	locale := Locale(ctx)
	tr := i18n.For(locale)
	settings := Settings(ctx)

	view := pageView{
		Lang:         string(locale),
		Title:        tr.T(title),
		Theme:        settings.Theme,
		FontScale:    settings.FontScale,
		HighContrast: settings.HighContrast,
		T:            text(tr),
		Steps:        c.mapper.ToOptionsResponse(locale).Steps,
	}

	var buf bytes.Buffer
	if err := c.templates.ExecuteTemplate(&buf, name, view); err != nil {
		c.logger.Error("PageController", "Failed to render page", map[string]interface{}{
			"page":  name,
			"error": err.Error(),
		})
		return err
	}

	ctx.Type("html", "utf-8")
	return ctx.Status(status).Send(buf.Bytes())
}

func text(tr i18n.Translator) pageText {
	return pageText{
		Home:             tr.T(i18n.PageHomeTitle),
		Projects:         tr.T(i18n.NavProjects),
		About:            tr.T(i18n.NavAbout),
		Services:         tr.T(i18n.NavServices),
		Contact:          tr.T(i18n.NavContact),
		HeroTitle:        tr.T(i18n.HeroTitle),
		HeroSoul:         tr.T(i18n.HeroSoul),
		HeroSubtitle:     tr.T(i18n.HeroSubtitle),
		HeroManifesto:    tr.T(i18n.HeroManifesto),
		HeroCTA:          tr.T(i18n.HeroCTA),
		CTABudget:        tr.T(i18n.CTABudget),
		ProjectsTitle:    tr.T(i18n.ProjectsTitle),
		ProjectsSubtitle: tr.T(i18n.ProjectsSubtitle),
		AboutIntro:       tr.T(i18n.AboutIntro),
		AboutMission:     tr.T(i18n.AboutMission),
		AboutVision:      tr.T(i18n.AboutVision),
		ContactCTA:       tr.T(i18n.ContactCTA),
		NotFoundBody:     tr.T(i18n.PageNotFoundBody),
	}
}
