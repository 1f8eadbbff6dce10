package controller

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/annaddsgr/Portfolio/internal/dto"
	"github.com/annaddsgr/Portfolio/internal/pkg/serverutils"
	"github.com/annaddsgr/Portfolio/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBriefingController interface {
	RegisterRoutes(r fiber.Router)
	Options(ctx *fiber.Ctx) error
	Start(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateFields(ctx *fiber.Ctx) error
	Next(ctx *fiber.Ctx) error
	Prev(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
}

type briefingController struct {
	service   service.IBriefingService
	artifacts service.IArtifactService
}

func NewBriefingController(service service.IBriefingService, artifacts service.IArtifactService) IBriefingController {
	return &briefingController{service: service, artifacts: artifacts}
}

func (c *briefingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/briefing/v1")
	h.Get("options", c.Options)
	h.Get("download/:token", c.Download)
	h.Post("", c.Start)
	h.Get(":id", c.Show)
	h.Patch(":id/fields", c.UpdateFields)
	h.Post(":id/next", c.Next)
	h.Post(":id/prev", c.Prev)
	h.Post(":id/reset", c.Reset)
	h.Post(":id/submit", c.Submit)
}

func (c *briefingController) Options(ctx *fiber.Ctx) error {
	res := c.service.Options(Locale(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Success get briefing options", res))
}

func (c *briefingController) Start(ctx *fiber.Ctx) error {
	var req dto.StartBriefingRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return serverutils.NewValidationError("body", "must be valid JSON")
		}
	}
	if req.Locale == "" {
		req.Locale = string(Locale(ctx))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Start(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	body := serverutils.SuccessResponse("Success start briefing", res)
	body.Code = fiber.StatusCreated
	return ctx.Status(fiber.StatusCreated).JSON(body)
}

func (c *briefingController) Show(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show briefing", res))
}

func (c *briefingController) UpdateFields(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateBriefingFieldsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("body", "must be valid JSON")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateFields(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update briefing", res))
}

func (c *briefingController) Next(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Advance(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success advance briefing", res))
}

func (c *briefingController) Prev(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Retreat(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success retreat briefing", res))
}

func (c *briefingController) Reset(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Reset(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reset briefing", res))
}

func (c *briefingController) Submit(ctx *fiber.Ctx) error {
	id, err := sessionID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.UserContext(), id)
	if err != nil {
		// failed outcomes still carry the localized message for the user
		if res != nil && (errors.Is(err, service.ErrGenerationFailed) || errors.Is(err, service.ErrDeliveryFailed)) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.BaseResponse[*dto.SubmitBriefingResponse]{
				Success: false,
				Code:    fiber.StatusInternalServerError,
				Message: res.Message,
				Data:    res,
			})
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

func (c *briefingController) Download(ctx *fiber.Ctx) error {
	artifact, err := c.artifacts.Redeem(ctx.UserContext(), ctx.Params("token"))
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, artifact.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`,
		artifact.FileName, url.PathEscape(artifact.FileName)))
	ctx.Set(fiber.HeaderCacheControl, "no-store")
	return ctx.Send(artifact.Data)
}

func sessionID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, service.ErrBriefingNotFound
	}
	return id, nil
}
