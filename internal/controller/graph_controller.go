package controller

import (
	"tg-notegraph-be/internal/apperror"
	"tg-notegraph-be/internal/dto"
	"tg-notegraph-be/internal/pkg/serverutils"
	"tg-notegraph-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGraphController interface {
	RegisterRoutes(r fiber.Router)
}

type graphController struct {
	graphService service.IGraphService
}

func NewGraphController(graphService service.IGraphService) IGraphController {
	return &graphController{
		graphService: graphService,
	}
}

func (c *graphController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/graph/v1")
	h.Post("link", c.Link)
	h.Post("unlink", c.Unlink)
	h.Get(":id/outgoing", c.Outgoing)
	h.Get(":id/incoming", c.Incoming)
}

func (c *graphController) Link(ctx *fiber.Ctx) error {
	var req dto.LinkNotesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidArgument("malformed body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.graphService.Link(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success link notes", res))
}

func (c *graphController) Unlink(ctx *fiber.Ctx) error {
	var req dto.UnlinkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidArgument("malformed body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.graphService.Unlink(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success unlink notes", nil))
}

func linkTypeFilter(ctx *fiber.Ctx) *string {
	if v := ctx.Query("link_type"); v != "" {
		return &v
	}
	return nil
}

func (c *graphController) Outgoing(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.graphService.Outgoing(ctx.Context(), id, linkTypeFilter(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list outgoing links", res))
}

func (c *graphController) Incoming(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.graphService.Incoming(ctx.Context(), id, linkTypeFilter(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list incoming links", res))
}
