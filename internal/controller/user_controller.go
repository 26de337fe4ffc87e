package controller

import (
	"strconv"

	"tg-notegraph-be/internal/apperror"
	"tg-notegraph-be/internal/dto"
	"tg-notegraph-be/internal/pkg/serverutils"
	"tg-notegraph-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Post("", c.Register)
	h.Post("ensure", c.Ensure)
	h.Get(":telegramId", c.Show)
	h.Put(":telegramId", c.UpdateProfile)
	h.Post(":telegramId/login", c.RecordLogin)
	h.Post(":telegramId/deactivate", c.Deactivate)
	h.Delete(":telegramId", c.Delete)
}

func parseTelegramId(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("telegramId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.InvalidArgument("telegramId must be a positive integer")
	}
	return id, nil
}

func (c *userController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidArgument("malformed body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success register user", res))
}

func (c *userController) Ensure(ctx *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidArgument("malformed body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.Ensure(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success ensure user", res))
}

func (c *userController) Show(ctx *fiber.Ctx) error {
	telegramId, err := parseTelegramId(ctx)
	if err != nil {
		return err
	}

	res, err := c.userService.Show(ctx.Context(), telegramId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show user", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	telegramId, err := parseTelegramId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateUserProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidArgument("malformed body: %v", err)
	}
	req.TelegramId = telegramId

	res, err := c.userService.UpdateProfile(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update profile", res))
}

func (c *userController) RecordLogin(ctx *fiber.Ctx) error {
	telegramId, err := parseTelegramId(ctx)
	if err != nil {
		return err
	}

	if err := c.userService.RecordLogin(ctx.Context(), telegramId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success record login", nil))
}

func (c *userController) Deactivate(ctx *fiber.Ctx) error {
	telegramId, err := parseTelegramId(ctx)
	if err != nil {
		return err
	}

	if err := c.userService.Deactivate(ctx.Context(), telegramId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success deactivate user", nil))
}

func (c *userController) Delete(ctx *fiber.Ctx) error {
	telegramId, err := parseTelegramId(ctx)
	if err != nil {
		return err
	}

	if err := c.userService.Delete(ctx.Context(), telegramId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete user", nil))
}
