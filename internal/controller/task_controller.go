package controller

import (
	"strconv"
	"time"

	"tg-notegraph-be/internal/apperror"
	"tg-notegraph-be/internal/dto"
	"tg-notegraph-be/internal/pkg/serverutils"
	"tg-notegraph-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITaskController interface {
	RegisterRoutes(r fiber.Router)
}

type taskController struct {
	taskService service.ITaskService
}

func NewTaskController(taskService service.ITaskService) ITaskController {
	return &taskController{
		taskService: taskService,
	}
}

func (c *taskController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/task/v1")
	h.Get("", c.List)
	h.Put(":noteId", c.Upsert)
	h.Get(":noteId", c.Show)
}

func (c *taskController) Upsert(ctx *fiber.Ctx) error {
	noteId, err := parseUUIDParam(ctx, "noteId")
	if err != nil {
		return err
	}

	var req dto.UpsertTaskMetaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidArgument("malformed body: %v", err)
	}
	req.NoteId = noteId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taskService.Upsert(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success upsert task metadata", res))
}

func (c *taskController) Show(ctx *fiber.Ctx) error {
	noteId, err := parseUUIDParam(ctx, "noteId")
	if err != nil {
		return err
	}

	res, err := c.taskService.Show(ctx.Context(), noteId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show task metadata", res))
}

func (c *taskController) List(ctx *fiber.Ctx) error {
	q, err := parseListTasksQuery(ctx)
	if err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(q); err != nil {
		return err
	}

	res, err := c.taskService.List(ctx.Context(), q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list tasks", res))
}

func parseListTasksQuery(ctx *fiber.Ctx) (*dto.ListTasksQuery, error) {
	ownerId, err := strconv.ParseInt(ctx.Query("owner_id"), 10, 64)
	if err != nil {
		return nil, apperror.InvalidArgument("owner_id query parameter is required")
	}

	q := &dto.ListTasksQuery{OwnerId: ownerId}

	if v := ctx.Query("status"); v != "" {
		q.Status = &v
	}
	if v := ctx.Query("priority"); v != "" {
		q.Priority = &v
	}
	if v := ctx.Query("due_before"); v != "" {
		dueBefore, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, apperror.InvalidArgument("due_before must be an RFC3339 timestamp")
		}
		q.DueBefore = &dueBefore
	}

	return q, nil
}
