package controller

import (
	"strconv"

	"tg-notegraph-be/internal/apperror"
	"tg-notegraph-be/internal/dto"
	"tg-notegraph-be/internal/pkg/serverutils"
	"tg-notegraph-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.SoftDelete)
	h.Post(":id/restore", c.Restore)
	h.Post(":id/archive", c.Archive)
	h.Post(":id/unarchive", c.Unarchive)
	h.Post(":id/tags/:tagId", c.AttachTag)
	h.Delete(":id/tags/:tagId", c.DetachTag)
}

func parseUUIDParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.InvalidArgument("%s must be a valid uuid", name)
	}
	return id, nil
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidArgument("malformed body: %v", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidArgument("malformed body: %v", err)
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) SoftDelete(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.noteService.SoftDelete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete note", nil))
}

func (c *noteController) Restore(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.noteService.Restore(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success restore note", nil))
}

func (c *noteController) Archive(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.noteService.Archive(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success archive note", nil))
}

func (c *noteController) Unarchive(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.noteService.Unarchive(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success unarchive note", nil))
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	q, err := parseListNotesQuery(ctx)
	if err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(q); err != nil {
		return err
	}

	res, err := c.noteService.List(ctx.Context(), q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func parseListNotesQuery(ctx *fiber.Ctx) (*dto.ListNotesQuery, error) {
	ownerId, err := strconv.ParseInt(ctx.Query("owner_id"), 10, 64)
	if err != nil {
		return nil, apperror.InvalidArgument("owner_id query parameter is required")
	}

	q := &dto.ListNotesQuery{
		OwnerId:        ownerId,
		IncludeDeleted: ctx.QueryBool("include_deleted"),
		Limit:          ctx.QueryInt("limit"),
		Offset:         ctx.QueryInt("offset"),
	}

	if v := ctx.Query("note_type"); v != "" {
		q.NoteType = &v
	}
	if v := ctx.Query("archived"); v != "" {
		archived, err := strconv.ParseBool(v)
		if err != nil {
			return nil, apperror.InvalidArgument("archived must be a boolean")
		}
		q.Archived = &archived
	}
	if v := ctx.Query("tag_id"); v != "" {
		tagId, err := uuid.Parse(v)
		if err != nil {
			return nil, apperror.InvalidArgument("tag_id must be a valid uuid")
		}
		q.TagId = &tagId
	}

	return q, nil
}

func (c *noteController) AttachTag(ctx *fiber.Ctx) error {
	noteId, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	tagId, err := parseUUIDParam(ctx, "tagId")
	if err != nil {
		return err
	}

	if err := c.noteService.AttachTag(ctx.Context(), noteId, tagId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success attach tag", nil))
}

func (c *noteController) DetachTag(ctx *fiber.Ctx) error {
	noteId, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	tagId, err := parseUUIDParam(ctx, "tagId")
	if err != nil {
		return err
	}

	if err := c.noteService.DetachTag(ctx.Context(), noteId, tagId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success detach tag", nil))
}
