package main

import (
	"context"
	"log"
	"os"
	"time"

	"tg-notegraph-be/internal/dto"
	"tg-notegraph-be/internal/model"
	"tg-notegraph-be/internal/pkg/logger"
	"tg-notegraph-be/internal/repository/unitofwork"
	"tg-notegraph-be/internal/service"
	"tg-notegraph-be/pkg/database"

	"github.com/fatih/color"
)

// Walks the note-graph happy path against a throwaway sqlite database:
// register a user, create a task note with metadata, link a project note
// to it and read the adjacency back from both directions.
func main() {
	color.Cyan("=== Note Graph Simulation ===")

	dbPath := "simulation.db"
	_ = os.Remove(dbPath)
	defer os.Remove(dbPath)

	db, err := database.NewSQLiteDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to open sqlite: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewNopLogger()

	userService := service.NewUserService(uowFactory, sysLogger)
	noteService := service.NewNoteService(uowFactory, sysLogger)
	taskService := service.NewTaskService(uowFactory, sysLogger)
	graphService := service.NewGraphService(uowFactory, sysLogger)

	ctx := context.Background()

	// 1. Register the bot user
	username := "demo_user"
	user, err := userService.Register(ctx, &dto.RegisterUserRequest{
		TelegramId: 42,
		Username:   &username,
	})
	if err != nil {
		log.Fatalf("Register failed: %v", err)
	}
	color.Green("Registered user telegram_id=%d", user.TelegramId)

	// 2. Create a task note and its metadata
	groceries, err := noteService.Create(ctx, &dto.CreateNoteRequest{
		OwnerId:  user.TelegramId,
		Title:    "Groceries",
		Content:  "- milk\n- eggs\n- coffee",
		NoteType: "task",
	})
	if err != nil {
		log.Fatalf("Create note failed: %v", err)
	}
	color.Green("Created note %q (%s)", groceries.Title, groceries.Id)

	due := time.Now().Add(7 * 24 * time.Hour)
	meta, err := taskService.Upsert(ctx, &dto.UpsertTaskMetaRequest{
		NoteId:   groceries.Id,
		Priority: "high",
		Status:   "todo",
		DueDate:  &due,
	})
	if err != nil {
		log.Fatalf("Upsert task meta failed: %v", err)
	}
	color.Green("Task meta: priority=%s status=%s due=%s", meta.Priority, meta.Status, meta.DueDate.Format(time.RFC3339))

	// 3. Link a project note to the task
	mealPlan, err := noteService.Create(ctx, &dto.CreateNoteRequest{
		OwnerId:  user.TelegramId,
		Title:    "Meal Plan",
		NoteType: "project",
	})
	if err != nil {
		log.Fatalf("Create note failed: %v", err)
	}

	link, err := graphService.Link(ctx, &dto.LinkNotesRequest{
		SourceNoteId: mealPlan.Id,
		TargetNoteId: groceries.Id,
		LinkType:     "parent",
	})
	if err != nil {
		log.Fatalf("Link failed: %v", err)
	}
	color.Green("Linked %q -> %q (%s)", mealPlan.Title, groceries.Title, link.LinkType)

	// 4. Read the adjacency back from both directions
	incoming, err := graphService.Incoming(ctx, groceries.Id, nil)
	if err != nil {
		log.Fatalf("Incoming failed: %v", err)
	}
	outgoing, err := graphService.Outgoing(ctx, mealPlan.Id, nil)
	if err != nil {
		log.Fatalf("Outgoing failed: %v", err)
	}
	color.Green("%q incoming links: %d, %q outgoing links: %d",
		groceries.Title, len(incoming), mealPlan.Title, len(outgoing))

	// 5. Duplicate edges are rejected by the storage engine
	if _, err := graphService.Link(ctx, &dto.LinkNotesRequest{
		SourceNoteId: mealPlan.Id,
		TargetNoteId: groceries.Id,
		LinkType:     "parent",
	}); err != nil {
		color.Yellow("Duplicate edge rejected as expected: %v", err)
	}

	// 6. Enriched note view carries tags and task metadata
	shown, err := noteService.Show(ctx, groceries.Id)
	if err != nil {
		log.Fatalf("Show failed: %v", err)
	}
	if shown.TaskMeta != nil {
		color.Green("Show(%q): task_meta.priority=%s", shown.Title, shown.TaskMeta.Priority)
	}

	color.Cyan("=== Simulation complete ===")
}
