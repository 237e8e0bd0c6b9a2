package handlers

import (
	"errors"
	"washboard/internal/app"
	assignmentsController "washboard/internal/controllers/assignments"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type AssignmentsHandler struct {
	Handler
	assignmentsController assignmentsController.AssignmentsControllerInterface
}

func NewAssignmentsHandler(app app.App, router fiber.Router) *AssignmentsHandler {
	log := logger.New("handlers").File("assignments_handler")
	return &AssignmentsHandler{
		assignmentsController: app.Controllers.Assignments,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AssignmentsHandler) Register() {
	assignments := h.router.Group("/assignments")
	assignments.Get("", h.list)
	assignments.Put("/:date", h.setDaySheet)
}

func (h *AssignmentsHandler) list(c *fiber.Ctx) error {
	var req assignmentsController.ListAssignmentsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid query parameters",
		})
	}

	assignments, err := h.assignmentsController.ListByRange(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, assignmentsController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list role assignments",
		})
	}

	return c.JSON(fiber.Map{
		"assignments": assignments,
	})
}

func (h *AssignmentsHandler) setDaySheet(c *fiber.Ctx) error {
	var req assignmentsController.SetDaySheetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	assignments, err := h.assignmentsController.SetDaySheet(c.UserContext(), c.Params("date"), &req)
	if err != nil {
		if errors.Is(err, assignmentsController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save role assignments",
		})
	}

	return c.JSON(fiber.Map{
		"assignments": assignments,
	})
}
