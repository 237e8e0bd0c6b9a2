package handlers

import (
	"errors"
	"washboard/internal/app"
	washesController "washboard/internal/controllers/washes"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type WashesHandler struct {
	Handler
	washesController washesController.WashesControllerInterface
}

func NewWashesHandler(app app.App, router fiber.Router) *WashesHandler {
	log := logger.New("handlers").File("washes_handler")
	return &WashesHandler{
		washesController: app.Controllers.Washes,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *WashesHandler) Register() {
	washes := h.router.Group("/washes")
	washes.Get("", h.list)
	washes.Post("", h.create)
}

func (h *WashesHandler) list(c *fiber.Ctx) error {
	var req washesController.ListWashesRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid query parameters",
		})
	}

	records, err := h.washesController.ListByRange(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, washesController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list wash records",
		})
	}

	return c.JSON(fiber.Map{
		"records": records,
	})
}

func (h *WashesHandler) create(c *fiber.Ctx) error {
	var req washesController.CreateWashRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	record, err := h.washesController.Create(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, washesController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create wash record",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"record": record,
	})
}
