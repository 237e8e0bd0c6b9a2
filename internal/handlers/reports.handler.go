package handlers

import (
	"errors"
	"washboard/internal/app"
	reportsController "washboard/internal/controllers/reports"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type ReportsHandler struct {
	Handler
	reportsController reportsController.ReportsControllerInterface
}

func NewReportsHandler(app app.App, router fiber.Router) *ReportsHandler {
	log := logger.New("handlers").File("reports_handler")
	return &ReportsHandler{
		reportsController: app.Controllers.Reports,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ReportsHandler) Register() {
	reports := h.router.Group("/reports")
	reports.Get("/earnings", h.getEarningsReport)
	reports.Get("/snapshot", h.getDailySnapshot)
	reports.Put("/manual-salary", h.editManualSalary)
}

func (h *ReportsHandler) getEarningsReport(c *fiber.Ctx) error {
	var req reportsController.EarningsReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid query parameters",
		})
	}

	report, err := h.reportsController.GetEarningsReport(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, reportsController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute earnings report",
		})
	}

	return c.JSON(report)
}

func (h *ReportsHandler) getDailySnapshot(c *fiber.Ctx) error {
	report, err := h.reportsController.GetDailySnapshot(c.UserContext(), c.Query("date"))
	if err != nil {
		if errors.Is(err, reportsController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get daily snapshot",
		})
	}

	return c.JSON(report)
}

func (h *ReportsHandler) editManualSalary(c *fiber.Ctx) error {
	var req reportsController.EditManualSalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	override, err := h.reportsController.EditManualSalary(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, reportsController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if errors.Is(err, reportsController.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save manual salary",
		})
	}

	return c.JSON(fiber.Map{
		"override": override,
	})
}
