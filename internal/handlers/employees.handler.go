package handlers

import (
	"errors"
	"washboard/internal/app"
	employeesController "washboard/internal/controllers/employees"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EmployeesHandler struct {
	Handler
	employeesController employeesController.EmployeesControllerInterface
}

func NewEmployeesHandler(app app.App, router fiber.Router) *EmployeesHandler {
	log := logger.New("handlers").File("employees_handler")
	return &EmployeesHandler{
		employeesController: app.Controllers.Employees,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *EmployeesHandler) Register() {
	employees := h.router.Group("/employees")
	employees.Get("", h.list)
	employees.Post("", h.create)
	employees.Patch("/:id", h.update)
}

func (h *EmployeesHandler) list(c *fiber.Ctx) error {
	employees, err := h.employeesController.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list employees",
		})
	}

	return c.JSON(fiber.Map{
		"employees": employees,
	})
}

func (h *EmployeesHandler) create(c *fiber.Ctx) error {
	var req employeesController.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	employee, err := h.employeesController.Create(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, employeesController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create employee",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"employee": employee,
	})
}

func (h *EmployeesHandler) update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid employee ID",
		})
	}

	var req employeesController.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	employee, err := h.employeesController.Update(c.UserContext(), id, &req)
	if err != nil {
		if errors.Is(err, employeesController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if errors.Is(err, employeesController.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update employee",
		})
	}

	return c.JSON(fiber.Map{
		"employee": employee,
	})
}
