package hrapi

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-console/internal/domain"
	"github.com/spec-kit/employee-console/pkg/util/faultutil"
)

// NewServer assembles the fiber app exposing the HR API surface the console
// consumes. Error responses carry the flat {"message": ...} envelope the
// original API uses.
func NewServer(employees *EmployeeService, departments *DepartmentService, logger *zap.Logger) *fiber.App {
	app := fiber.New()
	app.Use(messageEnvelopeMiddleware(logger))

	api := app.Group("/api")

	emp := api.Group("/employees")
	emp.Get("/", listEmployees(employees))
	emp.Get("/:id", getEmployee(employees))
	emp.Post("/", createEmployee(employees))
	emp.Put("/:id", updateEmployee(employees))
	emp.Delete("/:id", deleteEmployee(employees))

	dept := api.Group("/departments")
	dept.Get("/", listDepartments(departments))
	dept.Get("/:id", getDepartment(departments))
	dept.Post("/", createDepartment(departments))
	dept.Put("/:id", updateDepartment(departments))
	dept.Delete("/:id", deleteDepartment(departments))

	return app
}

func messageEnvelopeMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}
		fault := faultutil.ToFault(err)
		if fault.HTTPStatus() >= 500 {
			logger.Error("request failed", zap.String("path", c.Path()), zap.Error(fault))
		}
		return c.Status(fault.HTTPStatus()).JSON(fiber.Map{"message": fault.Message})
	}
}

func listEmployees(s *EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employees, err := s.List(c.Context())
		if err != nil {
			return err
		}
		return c.JSON(employees)
	}
}

func getEmployee(s *EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		emp, err := s.Get(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(emp)
	}
}

func createEmployee(s *EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var draft domain.EmployeeDraft
		if err := c.BodyParser(&draft); err != nil {
			return faultutil.NewValidation("invalid payload")
		}
		emp, err := s.Create(c.Context(), draft)
		if err != nil {
			return err
		}
		return c.Status(http.StatusCreated).JSON(emp)
	}
}

func updateEmployee(s *EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var draft domain.EmployeeDraft
		if err := c.BodyParser(&draft); err != nil {
			return faultutil.NewValidation("invalid payload")
		}
		emp, err := s.Update(c.Context(), c.Params("id"), draft)
		if err != nil {
			return err
		}
		return c.JSON(emp)
	}
}

func deleteEmployee(s *EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.Delete(c.Context(), c.Params("id")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
	}
}

func listDepartments(s *DepartmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		departments, err := s.List(c.Context())
		if err != nil {
			return err
		}
		return c.JSON(departments)
	}
}

func getDepartment(s *DepartmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dept, err := s.Get(c.Context(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(dept)
	}
}

func createDepartment(s *DepartmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var draft domain.DepartmentDraft
		if err := c.BodyParser(&draft); err != nil {
			return faultutil.NewValidation("invalid payload")
		}
		dept, err := s.Create(c.Context(), draft)
		if err != nil {
			return err
		}
		return c.Status(http.StatusCreated).JSON(dept)
	}
}

func updateDepartment(s *DepartmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var draft domain.DepartmentDraft
		if err := c.BodyParser(&draft); err != nil {
			return faultutil.NewValidation("invalid payload")
		}
		dept, err := s.Update(c.Context(), c.Params("id"), draft)
		if err != nil {
			return err
		}
		return c.JSON(dept)
	}
}

func deleteDepartment(s *DepartmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.Delete(c.Context(), c.Params("id")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Department deleted successfully"})
	}
}
