package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-console/internal/api/dto"
	"github.com/spec-kit/employee-console/internal/command"
	"github.com/spec-kit/employee-console/internal/console"
	"github.com/spec-kit/employee-console/internal/domain"
	"github.com/spec-kit/employee-console/internal/views"
	"github.com/spec-kit/employee-console/pkg/util/faultutil"
)

// EmployeesHandler exposes the employee table, editor session and commands.
type EmployeesHandler struct {
	console *console.Console
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(c *console.Console) *EmployeesHandler {
	return &EmployeesHandler{console: c}
}

// List GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.table()})
}

// Search POST /api/employees/search.
func (h *EmployeesHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return faultutil.NewValidation("invalid payload")
	}
	cmd := command.New(command.TypeEmployeeSearchChanged, command.SearchChangedPayload{Keyword: req.Keyword})
	if err := h.console.Dispatch(c.Context(), cmd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.table()})
}

// Filter POST /api/employees/filter.
func (h *EmployeesHandler) Filter(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return faultutil.NewValidation("invalid payload")
	}
	filter := views.EmployeeFilter{
		Department: req.Department,
		Status:     domain.EmployeeStatus(req.Status),
	}
	cmd := command.New(command.TypeEmployeeFilterChanged, command.FilterChangedPayload{Filter: filter})
	if err := h.console.Dispatch(c.Context(), cmd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.table()})
}

// OpenEditor POST /api/employees/editor. A null id opens a blank editor.
func (h *EmployeesHandler) OpenEditor(c *fiber.Ctx) error {
	var req dto.OpenEditorRequest
	if err := c.BodyParser(&req); err != nil {
		return faultutil.NewValidation("invalid payload")
	}
	payload := command.OpenEditorPayload{New: req.ID == nil}
	if req.ID != nil {
		payload.ID = *req.ID
	}
	cmd := command.New(command.TypeOpenEmployeeEditor, payload)
	if err := h.console.Dispatch(c.Context(), cmd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.editor()})
}

// EditorState GET /api/employees/editor.
func (h *EmployeesHandler) EditorState(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.editor()})
}

// CancelEditor POST /api/employees/editor/cancel.
func (h *EmployeesHandler) CancelEditor(c *fiber.Ctx) error {
	cmd := command.New(command.TypeCancelEmployeeEdit, nil)
	if err := h.console.Dispatch(c.Context(), cmd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.editor()})
}

// Submit POST /api/employees resolves the active edit session with the
// posted draft.
func (h *EmployeesHandler) Submit(c *fiber.Ctx) error {
	var draft domain.EmployeeDraft
	if err := c.BodyParser(&draft); err != nil {
		return faultutil.NewValidation("invalid payload")
	}
	cmd := command.New(command.TypeSubmitEmployee, command.SubmitEmployeePayload{Draft: draft})
	if err := h.console.Dispatch(c.Context(), cmd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.editor()})
}

// Remove DELETE /api/employees/:id?confirm=true. Without confirmation the
// request is a no-op.
func (h *EmployeesHandler) Remove(c *fiber.Ctx) error {
	confirmed := c.Query("confirm") == "true"
	cmd := command.New(command.TypeRemoveEmployee, command.RemoveEmployeePayload{
		ID:        c.Params("id"),
		Confirmed: confirmed,
	})
	if err := h.console.Dispatch(c.Context(), cmd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"confirmed": confirmed}})
}

func (h *EmployeesHandler) table() dto.EmployeeTableResponse {
	return dto.EmployeeTableResponse{
		Mode:  string(h.console.TableMode()),
		Items: h.console.VisibleEmployees(),
	}
}

func (h *EmployeesHandler) editor() dto.EmployeeEditorResponse {
	state, draft := h.console.EmployeeSession()
	return dto.EmployeeEditorResponse{Session: state, Draft: draft}
}
