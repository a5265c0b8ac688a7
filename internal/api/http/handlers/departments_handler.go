package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-console/internal/api/dto"
	"github.com/spec-kit/employee-console/internal/command"
	"github.com/spec-kit/employee-console/internal/console"
	"github.com/spec-kit/employee-console/internal/domain"
	"github.com/spec-kit/employee-console/pkg/util/faultutil"
)

// DepartmentsHandler exposes the department listing, editor session and
// commands.
type DepartmentsHandler struct {
	console *console.Console
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(c *console.Console) *DepartmentsHandler {
	return &DepartmentsHandler{console: c}
}

// List GET /api/departments.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.console.Departments()})
}

// OpenEditor POST /api/departments/editor.
func (h *DepartmentsHandler) OpenEditor(c *fiber.Ctx) error {
	var req dto.OpenEditorRequest
	if err := c.BodyParser(&req); err != nil {
		return faultutil.NewValidation("invalid payload")
	}
	payload := command.OpenEditorPayload{New: req.ID == nil}
	if req.ID != nil {
		payload.ID = *req.ID
	}
	cmd := command.New(command.TypeOpenDepartmentEditor, payload)
	if err := h.console.Dispatch(c.Context(), cmd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.editor()})
}

// EditorState GET /api/departments/editor.
func (h *DepartmentsHandler) EditorState(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.editor()})
}

// CancelEditor POST /api/departments/editor/cancel.
func (h *DepartmentsHandler) CancelEditor(c *fiber.Ctx) error {
	cmd := command.New(command.TypeCancelDepartmentEdit, nil)
	if err := h.console.Dispatch(c.Context(), cmd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.editor()})
}

// Submit POST /api/departments.
func (h *DepartmentsHandler) Submit(c *fiber.Ctx) error {
	var draft domain.DepartmentDraft
	if err := c.BodyParser(&draft); err != nil {
		return faultutil.NewValidation("invalid payload")
	}
	cmd := command.New(command.TypeSubmitDepartment, command.SubmitDepartmentPayload{Draft: draft})
	if err := h.console.Dispatch(c.Context(), cmd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.editor()})
}

// Remove DELETE /api/departments/:id?confirm=true.
func (h *DepartmentsHandler) Remove(c *fiber.Ctx) error {
	confirmed := c.Query("confirm") == "true"
	cmd := command.New(command.TypeRemoveDepartment, command.RemoveDepartmentPayload{
		ID:        c.Params("id"),
		Confirmed: confirmed,
	})
	if err := h.console.Dispatch(c.Context(), cmd); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"confirmed": confirmed}})
}

func (h *DepartmentsHandler) editor() dto.DepartmentEditorResponse {
	state, draft := h.console.DepartmentSession()
	return dto.DepartmentEditorResponse{Session: state, Draft: draft}
}
