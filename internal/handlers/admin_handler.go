package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/charhateom/qrakhsa/dto"
	"github.com/charhateom/qrakhsa/internal/auth"
	"github.com/charhateom/qrakhsa/internal/repository"
	"github.com/charhateom/qrakhsa/model"
)

type AdminHandler struct {
	admins    AdminStore
	employees EmployeeStore
	alerts    AlertStore
	tokens    TokenIssuer
	logger    *zap.Logger
}

func NewAdminHandler(admins AdminStore, employees EmployeeStore, alerts AlertStore, tokens TokenIssuer, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{admins: admins, employees: employees, alerts: alerts, tokens: tokens, logger: logger}
}

// Signup godoc
// @Summary Create an admin account
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.LoginDTO true "Credentials"
// @Success 201 {object} dto.AdminLoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/signup [post]
func (h *AdminHandler) Signup(c *fiber.Ctx) error {
	var body dto.LoginDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.Username == "" || body.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username and password are required")
	}

	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		h.logger.Error("hash password", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	admin := &model.Admin{Username: body.Username, PasswordHash: hash}
	if err := h.admins.Insert(c.Context(), admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return fiber.NewError(fiber.StatusBadRequest, "admin already exists")
		}
		h.logger.Error("insert admin", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	// Signup issues a token straight away so the dashboard opens without a
	// second login round trip.
	token, err := h.tokens.Issue(auth.Principal{Kind: auth.KindAdmin, ID: admin.ID.Hex(), Username: admin.Username})
	if err != nil {
		h.logger.Error("sign token", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AdminLoginResponse{
		Message: "admin registered successfully",
		Token:   token,
	})
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.LoginDTO true "Credentials"
// @Success 200 {object} dto.AdminLoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.Username == "" || body.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username and password are required")
	}

	admin, err := h.admins.FindByUsername(c.Context(), body.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}
		h.logger.Error("find admin", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	if !auth.CheckPassword(admin.PasswordHash, body.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := h.tokens.Issue(auth.Principal{Kind: auth.KindAdmin, ID: admin.ID.Hex(), Username: admin.Username})
	if err != nil {
		h.logger.Error("sign token", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	return c.JSON(dto.AdminLoginResponse{Message: "login successful", Token: token})
}

// ListEmployees godoc
// @Summary List the employee directory
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer admin token"
// @Success 200 {array} model.Employee
// @Router /api/admin/employees [get]
func (h *AdminHandler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.employees.List(c.Context())
	if err != nil {
		h.logger.Error("list employees", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	if employees == nil {
		employees = []model.Employee{}
	}
	return c.JSON(employees)
}

// GetEmployee godoc
// @Summary Fetch one employee for the admin detail card
// @Tags admin
// @Produce json
// @Param id path string true "Employee id"
// @Param Authorization header string true "Bearer admin token"
// @Success 200 {object} model.Employee
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/employee/{id} [get]
func (h *AdminHandler) GetEmployee(c *fiber.Ctx) error {
	employee, err := h.employees.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "employee not found")
		}
		h.logger.Error("find employee", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return c.JSON(employee)
}

// DeleteEmployee godoc
// @Summary Delete an employee
// @Tags admin
// @Produce json
// @Param id path string true "Employee id"
// @Param Authorization header string true "Bearer admin token"
// @Success 200 {object} dto.MessageResponse
// @Router /api/admin/del/employee/{id} [delete]
func (h *AdminHandler) DeleteEmployee(c *fiber.Ctx) error {
	// Deleting an already-absent employee succeeds; the goal state holds
	// either way. Their alerts are not cascaded.
	if err := h.employees.Delete(c.Context(), c.Params("id")); err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.logger.Error("delete employee", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return c.JSON(dto.MessageResponse{Message: "employee deleted successfully"})
}

// ListAlerts godoc
// @Summary List active SOS alerts, newest first
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer admin token"
// @Success 200 {array} dto.AlertResponse
// @Router /api/admin/sos-alerts [get]
func (h *AdminHandler) ListAlerts(c *fiber.Ctx) error {
	alerts, err := h.alerts.List(c.Context())
	if err != nil {
		h.logger.Error("list alerts", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return c.JSON(dto.AlertsFromModels(alerts))
}

// ResolveAlert godoc
// @Summary Resolve (delete) an SOS alert
// @Tags admin
// @Produce json
// @Param id path string true "Alert id"
// @Param Authorization header string true "Bearer admin token"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/resolve-sos/{id} [delete]
func (h *AdminHandler) ResolveAlert(c *fiber.Ctx) error {
	if err := h.alerts.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "sos alert not found")
		}
		h.logger.Error("resolve alert", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return c.JSON(dto.MessageResponse{Message: "sos alert resolved and removed"})
}
