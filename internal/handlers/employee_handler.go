package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/charhateom/qrakhsa/dto"
	"github.com/charhateom/qrakhsa/internal/auth"
	"github.com/charhateom/qrakhsa/internal/middleware"
	"github.com/charhateom/qrakhsa/internal/qr"
	"github.com/charhateom/qrakhsa/internal/repository"
	"github.com/charhateom/qrakhsa/model"
)

type EmployeeHandler struct {
	store   EmployeeStore
	tokens  TokenIssuer
	baseURL string
	logger  *zap.Logger
}

func NewEmployeeHandler(store EmployeeStore, tokens TokenIssuer, baseURL string, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{store: store, tokens: tokens, baseURL: baseURL, logger: logger}
}

// Register godoc
// @Summary Register an employee and generate their badge QR
// @Tags employees
// @Accept json
// @Produce json
// @Param body body dto.RegisterEmployeeDTO true "Employee profile"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/employees/register [post]
func (h *EmployeeHandler) Register(c *fiber.Ctx) error {
	var body dto.RegisterEmployeeDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := body.Validate(true); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		h.logger.Error("hash password", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	employee := &model.Employee{
		Username:          body.Username,
		Name:              body.Name,
		BloodType:         body.BloodType,
		Department:        body.Department,
		EmergencyContacts: body.EmergencyContacts,
		MedicalConditions: body.MedicalConditions,
		PasswordHash:      hash,
	}
	if err := h.store.Insert(c.Context(), employee); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return fiber.NewError(fiber.StatusBadRequest, "username already taken, please choose a different one")
		}
		h.logger.Error("insert employee", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	// The QR encodes the id the insert just assigned, so this has to be a
	// second write. A failed encode is logged and tolerated: the profile
	// exists, the badge can be regenerated later.
	dataURL, err := qr.DataURL(qr.PublicURL(h.baseURL, employee.ID.Hex()))
	if err != nil {
		h.logger.Warn("qr encode failed", zap.String("employee_id", employee.ID.Hex()), zap.Error(err))
	} else if err := h.store.SetQRCode(c.Context(), employee.ID, dataURL); err != nil {
		h.logger.Warn("qr cache failed", zap.String("employee_id", employee.ID.Hex()), zap.Error(err))
	} else {
		employee.QRCode = dataURL
	}

	return c.Status(fiber.StatusCreated).JSON(dto.EmployeeResponse{
		Message:  "employee registered successfully",
		Employee: employee,
	})
}

// Login godoc
// @Summary Employee login
// @Tags employees
// @Accept json
// @Produce json
// @Param body body dto.LoginDTO true "Credentials"
// @Success 200 {object} dto.EmployeeLoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/employees/login [post]
func (h *EmployeeHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.Username == "" || body.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username and password are required")
	}

	employee, err := h.store.FindByUsername(c.Context(), body.Username)
	if err != nil {
		// Only an absent username is a credentials problem; a store outage
		// is ours, not the caller's.
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}
		h.logger.Error("find employee", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	// Same message whether the username or the password was wrong.
	if !auth.CheckPassword(employee.PasswordHash, body.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := h.tokens.Issue(auth.Principal{
		Kind:     auth.KindEmployee,
		ID:       employee.ID.Hex(),
		Username: employee.Username,
	})
	if err != nil {
		h.logger.Error("sign token", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	return c.JSON(dto.EmployeeLoginResponse{
		Message: "login successful",
		Token:   token,
		UserID:  employee.ID.Hex(),
	})
}

// Edit godoc
// @Summary Full-replace an employee profile
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee id"
// @Param Authorization header string true "Bearer employee token"
// @Param body body dto.RegisterEmployeeDTO true "Complete profile (password optional)"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/employees/edit/{id} [put]
func (h *EmployeeHandler) Edit(c *fiber.Ctx) error {
	id := c.Params("id")
	if p, ok := middleware.PrincipalFrom(c); !ok || p.ID != id {
		return fiber.NewError(fiber.StatusForbidden, "cannot edit another employee's profile")
	}

	var body dto.RegisterEmployeeDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := body.Validate(false); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	employee, err := h.store.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "employee not found")
		}
		h.logger.Error("find employee", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	if body.Username != employee.Username {
		if _, err := h.store.FindByUsername(c.Context(), body.Username); err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "username already taken, please choose a different one")
		} else if !errors.Is(err, repository.ErrNotFound) {
			h.logger.Error("check username", zap.Error(err))
			return fiber.ErrInternalServerError
		}
	}

	// Full-replace semantics: whatever the payload carries is the new truth
	// for contacts and conditions.
	employee.Username = body.Username
	employee.Name = body.Name
	employee.BloodType = body.BloodType
	employee.Department = body.Department
	employee.EmergencyContacts = body.EmergencyContacts
	employee.MedicalConditions = body.MedicalConditions
	if body.Password != "" {
		hash, err := auth.HashPassword(body.Password)
		if err != nil {
			h.logger.Error("hash password", zap.Error(err))
			return fiber.ErrInternalServerError
		}
		employee.PasswordHash = hash
	}

	if err := h.store.Update(c.Context(), employee); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return fiber.NewError(fiber.StatusBadRequest, "username already taken, please choose a different one")
		case errors.Is(err, repository.ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, "employee not found")
		}
		h.logger.Error("update employee", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	return c.JSON(dto.EmployeeResponse{
		Message:  "employee details updated successfully",
		Employee: employee,
	})
}

// PublicProfile godoc
// @Summary Fetch the public profile a scanned badge opens
// @Tags employees
// @Produce json
// @Param id path string true "Employee id"
// @Success 200 {object} model.Employee
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/employees/user-profile/{id} [get]
func (h *EmployeeHandler) PublicProfile(c *fiber.Ctx) error {
	employee, err := h.store.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "employee not found")
		}
		h.logger.Error("find employee", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return c.JSON(employee)
}
