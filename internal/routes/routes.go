package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/charhateom/qrakhsa/dto"
	"github.com/charhateom/qrakhsa/internal/auth"
	"github.com/charhateom/qrakhsa/internal/handlers"
	"github.com/charhateom/qrakhsa/internal/middleware"
)

type Deps struct {
	Employee *handlers.EmployeeHandler
	Admin    *handlers.AdminHandler
	SOS      *handlers.SOSHandler
	Tokens   interface {
		Verify(token string) (auth.Principal, error)
	}
}

// Register wires the full REST surface. Public routes first, then the two
// guarded groups; admin and employee tokens never open each other's routes.
func Register(app *fiber.App, d Deps) {
	api := app.Group("/api")

	employees := api.Group("/employees")
	employees.Post("/register", d.Employee.Register)
	employees.Post("/login", d.Employee.Login)
	employees.Get("/user-profile/:id", d.Employee.PublicProfile)
	employees.Put("/edit/:id", middleware.RequireEmployee(d.Tokens), d.Employee.Edit)

	// The SOS trigger stays public: badges are scanned by bystanders.
	api.Post("/sos/:id/sos", d.SOS.Raise)

	admin := api.Group("/admin")
	admin.Post("/signup", d.Admin.Signup)
	admin.Post("/login", d.Admin.Login)

	// Everything below the Use is admin-token only.
	admin.Use(middleware.RequireAdmin(d.Tokens))
	admin.Get("/employees", d.Admin.ListEmployees)
	admin.Get("/employee/:id", d.Admin.GetEmployee)
	admin.Delete("/del/employee/:id", d.Admin.DeleteEmployee)
	admin.Get("/sos-alerts", d.Admin.ListAlerts)
	admin.Delete("/resolve-sos/:id", d.Admin.ResolveAlert)
}

// ErrorHandler renders every handler error as the {"error": msg} envelope.
// Non-fiber errors reach clients as an opaque 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
		if code == fiber.StatusInternalServerError {
			msg = "internal server error"
		}
	}
	return c.Status(code).JSON(dto.ErrorResponse{Error: msg})
}
