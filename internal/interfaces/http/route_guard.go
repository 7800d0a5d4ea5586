package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estudiolens/fotoestudio-api/internal/application/dto"
	"github.com/estudiolens/fotoestudio-api/internal/domain/entity"
)

// Requirement nivel de acceso declarado por una ruta.
type Requirement string

// Niveles de acceso.
const (
	RequirementNone          Requirement = "none"
	RequirementAuthenticated Requirement = "authenticated"
	RequirementAdminOnly     Requirement = "admin-only"
)

// Decision resultado de evaluar una sesión contra un requisito.
type Decision int

// Decisiones posibles. En la API, RedirectSignIn se materializa como 401 y
// RedirectDashboard como 403.
const (
	DecisionRender Decision = iota
	DecisionRedirectSignIn
	DecisionRedirectDashboard
)

// Session estado de sesión mínimo que necesita el guard.
type Session struct {
	Authenticated bool
	Role          string
}

// Decide es la función de decisión pura del guard de rutas: sin efectos, sin
// red, síncrona. Un requisito desconocido se trata como el más restrictivo.
func Decide(s Session, req Requirement) Decision {
	switch req {
	case RequirementNone:
		return DecisionRender
	case RequirementAuthenticated:
		if !s.Authenticated {
			return DecisionRedirectSignIn
		}
		return DecisionRender
	case RequirementAdminOnly:
		if !s.Authenticated {
			return DecisionRedirectSignIn
		}
		if s.Role != entity.RoleAdmin {
			return DecisionRedirectDashboard
		}
		return DecisionRender
	default:
		return DecisionRedirectSignIn
	}
}

// Guard adapta la decisión pura a un middleware Fiber. Debe usarse DESPUÉS de
// AuthMiddleware (lee los locals que éste deja).
func Guard(req Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := Session{
			Authenticated: GetUserID(c) != "",
			Role:          GetRole(c),
		}
		switch Decide(session, req) {
		case DecisionRender:
			return c.Next()
		case DecisionRedirectDashboard:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "se requiere rol de administrador",
			})
		default:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "se requiere iniciar sesión",
			})
		}
	}
}
