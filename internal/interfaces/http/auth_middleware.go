package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/dto"
	"github.com/rafaelfarias/almoxarifado-api/pkg/jwt"
)

// Chave de Locals para os claims do usuário autenticado.
const localClaims = "user_claims"

// AuthMiddleware valida o Bearer Token JWT e guarda os claims em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(localClaims, claims)
		return c.Next()
	}
}

// RequireRole devolve um middleware que autoriza apenas os papéis listados.
// Deve ser usado DEPOIS de AuthMiddleware.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sem papel de usuário"})
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "papel sem acesso a esta rota"})
	}
}

// GetClaims devolve os claims do contexto (depois do middleware de auth).
func GetClaims(c *fiber.Ctx) jwt.UserClaims {
	v := c.Locals(localClaims)
	if v == nil {
		return jwt.UserClaims{}
	}
	claims, _ := v.(jwt.UserClaims)
	return claims
}

// GetUserID devolve o UserID do contexto.
func GetUserID(c *fiber.Ctx) string {
	return GetClaims(c).UserID
}

// GetRole devolve o papel do usuário do contexto.
func GetRole(c *fiber.Ctx) string {
	return GetClaims(c).Role
}
