package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/domain"
	"github.com/coiffea/salon-api/pkg/jwt"
)

// LocalSalonID clé Locals du salon authentifié.
const LocalSalonID = "salon_id"

// AccessChecker revalide l'accès essai/abonnement du salon à chaque requête
// (le token reste valide après expiration de l'essai, pas l'accès).
type AccessChecker interface {
	CheckAccess(salonID string) error
}

// AuthMiddleware valide le Bearer JWT, charge le salon dans c.Locals et
// applique la barrière essai/abonnement (402 si l'essai est expiré).
func AuthMiddleware(jwtSecret string, access AccessChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "en-tête Authorization requis"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format attendu : Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vide"})
		}
		salonID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token invalide ou expiré"})
		}
		if err := access.CheckAccess(salonID); err != nil {
			if errors.Is(err, domain.ErrTrialExpired) {
				return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{Code: "TRIAL_EXPIRED", Message: "période d'essai expirée, abonnement requis"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "accès refusé"})
		}
		c.Locals(LocalSalonID, salonID)
		return c.Next()
	}
}

// GetSalonID renvoie le salon du contexte (après AuthMiddleware).
func GetSalonID(c *fiber.Ctx) string {
	v := c.Locals(LocalSalonID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
