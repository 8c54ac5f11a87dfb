package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/coiffea/salon-api/internal/application/dto"
	"github.com/coiffea/salon-api/internal/domain"
	"github.com/coiffea/salon-api/internal/domain/entity"
	"github.com/coiffea/salon-api/internal/domain/repository"
	"github.com/coiffea/salon-api/pkg/jwt"
)

// JWTConfig configuration de génération des tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TrialConfig réglages d'essai appliqués à l'inscription.
type TrialConfig struct {
	Days                 int
	DefaultCommissionPct decimal.Decimal
}

// AuthUseCase cas d'utilisation d'authentification : inscription d'un salon
// et connexion admin, avec contrôle essai/abonnement.
type AuthUseCase struct {
	salonRepo repository.SalonRepository
	jwtCfg    JWTConfig
	trialCfg  TrialConfig
	now       func() time.Time
}

// NewAuthUseCase construit le cas d'utilisation d'auth.
func NewAuthUseCase(salonRepo repository.SalonRepository, jwtCfg JWTConfig, trialCfg TrialConfig) *AuthUseCase {
	return &AuthUseCase{salonRepo: salonRepo, jwtCfg: jwtCfg, trialCfg: trialCfg, now: time.Now}
}

// Register crée un salon : hash bcrypt du mot de passe, période d'essai
// démarrée immédiatement. ErrEmailAlreadyExists si l'email est déjà pris.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.SalonResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.salonRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	salon := &entity.Salon{
		ID:                   uuid.New().String(),
		Name:                 in.Name,
		Email:                in.Email,
		PasswordHash:         string(hash),
		DefaultCommissionPct: uc.trialCfg.DefaultCommissionPct,
		TrialEndsAt:          now.AddDate(0, 0, uc.trialCfg.Days),
		SubscriptionStatus:   entity.SubscriptionNone,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.salonRepo.Create(salon); err != nil {
		return nil, err
	}
	return toSalonResponse(salon), nil
}

// Login vérifie email/mot de passe, contrôle l'accès essai/abonnement puis
// génère le JWT. ErrTrialExpired si l'essai est terminé sans abonnement
// actif (le front redirige alors vers la page de paiement).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	salon, err := uc.salonRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if salon == nil {
		return nil, domain.ErrSalonNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(salon.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !salon.AccessAllowed(uc.now()) {
		return nil, domain.ErrTrialExpired
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, salon.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Salon: *toSalonResponse(salon),
	}, nil
}

// CheckAccess recharge le salon et revalide la fenêtre essai/abonnement
// (appelé par le middleware sur les routes protégées : un token encore
// valide ne doit pas survivre à la fin de l'essai).
func (uc *AuthUseCase) CheckAccess(salonID string) error {
	salon, err := uc.salonRepo.GetByID(salonID)
	if err != nil {
		return err
	}
	if salon == nil {
		return domain.ErrSalonNotFound
	}
	if !salon.AccessAllowed(uc.now()) {
		return domain.ErrTrialExpired
	}
	return nil
}

func toSalonResponse(s *entity.Salon) *dto.SalonResponse {
	if s == nil {
		return nil
	}
	return &dto.SalonResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Email:              s.Email,
		TrialEndsAt:        s.TrialEndsAt,
		SubscriptionStatus: s.SubscriptionStatus,
	}
}
