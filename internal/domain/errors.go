package domain

import "errors"

// Erreurs du domaine (sans dépendances externes).
var (
	ErrNotFound           = errors.New("ressource introuvable")
	ErrSalonNotFound      = errors.New("salon introuvable")
	ErrStylistNotFound    = errors.New("coiffeur introuvable")
	ErrClientNotFound     = errors.New("client introuvable")
	ErrEmailAlreadyExists = errors.New("cet email est déjà enregistré")
	ErrInvalidInput       = errors.New("entrée invalide")
	ErrDuplicate          = errors.New("ressource dupliquée")
	ErrUnauthorized       = errors.New("non autorisé")
	ErrForbidden          = errors.New("accès refusé")
	ErrTrialExpired       = errors.New("période d'essai expirée, abonnement requis")
	ErrInsufficientPoints = errors.New("solde de points insuffisant")
)
