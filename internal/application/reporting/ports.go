package reporting

import "github.com/coiffea/salon-api/internal/domain/entity"

// SettingsProvider fournit les réglages de rapport d'un salon (commission
// par défaut, périodes masquées). L'implémentation de production est un
// cache TTL devant SalonRepository.GetSettings : la façade tolère une
// valeur momentanément périmée, et le contrat impose l'invalidation à
// chaque écriture de réglage (pas d'état global ambiant).
type SettingsProvider interface {
	Get(salonID string) (*entity.SalonSettings, error)
	Invalidate(salonID string)
}
