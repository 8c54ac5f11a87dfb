package report

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/coiffea/salon-api/internal/domain/calendar"
	"github.com/coiffea/salon-api/internal/domain/entity"
)

// UnknownClientName libellé affiché quand le client d'une dépense de points
// n'existe plus (anomalie d'intégrité tolérée, le rapport continue).
const UnknownClientName = "Client inconnu"

// PointsEntry dépense de points enrichie de l'identité client, prête pour
// l'affichage et l'export (prénom/nom séparés pour le CSV).
type PointsEntry struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"clientId"`
	ClientName      string    `json:"clientName"`
	ClientFirstName string    `json:"clientFirstName"`
	ClientLastName  string    `json:"clientLastName"`
	Points          int64     `json:"points"`
	Reason          string    `json:"reason,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// PointsGroup dépenses de points d'un coiffeur sur une fenêtre donnée.
type PointsGroup struct {
	StylistID   string        `json:"stylistId"`
	StylistName string        `json:"stylistName"`
	TotalPoints int64         `json:"totalPoints"`
	Entries     []PointsEntry `json:"entries"`
}

// PointsUsage regroupe les dépenses de points par coiffeur, pour le jour de
// dayRef et le mois de monthRef.
//
// Les dépenses dont le coiffeur n'existe plus sont ignorées (pas de
// placeholder fabriqué) ; un client manquant est remplacé par
// UnknownClientName. Dans chaque groupe les entrées vont de la plus récente
// à la plus ancienne ; les groupes sont ordonnés par nom de coiffeur selon
// la collation française, sans tenir compte de la casse.
func PointsUsage(
	redemptions []entity.PointsRedemption,
	stylists []entity.Stylist,
	clients []entity.Client,
	dayRef, monthRef time.Time,
) (daily, monthly []PointsGroup) {
	stylistNames := make(map[string]string, len(stylists))
	for _, s := range stylists {
		stylistNames[s.ID] = s.Name
	}
	clientsByID := make(map[string]*entity.Client, len(clients))
	for i := range clients {
		clientsByID[clients[i].ID] = &clients[i]
	}

	dailyGroups := map[string]*PointsGroup{}
	monthlyGroups := map[string]*PointsGroup{}

	for _, r := range redemptions {
		name, ok := stylistNames[r.StylistID]
		if !ok {
			continue
		}
		entry := enrich(r, clientsByID)
		if calendar.SameDay(r.Timestamp, dayRef) {
			appendEntry(dailyGroups, r.StylistID, name, entry)
		}
		if calendar.SameMonth(r.Timestamp, monthRef) {
			appendEntry(monthlyGroups, r.StylistID, name, entry)
		}
	}

	return finalize(dailyGroups), finalize(monthlyGroups)
}

func enrich(r entity.PointsRedemption, clients map[string]*entity.Client) PointsEntry {
	entry := PointsEntry{
		ID:        r.ID,
		ClientID:  r.ClientID,
		Points:    r.Points,
		Reason:    r.Reason,
		Timestamp: r.Timestamp,
	}
	c, ok := clients[r.ClientID]
	if !ok || c.Name == "" {
		entry.ClientName = UnknownClientName
		entry.ClientFirstName = UnknownClientName
		return entry
	}
	entry.ClientName = c.Name
	entry.ClientFirstName, entry.ClientLastName = SplitName(c.Name)
	return entry
}

// SplitName découpe un nom affiché en prénom / nom pour les exports :
// premier mot = prénom, le reste = nom de famille.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func appendEntry(groups map[string]*PointsGroup, stylistID, stylistName string, e PointsEntry) {
	g, ok := groups[stylistID]
	if !ok {
		g = &PointsGroup{StylistID: stylistID, StylistName: stylistName}
		groups[stylistID] = g
	}
	g.TotalPoints += e.Points
	g.Entries = append(g.Entries, e)
}

// finalize trie les entrées de chaque groupe du plus récent au plus ancien
// puis ordonne les groupes par nom de coiffeur (collation française).
func finalize(groups map[string]*PointsGroup) []PointsGroup {
	out := make([]PointsGroup, 0, len(groups))
	for _, g := range groups {
		sort.SliceStable(g.Entries, func(i, j int) bool {
			return g.Entries[i].Timestamp.After(g.Entries[j].Timestamp)
		})
		out = append(out, *g)
	}
	coll := collate.New(language.French, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return coll.CompareString(out[i].StylistName, out[j].StylistName) < 0
	})
	return out
}
