package entity

import "github.com/google/uuid"

// Phrase is a motivational quote served on the motivazional subdomain.
// Phrases are replaced wholesale by the admin sync endpoint, so there is
// no per-row lifecycle beyond insert.
type Phrase struct {
	ID       uuid.UUID
	Text     string
	Category string
	Author   string
}

// Known phrase categories. Inbound sync payloads use longer labels that
// are mapped down to these before insertion.
const (
	PhraseCategoryMotivation = "motivazione"
	PhraseCategoryStudy      = "studio"
	PhraseCategorySuccess    = "successo"
)

// MapPhraseCategory maps an upstream category label to a stored category,
// defaulting to motivation for anything unrecognized.
func MapPhraseCategory(upstream string) string {
	switch upstream {
	case "motivazione_personale":
		return PhraseCategoryMotivation
	case "studio_apprendimento":
		return PhraseCategoryStudy
	case "successo_resilienza":
		return PhraseCategorySuccess
	}

	return PhraseCategoryMotivation
}
