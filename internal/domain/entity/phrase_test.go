package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapPhraseCategory(t *testing.T) {
	assert.Equal(t, PhraseCategoryMotivation, MapPhraseCategory("motivazione_personale"))
	assert.Equal(t, PhraseCategoryStudy, MapPhraseCategory("studio_apprendimento"))
	assert.Equal(t, PhraseCategorySuccess, MapPhraseCategory("successo_resilienza"))

	// Anything unrecognized falls back to motivation.
	assert.Equal(t, PhraseCategoryMotivation, MapPhraseCategory(""))
	assert.Equal(t, PhraseCategoryMotivation, MapPhraseCategory("filosofia"))
}
