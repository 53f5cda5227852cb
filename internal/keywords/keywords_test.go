package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_KnownCategory(t *testing.T) {
	values := Get(EyeColors)
	assert.NotEmpty(t, values)
	assert.Contains(t, values, "Hazel")
	assert.Contains(t, values, "Heterochromia")
}

func TestGet_CategoryNameCaseInsensitive(t *testing.T) {
	assert.Equal(t, Get(EyeColors), Get("Eye_Colors"))
	assert.Equal(t, Get(Locations), Get("LOCATIONS"))
	assert.True(t, Contains("Eye_Colors", "Brown"))
}

func TestGet_UnknownCategoryReturnsEmpty(t *testing.T) {
	values := Get("zodiac_signs")
	assert.NotNil(t, values)
	assert.Empty(t, values)
}

func TestGet_ReturnsCopy(t *testing.T) {
	values := Get(Genders)
	values[0] = "mutated"
	assert.Equal(t, "Female", Get(Genders)[0])
}

func TestContains_CaseInsensitive(t *testing.T) {
	assert.True(t, Contains(EyeColors, "brown"))
	assert.True(t, Contains(EyeColors, "BROWN"))
	assert.True(t, Contains(Locations, "paris, france"))
	assert.False(t, Contains(EyeColors, "chartreuse"))
	assert.False(t, Contains("zodiac_signs", "Leo"))
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 9)
	assert.Contains(t, cats, BodyTypes)
	assert.Contains(t, cats, ExperienceLevels)
}
