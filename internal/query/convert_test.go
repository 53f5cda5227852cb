package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"modella_backend/internal/models"
)

func TestConvertToProjectTagFilter_DropsAbsentFields(t *testing.T) {
	got := ConvertToProjectTagFilter(&models.ModelProjectPreferenceFilter{
		SearchAttributes: models.SearchAttributes{
			Age:    models.NewIntRange(18, 30),
			Gender: []string{"Female"},
		},
	})

	assert.Equal(t, models.NewIntRange(18, 30), got.Age)
	assert.Equal(t, []string{"Female"}, got.Gender)
	assert.Nil(t, got.Height)
	assert.Nil(t, got.WorkField)
	assert.Nil(t, got.UserID)
	assert.Nil(t, got.ProjectID)
}

func TestConvertToProjectTagFilter_CleansLists(t *testing.T) {
	got := ConvertToProjectTagFilter(&models.ModelProjectPreferenceFilter{
		SearchAttributes: models.SearchAttributes{
			BodyType: []string{"", "Fit Models", ""},
			SkinTone: []string{""},
		},
	})

	assert.Equal(t, []string{"Fit Models"}, got.BodyType)
	assert.Nil(t, got.SkinTone)
}

func TestConvertToProjectTagFilter_LocationSetPreserved(t *testing.T) {
	got := ConvertToProjectTagFilter(&models.ModelProjectPreferenceFilter{
		Location: []string{"Mumbai, India", "Seoul, South Korea"},
	})

	assert.Equal(t, []string{"Mumbai, India", "Seoul, South Korea"}, got.Location)
}

func TestConvertToProjectTagFilter_CopiesRanges(t *testing.T) {
	src := models.NewIntRange(150, 190)
	got := ConvertToProjectTagFilter(&models.ModelProjectPreferenceFilter{
		SearchAttributes: models.SearchAttributes{Height: src},
	})

	// Диапазон копируется, а не разделяется с источником.
	got.Height[0] = 0
	assert.Equal(t, 150, src.Min())
}
