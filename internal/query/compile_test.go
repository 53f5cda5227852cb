package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"modella_backend/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCompileModelTagFilter_AbsentFieldsOmitted(t *testing.T) {
	q := CompileModelTagFilter(&models.ModelTagFilter{
		Age:      intPtr(25),
		Gender:   strPtr("Female"),
		Location: strPtr("Paris, France"),
	})

	assert.Equal(t, bson.M{
		"age":      25,
		"gender":   "Female",
		"location": "Paris, France",
	}, q)
}

func TestCompileModelTagFilter_ListBecomesIn(t *testing.T) {
	q := CompileModelTagFilter(&models.ModelTagFilter{
		WorkField: []string{"Commercial Modeling", "Beauty Modeling"},
	})

	assert.Equal(t, bson.M{
		"work_Field": bson.M{"$in": []string{"Commercial Modeling", "Beauty Modeling"}},
	}, q)
}

func TestCompileProjectTagFilter_RangeBecomesGteLte(t *testing.T) {
	q := CompileProjectTagFilter(&models.ProjectTagFilter{
		SearchAttributes: models.SearchAttributes{
			Age:    models.NewIntRange(18, 30),
			Height: models.NewIntRange(160, 180),
		},
	})

	assert.Equal(t, bson.M{
		"age":    bson.M{"$gte": 18, "$lte": 30},
		"height": bson.M{"$gte": 160, "$lte": 180},
	}, q)
}

func TestCompileProjectTagFilter_TwoElementListStaysIn(t *testing.T) {
	// Набор из двух строк - это принадлежность, не диапазон.
	q := CompileProjectTagFilter(&models.ProjectTagFilter{
		SearchAttributes: models.SearchAttributes{
			Gender: []string{"Female", "Non-Binary"},
		},
	})

	assert.Equal(t, bson.M{
		"gender": bson.M{"$in": []string{"Female", "Non-Binary"}},
	}, q)
}

func TestCompileProjectTagFilter_EmptyFilterMatchesAll(t *testing.T) {
	q := CompileProjectTagFilter(&models.ProjectTagFilter{})
	assert.Empty(t, q)
}

func TestCompileBrandModelPreferenceFilter_RatingLevelIncluded(t *testing.T) {
	q, err := CompileBrandModelPreferenceFilter(&models.BrandModelPreferenceFilter{
		SearchAttributes: models.SearchAttributes{Gender: []string{"Male"}},
		RatingLevel:      intPtr(4),
	})
	require.NoError(t, err)

	assert.Equal(t, 4, q["rating_level"])
	assert.Equal(t, bson.M{"$in": []string{"Male"}}, q["gender"])
}

func TestCompileBrandModelPreferenceFilter_InvalidRatingLevel(t *testing.T) {
	for _, level := range []int{0, 6, -1, 100} {
		_, err := CompileBrandModelPreferenceFilter(&models.BrandModelPreferenceFilter{
			RatingLevel: intPtr(level),
		})
		assert.Error(t, err, "rating_level %d must be rejected", level)
	}
}

func TestCompileModelSearch_RatingLevelExcluded(t *testing.T) {
	q, err := CompileModelSearch(&models.BrandModelPreferenceFilter{
		SearchAttributes: models.SearchAttributes{
			Age:      models.NewIntRange(20, 30),
			BodyType: []string{"Petite Models"},
		},
		RatingLevel: intPtr(5),
	})
	require.NoError(t, err)

	assert.NotContains(t, q, "rating_level")
	assert.Equal(t, bson.M{"$gte": 20, "$lte": 30}, q["age"])
	assert.Equal(t, bson.M{"$in": []string{"Petite Models"}}, q["body_Type"])
}

func TestCompileModelSearch_OwnerIDNotCarriedOver(t *testing.T) {
	q, err := CompileModelSearch(&models.BrandModelPreferenceFilter{
		UserID: strPtr("brand3"),
	})
	require.NoError(t, err)
	assert.NotContains(t, q, "user_Id")
}

func TestCompileModelSearch_InvalidRatingLevelFailsAtCompileTime(t *testing.T) {
	_, err := CompileModelSearch(&models.BrandModelPreferenceFilter{
		RatingLevel: intPtr(7),
	})
	assert.Error(t, err)
}

func TestCompileBrandSearch_RatingLevelExcluded(t *testing.T) {
	q, err := CompileBrandSearch(&models.ModelBrandPreferenceFilter{
		RatingLevel: intPtr(3),
		WorkField:   []string{"Catalog Modeling"},
		Location:    []string{"Rome, Italy", "Paris, France"},
	})
	require.NoError(t, err)

	assert.NotContains(t, q, "rating_level")
	assert.Equal(t, bson.M{"$in": []string{"Catalog Modeling"}}, q["work_Field"])
	assert.Equal(t, bson.M{"$in": []string{"Rome, Italy", "Paris, France"}}, q["location"])
}

func TestSetIn_DropsEmptyStringsAndEmptyLists(t *testing.T) {
	q := bson.M{}
	setIn(q, "work_Field", []string{"", "Beauty Modeling", ""})
	setIn(q, "location", []string{"", ""})
	setIn(q, "gender", nil)

	assert.Equal(t, bson.M{
		"work_Field": bson.M{"$in": []string{"Beauty Modeling"}},
	}, q)
}

func TestCompileProjectSearch_ViaConversion(t *testing.T) {
	q := CompileProjectSearch(&models.ModelProjectPreferenceFilter{
		UserID: strPtr("model7"),
		SearchAttributes: models.SearchAttributes{
			Age: models.NewIntRange(18, 25),
		},
		Location: []string{"Dubai, UAE"},
	})

	// user_Id владельца предпочтения не переносится в запрос по проектам.
	assert.NotContains(t, q, "user_Id")
	assert.Equal(t, bson.M{"$gte": 18, "$lte": 25}, q["age"])
	assert.Equal(t, bson.M{"$in": []string{"Dubai, UAE"}}, q["location"])
}
