package tagvalidate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"modella_backend/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidateModelTag_Valid(t *testing.T) {
	tag := &models.ModelTag{
		ClientType:      models.ClientTypeModel,
		UserID:          "model1",
		Age:             intPtr(25),
		Height:          intPtr(170),
		NaturalEyeColor: strPtr("Hazel"),
		WorkField:       []string{"Beauty Modeling", "Editorial Modeling"},
		Gender:          strPtr("Female"),
		Location:        strPtr("Paris, France"),
		ShoeSize:        intPtr(38),
	}
	assert.NoError(t, ValidateModelTag(tag))
}

func TestValidateModelTag_EmptyIsValid(t *testing.T) {
	assert.NoError(t, ValidateModelTag(&models.ModelTag{UserID: "model1"}))
}

func TestValidateModelTag_BadCategorical(t *testing.T) {
	tag := &models.ModelTag{
		UserID:          "model1",
		NaturalEyeColor: strPtr("Chartreuse"),
	}
	assert.Error(t, ValidateModelTag(tag))
}

func TestValidateModelTag_BadSetMember(t *testing.T) {
	tag := &models.ModelTag{
		UserID:    "model1",
		WorkField: []string{"Beauty Modeling", "Underwater Basket Weaving"},
	}
	assert.Error(t, ValidateModelTag(tag))
}

func TestValidateModelTag_NumericBounds(t *testing.T) {
	cases := []struct {
		name string
		tag  models.ModelTag
		ok   bool
	}{
		{"age at lower bound", models.ModelTag{Age: intPtr(8)}, true},
		{"age at upper bound", models.ModelTag{Age: intPtr(100)}, true},
		{"age below bound", models.ModelTag{Age: intPtr(7)}, false},
		{"age above bound", models.ModelTag{Age: intPtr(101)}, false},
		{"height below bound", models.ModelTag{Height: intPtr(115)}, false},
		{"shoe size above bound", models.ModelTag{ShoeSize: intPtr(51)}, false},
		{"waist in range", models.ModelTag{Waist: intPtr(70)}, true},
		{"hips below bound", models.ModelTag{Hips: intPtr(60)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateModelTag(&tc.tag)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateProjectTag_Ranges(t *testing.T) {
	valid := &models.ProjectTag{
		UserID:    "brand1",
		ProjectID: "project_1",
		SearchAttributes: models.SearchAttributes{
			Age:    models.NewIntRange(18, 30),
			Height: models.NewIntRange(160, 185),
		},
	}
	assert.NoError(t, ValidateProjectTag(valid))

	inverted := &models.ProjectTag{
		UserID: "brand1",
		SearchAttributes: models.SearchAttributes{
			Age: models.NewIntRange(30, 18),
		},
	}
	assert.Error(t, ValidateProjectTag(inverted), "min above max must be rejected")

	outOfBounds := &models.ProjectTag{
		UserID: "brand1",
		SearchAttributes: models.SearchAttributes{
			Height: models.NewIntRange(100, 180),
		},
	}
	assert.Error(t, ValidateProjectTag(outOfBounds))
}

func TestValidateBrandTag(t *testing.T) {
	assert.NoError(t, ValidateBrandTag(&models.BrandTag{
		UserID:    "brand2",
		WorkField: []string{"Catalog Modeling"},
		Location:  strPtr("Rome, Italy"),
	}))

	assert.Error(t, ValidateBrandTag(&models.BrandTag{
		UserID:   "brand2",
		Location: strPtr("Atlantis"),
	}))
}

func TestValidateBrandModelPreference_RatingLevel(t *testing.T) {
	ok := &models.BrandModelPreference{UserID: "brand1", RatingLevel: intPtr(5)}
	assert.NoError(t, ValidateBrandModelPreference(ok))

	bad := &models.BrandModelPreference{UserID: "brand1", RatingLevel: intPtr(0)}
	assert.Error(t, ValidateBrandModelPreference(bad))
}

func TestValidateModelBrandPreference(t *testing.T) {
	ok := &models.ModelBrandPreference{
		UserID:    "model1",
		WorkField: []string{"Virtual Modeling"},
		Location:  []string{"Dubai, UAE", "Shanghai, China"},
	}
	assert.NoError(t, ValidateModelBrandPreference(ok))

	bad := &models.ModelBrandPreference{
		UserID:   "model1",
		Location: []string{"Nowhere"},
	}
	assert.Error(t, ValidateModelBrandPreference(bad))
}

func TestValidateOwnerRole(t *testing.T) {
	assert.NoError(t, ValidateOwnerRole("model12", models.RoleModel))
	assert.NoError(t, ValidateOwnerRole("brand3", models.RoleBrand))
	assert.Error(t, ValidateOwnerRole("brand3", models.RoleModel))
	assert.Error(t, ValidateOwnerRole("model12", models.RoleBrand))
	assert.Error(t, ValidateOwnerRole("user99", models.RoleModel))
	assert.Error(t, ValidateOwnerRole("modelx", models.RoleModel))
}

func TestRolePrefixFor(t *testing.T) {
	assert.Equal(t, models.RoleModel, RolePrefixFor(models.VariantModel))
	assert.Equal(t, models.RoleBrand, RolePrefixFor(models.VariantBrand))
	assert.Equal(t, models.RoleBrand, RolePrefixFor(models.VariantProject))
}
