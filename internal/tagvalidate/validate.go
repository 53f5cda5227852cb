package tagvalidate

import (
	"fmt"

	"modella_backend/internal/keywords"
	"modella_backend/internal/models"
	"modella_backend/pkg/apperrors"
)

/*
Доменная валидация тегов и предпочтений перед записью:
  - категориальные значения сверяются со словарями keywords;
  - числовые поля и диапазоны проверяются по физическим границам;
  - поля чужой роли зачищаются (clean, не ошибка).

Валидация всегда гоняется по СЛИТОЙ записи: при частичном обновлении
сервис сперва накладывает патч на существующий документ.
*/

// Физические границы числовых атрибутов.
const (
	AgeMin       = 8
	AgeMax       = 100
	HeightMin    = 116
	HeightMax    = 191
	ShoeSizeMin  = 31
	ShoeSizeMax  = 50
	BustChestMin = 61
	BustChestMax = 117
	WaistMin     = 51
	WaistMax     = 91
	HipsMin      = 61
	HipsMax      = 107
)

func validateCategoricalScalar(field string, value *string, domain string) error {
	if value == nil || *value == "" {
		return nil
	}
	if !keywords.Contains(domain, *value) {
		return apperrors.NewInvalidValueError(field, keywords.Get(domain))
	}
	return nil
}

func validateCategoricalSet(field string, values []string, domain string) error {
	for _, v := range values {
		if v == "" {
			continue
		}
		if !keywords.Contains(domain, v) {
			return apperrors.NewInvalidValueError(field, keywords.Get(domain))
		}
	}
	return nil
}

func validateNumericScalar(field string, value *int, min, max int) error {
	if value == nil {
		return nil
	}
	if *value < min || *value > max {
		return apperrors.NewOutOfRangeError(field,
			fmt.Sprintf("%s must be between %d and %d", field, min, max))
	}
	return nil
}

func validateNumericRange(field string, r *models.IntRange, min, max int) error {
	if r == nil {
		return nil
	}
	if r.Min() < min || r.Min() > max || r.Max() < min || r.Max() > max || !r.Valid() {
		return apperrors.NewOutOfRangeError(field,
			fmt.Sprintf("Invalid range for %s. Must be between %d and %d, with min <= max", field, min, max))
	}
	return nil
}

// validateSearchAttributes проверяет общую диапазонно-наборную часть.
func validateSearchAttributes(a *models.SearchAttributes) error {
	checks := []error{
		validateNumericRange("age", a.Age, AgeMin, AgeMax),
		validateNumericRange("height", a.Height, HeightMin, HeightMax),
		validateNumericRange("shoe_Size", a.ShoeSize, ShoeSizeMin, ShoeSizeMax),
		validateNumericRange("bust_chest", a.BustChest, BustChestMin, BustChestMax),
		validateNumericRange("waist", a.Waist, WaistMin, WaistMax),
		validateNumericRange("hips", a.Hips, HipsMin, HipsMax),
		validateCategoricalSet("natural_eye_color", a.NaturalEyeColor, keywords.EyeColors),
		validateCategoricalSet("body_Type", a.BodyType, keywords.BodyTypes),
		validateCategoricalSet("work_Field", a.WorkField, keywords.WorkFields),
		validateCategoricalSet("skin_Tone", a.SkinTone, keywords.SkinTones),
		validateCategoricalSet("ethnicity", a.Ethnicity, keywords.Ethnicities),
		validateCategoricalSet("natural_hair_type", a.NaturalHairType, keywords.HairTypes),
		validateCategoricalSet("experience_Level", a.ExperienceLevel, keywords.ExperienceLevels),
		validateCategoricalSet("gender", a.Gender, keywords.Genders),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// ValidateModelTag проверяет скалярный профиль модели.
func ValidateModelTag(t *models.ModelTag) error {
	checks := []error{
		validateNumericScalar("age", t.Age, AgeMin, AgeMax),
		validateNumericScalar("height", t.Height, HeightMin, HeightMax),
		validateNumericScalar("shoe_Size", t.ShoeSize, ShoeSizeMin, ShoeSizeMax),
		validateNumericScalar("bust_chest", t.BustChest, BustChestMin, BustChestMax),
		validateNumericScalar("waist", t.Waist, WaistMin, WaistMax),
		validateNumericScalar("hips", t.Hips, HipsMin, HipsMax),
		validateCategoricalScalar("natural_eye_color", t.NaturalEyeColor, keywords.EyeColors),
		validateCategoricalScalar("body_Type", t.BodyType, keywords.BodyTypes),
		validateCategoricalSet("work_Field", t.WorkField, keywords.WorkFields),
		validateCategoricalScalar("skin_Tone", t.SkinTone, keywords.SkinTones),
		validateCategoricalScalar("ethnicity", t.Ethnicity, keywords.Ethnicities),
		validateCategoricalScalar("natural_hair_type", t.NaturalHairType, keywords.HairTypes),
		validateCategoricalScalar("experience_Level", t.ExperienceLevel, keywords.ExperienceLevels),
		validateCategoricalScalar("gender", t.Gender, keywords.Genders),
		validateCategoricalScalar("location", t.Location, keywords.Locations),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// ValidateBrandTag проверяет профиль бренда.
func ValidateBrandTag(t *models.BrandTag) error {
	if err := validateCategoricalSet("work_Field", t.WorkField, keywords.WorkFields); err != nil {
		return err
	}
	return validateCategoricalScalar("location", t.Location, keywords.Locations)
}

// ValidateProjectTag проверяет требования проекта.
func ValidateProjectTag(t *models.ProjectTag) error {
	if err := validateSearchAttributes(&t.SearchAttributes); err != nil {
		return err
	}
	return validateCategoricalScalar("location", t.Location, keywords.Locations)
}

// ValidateModelProjectPreference проверяет предпочтение модели по проектам.
func ValidateModelProjectPreference(p *models.ModelProjectPreference) error {
	if err := validateSearchAttributes(&p.SearchAttributes); err != nil {
		return err
	}
	return validateCategoricalSet("location", p.Location, keywords.Locations)
}

// ValidateBrandModelPreference проверяет предпочтение бренда по моделям.
func ValidateBrandModelPreference(p *models.BrandModelPreference) error {
	if err := validateSearchAttributes(&p.SearchAttributes); err != nil {
		return err
	}
	if err := validateCategoricalSet("location", p.Location, keywords.Locations); err != nil {
		return err
	}
	return validateRatingLevel(p.RatingLevel)
}

// ValidateModelBrandPreference проверяет предпочтение модели по брендам.
func ValidateModelBrandPreference(p *models.ModelBrandPreference) error {
	if err := validateCategoricalSet("work_Field", p.WorkField, keywords.WorkFields); err != nil {
		return err
	}
	if err := validateCategoricalSet("location", p.Location, keywords.Locations); err != nil {
		return err
	}
	return validateRatingLevel(p.RatingLevel)
}

func validateRatingLevel(v *int) error {
	if v == nil {
		return nil
	}
	if *v < 1 || *v > 5 {
		return apperrors.ErrInvalidRatingLevel
	}
	return nil
}
