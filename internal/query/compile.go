package query

import (
	"go.mongodb.org/mongo-driver/bson"

	"modella_backend/internal/models"
	"modella_backend/pkg/apperrors"
)

/*
Компиляция фильтров в Mongo-запросы. Для каждого варианта фильтра -
своя явная функция: набор полей у вариантов разный, и состав запроса
должен быть виден в коде, а не собираться рефлексией. Общая
диапазонно-наборная часть компилируется одним алгоритмом.

Два режима:
  - одноролевые фильтры (Compile*Filter): rating_level валидируется
    и попадает в запрос как равенство;
  - кросс-ролевой поиск (Compile*Search): rating_level в запрос НЕ
    попадает - это не атрибут тега, он применяется пост-фильтром
    по агрегату оценок.
*/

// validateRatingLevel проверяет диапазон 1..5 (nil допустим).
func validateRatingLevel(v *int) error {
	if v == nil {
		return nil
	}
	if *v < 1 || *v > 5 {
		return apperrors.ErrInvalidRatingLevel
	}
	return nil
}

// setSearchAttributes компилирует общую диапазонно-наборную часть.
func setSearchAttributes(q bson.M, a *models.SearchAttributes) {
	setRange(q, "age", a.Age)
	setRange(q, "height", a.Height)
	setIn(q, "natural_eye_color", a.NaturalEyeColor)
	setIn(q, "body_Type", a.BodyType)
	setIn(q, "work_Field", a.WorkField)
	setIn(q, "skin_Tone", a.SkinTone)
	setIn(q, "ethnicity", a.Ethnicity)
	setIn(q, "natural_hair_type", a.NaturalHairType)
	setIn(q, "experience_Level", a.ExperienceLevel)
	setIn(q, "gender", a.Gender)
	setRange(q, "shoe_Size", a.ShoeSize)
	setRange(q, "bust_chest", a.BustChest)
	setRange(q, "waist", a.Waist)
	setRange(q, "hips", a.Hips)
}

// CompileModelTagFilter - запрос по коллекции model_tags.
func CompileModelTagFilter(f *models.ModelTagFilter) bson.M {
	q := bson.M{}
	setEqStr(q, "user_Id", f.UserID)
	setEqInt(q, "age", f.Age)
	setEqInt(q, "height", f.Height)
	setEqStr(q, "natural_eye_color", f.NaturalEyeColor)
	setEqStr(q, "body_Type", f.BodyType)
	setIn(q, "work_Field", f.WorkField)
	setEqStr(q, "skin_Tone", f.SkinTone)
	setEqStr(q, "ethnicity", f.Ethnicity)
	setEqStr(q, "natural_hair_type", f.NaturalHairType)
	setEqStr(q, "experience_Level", f.ExperienceLevel)
	setEqStr(q, "gender", f.Gender)
	setEqStr(q, "location", f.Location)
	setEqInt(q, "shoe_Size", f.ShoeSize)
	setEqInt(q, "bust_chest", f.BustChest)
	setEqInt(q, "waist", f.Waist)
	setEqInt(q, "hips", f.Hips)
	return q
}

// CompileBrandTagFilter - запрос по коллекции brand_tags.
func CompileBrandTagFilter(f *models.BrandTagFilter) bson.M {
	q := bson.M{}
	setEqStr(q, "user_Id", f.UserID)
	setIn(q, "work_Field", f.WorkField)
	setEqStr(q, "location", f.Location)
	return q
}

// CompileProjectTagFilter - запрос по коллекции project_tags.
func CompileProjectTagFilter(f *models.ProjectTagFilter) bson.M {
	q := bson.M{}
	setEqStr(q, "user_Id", f.UserID)
	setEqStr(q, "project_Id", f.ProjectID)
	setSearchAttributes(q, &f.SearchAttributes)
	setIn(q, "location", f.Location)
	return q
}

// CompileModelProjectPreferenceFilter - запрос по model_preferences.
func CompileModelProjectPreferenceFilter(f *models.ModelProjectPreferenceFilter) bson.M {
	q := bson.M{}
	setEqStr(q, "user_Id", f.UserID)
	setSearchAttributes(q, &f.SearchAttributes)
	setIn(q, "location", f.Location)
	return q
}

// CompileBrandModelPreferenceFilter - запрос по brand_preferences.
// rating_level валидируется и входит в запрос равенством.
func CompileBrandModelPreferenceFilter(f *models.BrandModelPreferenceFilter) (bson.M, error) {
	if err := validateRatingLevel(f.RatingLevel); err != nil {
		return nil, err
	}
	q := bson.M{}
	setEqStr(q, "user_Id", f.UserID)
	setSearchAttributes(q, &f.SearchAttributes)
	setIn(q, "location", f.Location)
	setEqInt(q, "rating_level", f.RatingLevel)
	return q, nil
}

// CompileModelBrandPreferenceFilter - запрос по model_brand_preferences.
func CompileModelBrandPreferenceFilter(f *models.ModelBrandPreferenceFilter) (bson.M, error) {
	if err := validateRatingLevel(f.RatingLevel); err != nil {
		return nil, err
	}
	q := bson.M{}
	setEqStr(q, "user_Id", f.UserID)
	setIn(q, "work_Field", f.WorkField)
	setIn(q, "location", f.Location)
	setEqInt(q, "rating_level", f.RatingLevel)
	return q, nil
}

// CompileModelSearch - кросс-ролевой запрос бренда по model_tags.
// rating_level исключен: применяется пост-фильтром.
func CompileModelSearch(f *models.BrandModelPreferenceFilter) (bson.M, error) {
	if err := validateRatingLevel(f.RatingLevel); err != nil {
		return nil, err
	}
	q := bson.M{}
	setSearchAttributes(q, &f.SearchAttributes)
	setIn(q, "location", f.Location)
	return q, nil
}

// CompileBrandSearch - кросс-ролевой запрос модели по brand_tags.
func CompileBrandSearch(f *models.ModelBrandPreferenceFilter) (bson.M, error) {
	if err := validateRatingLevel(f.RatingLevel); err != nil {
		return nil, err
	}
	q := bson.M{}
	setIn(q, "work_Field", f.WorkField)
	setIn(q, "location", f.Location)
	return q, nil
}

// CompileProjectSearch - кросс-ролевой запрос модели по project_tags:
// предпочтение сперва конвертируется в форму фильтра проектов.
func CompileProjectSearch(f *models.ModelProjectPreferenceFilter) bson.M {
	return CompileProjectTagFilter(ConvertToProjectTagFilter(f))
}
