package query

import "modella_backend/internal/models"

// ConvertToProjectTagFilter переводит предпочтение модели по проектам в
// форму фильтра project_tags. Отсутствующие поля не переносятся,
// наборы чистятся от пустых строк, user_Id владельца предпочтения
// отбрасывается - он идентифицирует модель, а не проект.
func ConvertToProjectTagFilter(f *models.ModelProjectPreferenceFilter) *models.ProjectTagFilter {
	return &models.ProjectTagFilter{
		SearchAttributes: convertSearchAttributes(&f.SearchAttributes),
		Location:         cleanList(f.Location),
	}
}

func convertSearchAttributes(a *models.SearchAttributes) models.SearchAttributes {
	return models.SearchAttributes{
		Age:             copyRange(a.Age),
		Height:          copyRange(a.Height),
		NaturalEyeColor: cleanList(a.NaturalEyeColor),
		BodyType:        cleanList(a.BodyType),
		WorkField:       cleanList(a.WorkField),
		SkinTone:        cleanList(a.SkinTone),
		Ethnicity:       cleanList(a.Ethnicity),
		NaturalHairType: cleanList(a.NaturalHairType),
		ExperienceLevel: cleanList(a.ExperienceLevel),
		Gender:          cleanList(a.Gender),
		ShoeSize:        copyRange(a.ShoeSize),
		BustChest:       copyRange(a.BustChest),
		Waist:           copyRange(a.Waist),
		Hips:            copyRange(a.Hips),
	}
}

func copyRange(r *models.IntRange) *models.IntRange {
	if r == nil {
		return nil
	}
	out := *r
	return &out
}
