package models

import "go.mongodb.org/mongo-driver/bson"

/*
Частичные обновления. Каждый тип умеет две вещи:
  - ApplyTo: наложить непустые поля на существующую запись (слитая
    запись затем уходит в доменную валидацию);
  - SetDoc: собрать $set-документ только из переданных полей.

Владелец (user_Id, project_Id) и client_Type через патч не меняются.
*/

// ModelTagUpdate - патч тега модели.
type ModelTagUpdate struct {
	Age             *int     `json:"age,omitempty"`
	Height          *int     `json:"height,omitempty"`
	NaturalEyeColor *string  `json:"natural_eye_color,omitempty"`
	BodyType        *string  `json:"body_Type,omitempty"`
	WorkField       []string `json:"work_Field,omitempty"`
	SkinTone        *string  `json:"skin_Tone,omitempty"`
	Ethnicity       *string  `json:"ethnicity,omitempty"`
	NaturalHairType *string  `json:"natural_hair_type,omitempty"`
	ExperienceLevel *string  `json:"experience_Level,omitempty"`
	Gender          *string  `json:"gender,omitempty"`
	Location        *string  `json:"location,omitempty"`
	ShoeSize        *int     `json:"shoe_Size,omitempty"`
	BustChest       *int     `json:"bust_chest,omitempty"`
	Waist           *int     `json:"waist,omitempty"`
	Hips            *int     `json:"hips,omitempty"`
}

func (u *ModelTagUpdate) ApplyTo(t *ModelTag) {
	if u.Age != nil {
		t.Age = u.Age
	}
	if u.Height != nil {
		t.Height = u.Height
	}
	if u.NaturalEyeColor != nil {
		t.NaturalEyeColor = u.NaturalEyeColor
	}
	if u.BodyType != nil {
		t.BodyType = u.BodyType
	}
	if u.WorkField != nil {
		t.WorkField = u.WorkField
	}
	if u.SkinTone != nil {
		t.SkinTone = u.SkinTone
	}
	if u.Ethnicity != nil {
		t.Ethnicity = u.Ethnicity
	}
	if u.NaturalHairType != nil {
		t.NaturalHairType = u.NaturalHairType
	}
	if u.ExperienceLevel != nil {
		t.ExperienceLevel = u.ExperienceLevel
	}
	if u.Gender != nil {
		t.Gender = u.Gender
	}
	if u.Location != nil {
		t.Location = u.Location
	}
	if u.ShoeSize != nil {
		t.ShoeSize = u.ShoeSize
	}
	if u.BustChest != nil {
		t.BustChest = u.BustChest
	}
	if u.Waist != nil {
		t.Waist = u.Waist
	}
	if u.Hips != nil {
		t.Hips = u.Hips
	}
}

func (u *ModelTagUpdate) SetDoc() bson.M {
	set := bson.M{}
	setIfInt(set, "age", u.Age)
	setIfInt(set, "height", u.Height)
	setIfStr(set, "natural_eye_color", u.NaturalEyeColor)
	setIfStr(set, "body_Type", u.BodyType)
	setIfList(set, "work_Field", u.WorkField)
	setIfStr(set, "skin_Tone", u.SkinTone)
	setIfStr(set, "ethnicity", u.Ethnicity)
	setIfStr(set, "natural_hair_type", u.NaturalHairType)
	setIfStr(set, "experience_Level", u.ExperienceLevel)
	setIfStr(set, "gender", u.Gender)
	setIfStr(set, "location", u.Location)
	setIfInt(set, "shoe_Size", u.ShoeSize)
	setIfInt(set, "bust_chest", u.BustChest)
	setIfInt(set, "waist", u.Waist)
	setIfInt(set, "hips", u.Hips)
	return set
}

// BrandTagUpdate - патч профиля бренда.
type BrandTagUpdate struct {
	WorkField []string `json:"work_Field,omitempty"`
	Location  *string  `json:"location,omitempty"`
}

func (u *BrandTagUpdate) ApplyTo(t *BrandTag) {
	if u.WorkField != nil {
		t.WorkField = u.WorkField
	}
	if u.Location != nil {
		t.Location = u.Location
	}
}

func (u *BrandTagUpdate) SetDoc() bson.M {
	set := bson.M{}
	setIfList(set, "work_Field", u.WorkField)
	setIfStr(set, "location", u.Location)
	return set
}

// SearchAttributesUpdate - патч общей диапазонно-наборной части.
type SearchAttributesUpdate struct {
	Age             *IntRange `json:"age,omitempty"`
	Height          *IntRange `json:"height,omitempty"`
	NaturalEyeColor []string  `json:"natural_eye_color,omitempty"`
	BodyType        []string  `json:"body_Type,omitempty"`
	WorkField       []string  `json:"work_Field,omitempty"`
	SkinTone        []string  `json:"skin_Tone,omitempty"`
	Ethnicity       []string  `json:"ethnicity,omitempty"`
	NaturalHairType []string  `json:"natural_hair_type,omitempty"`
	ExperienceLevel []string  `json:"experience_Level,omitempty"`
	Gender          []string  `json:"gender,omitempty"`
	ShoeSize        *IntRange `json:"shoe_Size,omitempty"`
	BustChest       *IntRange `json:"bust_chest,omitempty"`
	Waist           *IntRange `json:"waist,omitempty"`
	Hips            *IntRange `json:"hips,omitempty"`
}

func (u *SearchAttributesUpdate) applyTo(a *SearchAttributes) {
	if u.Age != nil {
		a.Age = u.Age
	}
	if u.Height != nil {
		a.Height = u.Height
	}
	if u.NaturalEyeColor != nil {
		a.NaturalEyeColor = u.NaturalEyeColor
	}
	if u.BodyType != nil {
		a.BodyType = u.BodyType
	}
	if u.WorkField != nil {
		a.WorkField = u.WorkField
	}
	if u.SkinTone != nil {
		a.SkinTone = u.SkinTone
	}
	if u.Ethnicity != nil {
		a.Ethnicity = u.Ethnicity
	}
	if u.NaturalHairType != nil {
		a.NaturalHairType = u.NaturalHairType
	}
	if u.ExperienceLevel != nil {
		a.ExperienceLevel = u.ExperienceLevel
	}
	if u.Gender != nil {
		a.Gender = u.Gender
	}
	if u.ShoeSize != nil {
		a.ShoeSize = u.ShoeSize
	}
	if u.BustChest != nil {
		a.BustChest = u.BustChest
	}
	if u.Waist != nil {
		a.Waist = u.Waist
	}
	if u.Hips != nil {
		a.Hips = u.Hips
	}
}

func (u *SearchAttributesUpdate) setDoc(set bson.M) {
	setIfRange(set, "age", u.Age)
	setIfRange(set, "height", u.Height)
	setIfList(set, "natural_eye_color", u.NaturalEyeColor)
	setIfList(set, "body_Type", u.BodyType)
	setIfList(set, "work_Field", u.WorkField)
	setIfList(set, "skin_Tone", u.SkinTone)
	setIfList(set, "ethnicity", u.Ethnicity)
	setIfList(set, "natural_hair_type", u.NaturalHairType)
	setIfList(set, "experience_Level", u.ExperienceLevel)
	setIfList(set, "gender", u.Gender)
	setIfRange(set, "shoe_Size", u.ShoeSize)
	setIfRange(set, "bust_chest", u.BustChest)
	setIfRange(set, "waist", u.Waist)
	setIfRange(set, "hips", u.Hips)
}

// ProjectTagUpdate - патч требований проекта.
type ProjectTagUpdate struct {
	SearchAttributesUpdate
	Location *string `json:"location,omitempty"`
}

func (u *ProjectTagUpdate) ApplyTo(t *ProjectTag) {
	u.applyTo(&t.SearchAttributes)
	if u.Location != nil {
		t.Location = u.Location
	}
}

func (u *ProjectTagUpdate) SetDoc() bson.M {
	set := bson.M{}
	u.setDoc(set)
	setIfStr(set, "location", u.Location)
	return set
}

// ModelProjectPreferenceUpdate - патч предпочтения модели по проектам.
type ModelProjectPreferenceUpdate struct {
	SearchAttributesUpdate
	Location []string `json:"location,omitempty"`
}

func (u *ModelProjectPreferenceUpdate) ApplyTo(p *ModelProjectPreference) {
	u.applyTo(&p.SearchAttributes)
	if u.Location != nil {
		p.Location = u.Location
	}
}

func (u *ModelProjectPreferenceUpdate) SetDoc() bson.M {
	set := bson.M{}
	u.setDoc(set)
	setIfList(set, "location", u.Location)
	return set
}

// BrandModelPreferenceUpdate - патч предпочтения бренда по моделям.
type BrandModelPreferenceUpdate struct {
	SearchAttributesUpdate
	Location    []string `json:"location,omitempty"`
	RatingLevel *int     `json:"rating_level,omitempty"`
}

func (u *BrandModelPreferenceUpdate) ApplyTo(p *BrandModelPreference) {
	u.applyTo(&p.SearchAttributes)
	if u.Location != nil {
		p.Location = u.Location
	}
	if u.RatingLevel != nil {
		p.RatingLevel = u.RatingLevel
	}
}

func (u *BrandModelPreferenceUpdate) SetDoc() bson.M {
	set := bson.M{}
	u.setDoc(set)
	setIfList(set, "location", u.Location)
	setIfInt(set, "rating_level", u.RatingLevel)
	return set
}

// ModelBrandPreferenceUpdate - патч предпочтения модели по брендам.
type ModelBrandPreferenceUpdate struct {
	WorkField   []string `json:"work_Field,omitempty"`
	Location    []string `json:"location,omitempty"`
	RatingLevel *int     `json:"rating_level,omitempty"`
}

func (u *ModelBrandPreferenceUpdate) ApplyTo(p *ModelBrandPreference) {
	if u.WorkField != nil {
		p.WorkField = u.WorkField
	}
	if u.Location != nil {
		p.Location = u.Location
	}
	if u.RatingLevel != nil {
		p.RatingLevel = u.RatingLevel
	}
}

func (u *ModelBrandPreferenceUpdate) SetDoc() bson.M {
	set := bson.M{}
	setIfList(set, "work_Field", u.WorkField)
	setIfList(set, "location", u.Location)
	setIfInt(set, "rating_level", u.RatingLevel)
	return set
}

// --- helpers ---

func setIfStr(set bson.M, field string, v *string) {
	if v != nil {
		set[field] = *v
	}
}

func setIfInt(set bson.M, field string, v *int) {
	if v != nil {
		set[field] = *v
	}
}

func setIfList(set bson.M, field string, v []string) {
	if v != nil {
		set[field] = v
	}
}

func setIfRange(set bson.M, field string, v *IntRange) {
	if v != nil {
		set[field] = *v
	}
}
