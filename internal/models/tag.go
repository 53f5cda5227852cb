package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

/*
Теги - профили атрибутов в Mongo. Три варианта:
  - ModelTag: скалярные атрибуты модели;
  - BrandTag: короткий профиль бренда;
  - ProjectTag: требования проекта бренда (диапазоны и наборы).

Имена BSON/JSON полей - часть контракта API, не менять.
*/

// SearchAttributes - общая диапазонно-наборная часть требований проекта
// и предпочтений. Встраивается inline, поля лежат в документе плоско.
type SearchAttributes struct {
	Age             *IntRange `bson:"age,omitempty" json:"age,omitempty"`
	Height          *IntRange `bson:"height,omitempty" json:"height,omitempty"`
	NaturalEyeColor []string  `bson:"natural_eye_color,omitempty" json:"natural_eye_color,omitempty"`
	BodyType        []string  `bson:"body_Type,omitempty" json:"body_Type,omitempty"`
	WorkField       []string  `bson:"work_Field,omitempty" json:"work_Field,omitempty"`
	SkinTone        []string  `bson:"skin_Tone,omitempty" json:"skin_Tone,omitempty"`
	Ethnicity       []string  `bson:"ethnicity,omitempty" json:"ethnicity,omitempty"`
	NaturalHairType []string  `bson:"natural_hair_type,omitempty" json:"natural_hair_type,omitempty"`
	ExperienceLevel []string  `bson:"experience_Level,omitempty" json:"experience_Level,omitempty"`
	Gender          []string  `bson:"gender,omitempty" json:"gender,omitempty"`
	ShoeSize        *IntRange `bson:"shoe_Size,omitempty" json:"shoe_Size,omitempty"`
	BustChest       *IntRange `bson:"bust_chest,omitempty" json:"bust_chest,omitempty"`
	Waist           *IntRange `bson:"waist,omitempty" json:"waist,omitempty"`
	Hips            *IntRange `bson:"hips,omitempty" json:"hips,omitempty"`
}

// ModelTag - атрибуты профиля модели. Скаляры опциональны.
type ModelTag struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ClientType      string             `bson:"client_Type" json:"client_Type"`
	UserID          string             `bson:"user_Id" json:"user_Id"`
	Age             *int               `bson:"age,omitempty" json:"age,omitempty"`
	Height          *int               `bson:"height,omitempty" json:"height,omitempty"`
	NaturalEyeColor *string            `bson:"natural_eye_color,omitempty" json:"natural_eye_color,omitempty"`
	BodyType        *string            `bson:"body_Type,omitempty" json:"body_Type,omitempty"`
	WorkField       []string           `bson:"work_Field,omitempty" json:"work_Field,omitempty"`
	SkinTone        *string            `bson:"skin_Tone,omitempty" json:"skin_Tone,omitempty"`
	Ethnicity       *string            `bson:"ethnicity,omitempty" json:"ethnicity,omitempty"`
	NaturalHairType *string            `bson:"natural_hair_type,omitempty" json:"natural_hair_type,omitempty"`
	ExperienceLevel *string            `bson:"experience_Level,omitempty" json:"experience_Level,omitempty"`
	Gender          *string            `bson:"gender,omitempty" json:"gender,omitempty"`
	Location        *string            `bson:"location,omitempty" json:"location,omitempty"`
	ShoeSize        *int               `bson:"shoe_Size,omitempty" json:"shoe_Size,omitempty"`
	BustChest       *int               `bson:"bust_chest,omitempty" json:"bust_chest,omitempty"`
	Waist           *int               `bson:"waist,omitempty" json:"waist,omitempty"`
	Hips            *int               `bson:"hips,omitempty" json:"hips,omitempty"`
	SavedTime       time.Time          `bson:"saved_time" json:"saved_time"`
}

// ModelTagFilter - фильтр по коллекции model_tags (точечные значения).
type ModelTagFilter struct {
	UserID          *string  `json:"user_Id,omitempty"`
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

// BrandTag - профиль бренда.
type BrandTag struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ClientType string             `bson:"client_Type" json:"client_Type"`
	UserID     string             `bson:"user_Id" json:"user_Id"`
	IsProject  bool               `bson:"is_project" json:"is_project"`
	WorkField  []string           `bson:"work_Field,omitempty" json:"work_Field,omitempty"`
	Location   *string            `bson:"location,omitempty" json:"location,omitempty"`
	SavedTime  time.Time          `bson:"saved_time" json:"saved_time"`
}

// BrandTagFilter - фильтр по коллекции brand_tags.
type BrandTagFilter struct {
	UserID    *string  `json:"user_Id,omitempty"`
	WorkField []string `json:"work_Field,omitempty"`
	Location  *string  `json:"location,omitempty"`
}

// ProjectTag - требования проекта: числовые диапазоны и наборы значений.
type ProjectTag struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ClientType       string             `bson:"client_Type" json:"client_Type"`
	ProjectID        string             `bson:"project_Id" json:"project_Id"`
	UserID           string             `bson:"user_Id" json:"user_Id"`
	IsProject        bool               `bson:"is_project" json:"is_project"`
	SearchAttributes `bson:",inline"`
	Location         *string   `bson:"location,omitempty" json:"location,omitempty"`
	SavedTime        time.Time `bson:"saved_time" json:"saved_time"`
}

// ProjectTagFilter - фильтр по коллекции project_tags.
// Location - набор: сюда конвертируется список локаций из предпочтения модели.
type ProjectTagFilter struct {
	UserID           *string `json:"user_Id,omitempty"`
	ProjectID        *string `json:"project_Id,omitempty"`
	SearchAttributes `bson:",inline"`
	Location         []string `json:"location,omitempty"`
}

// GenerateRandomRequest - запрос генератора синтетических данных.
type GenerateRandomRequest struct {
	Count   int    `json:"count" binding:"required,min=1"`
	TagType string `json:"tag_type" binding:"required"`
}
