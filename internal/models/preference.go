package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

/*
Предпочтения - критерии поиска противоположной роли. Форма каждого
варианта зеркалит форму фильтра искомой стороны:
  - ModelProjectPreference: модель ищет проекты (форма ProjectTagFilter);
  - BrandModelPreference: бренд ищет моделей (+ rating_level);
  - ModelBrandPreference: модель ищет бренды (work_Field, location, rating_level).
*/

// ModelProjectPreference - предпочтение модели по проектам.
type ModelProjectPreference struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ClientType       string             `bson:"client_Type" json:"client_Type"`
	UserID           string             `bson:"user_Id" json:"user_Id"`
	IsProject        bool               `bson:"is_project" json:"is_project"`
	SearchAttributes `bson:",inline"`
	Location         []string  `bson:"location,omitempty" json:"location,omitempty"`
	SavedTime        time.Time `bson:"saved_time" json:"saved_time"`
}

// ModelProjectPreferenceFilter - фильтр по коллекции model_preferences.
type ModelProjectPreferenceFilter struct {
	UserID           *string `json:"user_Id,omitempty"`
	SearchAttributes `bson:",inline"`
	Location         []string `json:"location,omitempty"`
}

// BrandModelPreference - предпочтение бренда по моделям.
type BrandModelPreference struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ClientType       string             `bson:"client_Type" json:"client_Type"`
	UserID           string             `bson:"user_Id" json:"user_Id"`
	SearchAttributes `bson:",inline"`
	Location         []string  `bson:"location,omitempty" json:"location,omitempty"`
	RatingLevel      *int      `bson:"rating_level,omitempty" json:"rating_level,omitempty"`
	SavedTime        time.Time `bson:"saved_time" json:"saved_time"`
}

// BrandModelPreferenceFilter - фильтр по коллекции brand_preferences.
// Тот же фильтр идет в кросс-матчинг по model_tags.
type BrandModelPreferenceFilter struct {
	UserID           *string `json:"user_Id,omitempty"`
	SearchAttributes `bson:",inline"`
	Location         []string `json:"location,omitempty"`
	RatingLevel      *int     `json:"rating_level,omitempty"`
}

// ModelBrandPreference - предпочтение модели по брендам.
type ModelBrandPreference struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ClientType  string             `bson:"client_Type" json:"client_Type"`
	UserID      string             `bson:"user_Id" json:"user_Id"`
	IsProject   bool               `bson:"is_project" json:"is_project"`
	WorkField   []string           `bson:"work_Field,omitempty" json:"work_Field,omitempty"`
	Location    []string           `bson:"location,omitempty" json:"location,omitempty"`
	RatingLevel *int               `bson:"rating_level,omitempty" json:"rating_level,omitempty"`
	SavedTime   time.Time          `bson:"saved_time" json:"saved_time"`
}

// ModelBrandPreferenceFilter - фильтр по коллекции model_brand_preferences.
type ModelBrandPreferenceFilter struct {
	UserID      *string  `json:"user_Id,omitempty"`
	WorkField   []string `json:"work_Field,omitempty"`
	Location    []string `json:"location,omitempty"`
	RatingLevel *int     `json:"rating_level,omitempty"`
}
