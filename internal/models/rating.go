package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Rating - оценка от ratedBy_Id пользователю user_Id.
// Уникальна для пары (user_Id, ratedBy_Id).
type Rating struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	RatingID  string             `bson:"rating_id" json:"rating_id"`
	UserID    string             `bson:"user_Id" json:"user_Id"`
	RatedByID string             `bson:"ratedBy_Id" json:"ratedBy_Id"`
	Rating    int                `bson:"rating" json:"rating"`
	Review    string             `bson:"review,omitempty" json:"review,omitempty"`
}

// CreateRatingRequest - тело запроса создания оценки.
type CreateRatingRequest struct {
	UserID    string `json:"user_Id" binding:"required"`
	RatedByID string `json:"ratedBy_Id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Review    string `json:"review,omitempty"`
}

// UpdateRatingRequest - частичное обновление оценки автором.
type UpdateRatingRequest struct {
	Rating *int    `json:"rating,omitempty"`
	Review *string `json:"review,omitempty"`
}

// RatingReviewMap - шаблонный текст отзыва по уровню оценки.
// Используется генератором случайных отзывов.
var RatingReviewMap = map[int]string{
	1: "Very bad",
	2: "Not too bad",
	3: "OK",
	4: "Somewhat good",
	5: "Very good",
}
