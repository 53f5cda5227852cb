package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"modella_backend/internal/database"
	"modella_backend/internal/models"
)

// RatingRepository - доступ к коллекции оценок.
type RatingRepository interface {
	Insert(ctx context.Context, rating *models.Rating) error
	InsertMany(ctx context.Context, ratings []models.Rating) error
	FindByID(ctx context.Context, ratingID string) (*models.Rating, error)
	FindPair(ctx context.Context, userID, ratedByID string) (*models.Rating, error)
	ListByUser(ctx context.Context, userID string) ([]models.Rating, error)
	ListAll(ctx context.Context) ([]models.Rating, error)
	// ListRecent - последние limit оценок пользователя, новые первыми.
	ListRecent(ctx context.Context, userID string, limit int) ([]models.Rating, error)
	ListByLevel(ctx context.Context, userID string, level int) ([]models.Rating, error)
	Update(ctx context.Context, ratingID string, set bson.M) error
	Delete(ctx context.Context, ratingID string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type RatingRepositoryImpl struct {
	ratings *mongo.Collection
}

func NewRatingRepository(m *database.Mongo) RatingRepository {
	return &RatingRepositoryImpl{ratings: m.Collection(database.CollRatings)}
}

func (r *RatingRepositoryImpl) Insert(ctx context.Context, rating *models.Rating) error {
	_, err := r.ratings.InsertOne(ctx, rating)
	return err
}

func (r *RatingRepositoryImpl) InsertMany(ctx context.Context, ratings []models.Rating) error {
	if len(ratings) == 0 {
		return nil
	}
	docs := make([]interface{}, len(ratings))
	for i := range ratings {
		docs[i] = ratings[i]
	}
	_, err := r.ratings.InsertMany(ctx, docs)
	return err
}

func (r *RatingRepositoryImpl) FindByID(ctx context.Context, ratingID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.ratings.FindOne(ctx, ratingFilter(ratingID)).Decode(&rating)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepositoryImpl) FindPair(ctx context.Context, userID, ratedByID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.ratings.FindOne(ctx, bson.M{"user_Id": userID, "ratedBy_Id": ratedByID}).Decode(&rating)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	return findAllDocs[models.Rating](ctx, r.ratings, bson.M{"user_Id": userID})
}

func (r *RatingRepositoryImpl) ListAll(ctx context.Context) ([]models.Rating, error) {
	return findAllDocs[models.Rating](ctx, r.ratings, bson.M{})
}

func (r *RatingRepositoryImpl) ListRecent(ctx context.Context, userID string, limit int) ([]models.Rating, error) {
	cursor, err := r.ratings.Find(ctx,
		bson.M{"user_Id": userID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}).SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.Rating{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RatingRepositoryImpl) ListByLevel(ctx context.Context, userID string, level int) ([]models.Rating, error) {
	cursor, err := r.ratings.Find(ctx,
		bson.M{"user_Id": userID, "rating": level},
		options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.Rating{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RatingRepositoryImpl) Update(ctx context.Context, ratingID string, set bson.M) error {
	res, err := r.ratings.UpdateOne(ctx, ratingFilter(ratingID), bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RatingRepositoryImpl) Delete(ctx context.Context, ratingID string) error {
	return deleteOne(ctx, r.ratings, ratingFilter(ratingID))
}

func (r *RatingRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.ratings.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ratingFilter ищет и по rating_id, и по _id, если rating_id выглядит
// как ObjectID: старые документы дублировали идентификатор.
func ratingFilter(ratingID string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(ratingID); err == nil {
		return bson.M{"$or": []bson.M{
			{"rating_id": ratingID},
			{"_id": oid},
		}}
	}
	return bson.M{"rating_id": ratingID}
}
