package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"modella_backend/internal/logger"
)

// Имена Mongo-коллекций.
const (
	CollModelTags             = "model_tags"
	CollBrandTags             = "brand_tags"
	CollProjectTags           = "project_tags"
	CollModelPreferences      = "model_preferences"
	CollBrandPreferences      = "brand_preferences"
	CollModelBrandPreferences = "model_brand_preferences"
	CollRatings               = "ratings"
)

// Mongo - подключение к документному хранилищу тегов и предпочтений.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// ConnectMongo подключается и проверяет доступность сервера.
func ConnectMongo(uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	logger.Info("mongo connected", "database", dbName)
	return &Mongo{
		Client: client,
		DB:     client.Database(dbName),
	}, nil
}

// Close закрывает подключение.
func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// Collection возвращает коллекцию по имени.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.DB.Collection(name)
}

// EnsureIndexes создает уникальные индексы - источник истины по
// дубликатам. Проверки существования в сервисах - лишь оптимизация.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	// По одному тегу/предпочтению на пользователя.
	perUser := []string{
		CollModelTags,
		CollBrandTags,
		CollModelPreferences,
		CollBrandPreferences,
		CollModelBrandPreferences,
	}
	for _, coll := range perUser {
		_, err := m.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "user_Id", Value: 1}},
			Options: unique,
		})
		if err != nil {
			return err
		}
	}

	// У бренда много проектов, project_Id уникален глобально.
	_, err := m.Collection(CollProjectTags).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "project_Id", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "user_Id", Value: 1}}},
	})
	if err != nil {
		return err
	}

	// Одна оценка на пару (получатель, автор).
	_, err = m.Collection(CollRatings).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_Id", Value: 1}, {Key: "ratedBy_Id", Value: 1}},
			Options: unique,
		},
		{Keys: bson.D{{Key: "user_Id", Value: 1}}},
	})
	return err
}
