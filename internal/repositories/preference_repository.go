package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"modella_backend/internal/database"
	"modella_backend/internal/models"
)

// PreferenceRepository - доступ к коллекциям предпочтений.
// У каждого пользователя максимум одно предпочтение каждого вида.
type PreferenceRepository interface {
	InsertModelProject(ctx context.Context, p *models.ModelProjectPreference) error
	FindModelProject(ctx context.Context, userID string) (*models.ModelProjectPreference, error)
	ListModelProject(ctx context.Context, limit int) ([]models.ModelProjectPreference, error)
	UpdateModelProject(ctx context.Context, userID string, set bson.M) (*models.ModelProjectPreference, error)
	DeleteModelProject(ctx context.Context, userID string) error
	DeleteAllModelProject(ctx context.Context) (int64, error)
	SampleModelProject(ctx context.Context, query bson.M, size int) ([]models.ModelProjectPreference, error)

	InsertBrandModel(ctx context.Context, p *models.BrandModelPreference) error
	FindBrandModel(ctx context.Context, userID string) (*models.BrandModelPreference, error)
	ListBrandModel(ctx context.Context, limit int) ([]models.BrandModelPreference, error)
	UpdateBrandModel(ctx context.Context, userID string, set bson.M) (*models.BrandModelPreference, error)
	DeleteBrandModel(ctx context.Context, userID string) error
	DeleteAllBrandModel(ctx context.Context) (int64, error)
	SampleBrandModel(ctx context.Context, query bson.M, size int) ([]models.BrandModelPreference, error)

	InsertModelBrand(ctx context.Context, p *models.ModelBrandPreference) error
	FindModelBrand(ctx context.Context, userID string) (*models.ModelBrandPreference, error)
	ListModelBrand(ctx context.Context, limit int) ([]models.ModelBrandPreference, error)
	UpdateModelBrand(ctx context.Context, userID string, set bson.M) (*models.ModelBrandPreference, error)
	DeleteModelBrand(ctx context.Context, userID string) error
	DeleteAllModelBrand(ctx context.Context) (int64, error)
	SampleModelBrand(ctx context.Context, query bson.M, size int) ([]models.ModelBrandPreference, error)

	// PreferredUserIDs - user_Id, уже имеющие предпочтение данного варианта.
	PreferredUserIDs(ctx context.Context, variant string) ([]string, error)
}

type PreferenceRepositoryImpl struct {
	modelProject *mongo.Collection
	brandModel   *mongo.Collection
	modelBrand   *mongo.Collection
}

func NewPreferenceRepository(m *database.Mongo) PreferenceRepository {
	return &PreferenceRepositoryImpl{
		modelProject: m.Collection(database.CollModelPreferences),
		brandModel:   m.Collection(database.CollBrandPreferences),
		modelBrand:   m.Collection(database.CollModelBrandPreferences),
	}
}

func findOneByUser[T any](ctx context.Context, coll *mongo.Collection, userID string) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, bson.M{"user_Id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func updateOneByUser[T any](ctx context.Context, coll *mongo.Collection, userID string, set bson.M) (*T, error) {
	var doc T
	err := coll.FindOneAndUpdate(ctx,
		bson.M{"user_Id": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func listDocs[T any](ctx context.Context, coll *mongo.Collection, limit int) ([]T, error) {
	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- model_preferences (модель -> проекты) ---

func (r *PreferenceRepositoryImpl) InsertModelProject(ctx context.Context, p *models.ModelProjectPreference) error {
	_, err := r.modelProject.InsertOne(ctx, p)
	return err
}

func (r *PreferenceRepositoryImpl) FindModelProject(ctx context.Context, userID string) (*models.ModelProjectPreference, error) {
	return findOneByUser[models.ModelProjectPreference](ctx, r.modelProject, userID)
}

func (r *PreferenceRepositoryImpl) ListModelProject(ctx context.Context, limit int) ([]models.ModelProjectPreference, error) {
	return listDocs[models.ModelProjectPreference](ctx, r.modelProject, limit)
}

func (r *PreferenceRepositoryImpl) UpdateModelProject(ctx context.Context, userID string, set bson.M) (*models.ModelProjectPreference, error) {
	return updateOneByUser[models.ModelProjectPreference](ctx, r.modelProject, userID, set)
}

func (r *PreferenceRepositoryImpl) DeleteModelProject(ctx context.Context, userID string) error {
	return deleteOne(ctx, r.modelProject, bson.M{"user_Id": userID})
}

func (r *PreferenceRepositoryImpl) DeleteAllModelProject(ctx context.Context) (int64, error) {
	res, err := r.modelProject.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *PreferenceRepositoryImpl) SampleModelProject(ctx context.Context, query bson.M, size int) ([]models.ModelProjectPreference, error) {
	return sampleDocs[models.ModelProjectPreference](ctx, r.modelProject, query, size)
}

// --- brand_preferences (бренд -> модели) ---

func (r *PreferenceRepositoryImpl) InsertBrandModel(ctx context.Context, p *models.BrandModelPreference) error {
	_, err := r.brandModel.InsertOne(ctx, p)
	return err
}

func (r *PreferenceRepositoryImpl) FindBrandModel(ctx context.Context, userID string) (*models.BrandModelPreference, error) {
	return findOneByUser[models.BrandModelPreference](ctx, r.brandModel, userID)
}

func (r *PreferenceRepositoryImpl) ListBrandModel(ctx context.Context, limit int) ([]models.BrandModelPreference, error) {
	return listDocs[models.BrandModelPreference](ctx, r.brandModel, limit)
}

func (r *PreferenceRepositoryImpl) UpdateBrandModel(ctx context.Context, userID string, set bson.M) (*models.BrandModelPreference, error) {
	return updateOneByUser[models.BrandModelPreference](ctx, r.brandModel, userID, set)
}

func (r *PreferenceRepositoryImpl) DeleteBrandModel(ctx context.Context, userID string) error {
	return deleteOne(ctx, r.brandModel, bson.M{"user_Id": userID})
}

func (r *PreferenceRepositoryImpl) DeleteAllBrandModel(ctx context.Context) (int64, error) {
	res, err := r.brandModel.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *PreferenceRepositoryImpl) SampleBrandModel(ctx context.Context, query bson.M, size int) ([]models.BrandModelPreference, error) {
	return sampleDocs[models.BrandModelPreference](ctx, r.brandModel, query, size)
}

// --- model_brand_preferences (модель -> бренды) ---

func (r *PreferenceRepositoryImpl) InsertModelBrand(ctx context.Context, p *models.ModelBrandPreference) error {
	_, err := r.modelBrand.InsertOne(ctx, p)
	return err
}

func (r *PreferenceRepositoryImpl) FindModelBrand(ctx context.Context, userID string) (*models.ModelBrandPreference, error) {
	return findOneByUser[models.ModelBrandPreference](ctx, r.modelBrand, userID)
}

func (r *PreferenceRepositoryImpl) ListModelBrand(ctx context.Context, limit int) ([]models.ModelBrandPreference, error) {
	return listDocs[models.ModelBrandPreference](ctx, r.modelBrand, limit)
}

func (r *PreferenceRepositoryImpl) UpdateModelBrand(ctx context.Context, userID string, set bson.M) (*models.ModelBrandPreference, error) {
	return updateOneByUser[models.ModelBrandPreference](ctx, r.modelBrand, userID, set)
}

func (r *PreferenceRepositoryImpl) DeleteModelBrand(ctx context.Context, userID string) error {
	return deleteOne(ctx, r.modelBrand, bson.M{"user_Id": userID})
}

func (r *PreferenceRepositoryImpl) DeleteAllModelBrand(ctx context.Context) (int64, error) {
	res, err := r.modelBrand.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *PreferenceRepositoryImpl) SampleModelBrand(ctx context.Context, query bson.M, size int) ([]models.ModelBrandPreference, error) {
	return sampleDocs[models.ModelBrandPreference](ctx, r.modelBrand, query, size)
}

func (r *PreferenceRepositoryImpl) PreferredUserIDs(ctx context.Context, variant string) ([]string, error) {
	// Вариант именуется по ИСКОМОЙ стороне: "Model" - бренд ищет
	// моделей, "Brand" - модель ищет бренды, "Project" - модель ищет
	// проекты.
	coll := r.modelProject
	switch variant {
	case models.VariantModel:
		coll = r.brandModel
	case models.VariantBrand:
		coll = r.modelBrand
	}
	return distinctUserIDs(ctx, coll)
}
