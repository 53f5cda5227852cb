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

var ErrNotFound = errors.New("record not found")

// IsDuplicate сообщает, что запись нарушила уникальный индекс.
// Уникальный индекс - источник истины по дубликатам.
func IsDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// TagRepository - доступ к коллекциям тегов.
type TagRepository interface {
	InsertModelTag(ctx context.Context, tag *models.ModelTag) error
	FindModelTag(ctx context.Context, userID string) (*models.ModelTag, error)
	ListModelTags(ctx context.Context) ([]models.ModelTag, error)
	UpdateModelTag(ctx context.Context, userID string, set bson.M) (*models.ModelTag, error)
	DeleteModelTag(ctx context.Context, userID string) error
	DeleteAllModelTags(ctx context.Context) (int64, error)
	SampleModelTags(ctx context.Context, query bson.M, size int) ([]models.ModelTag, error)

	InsertBrandTag(ctx context.Context, tag *models.BrandTag) error
	FindBrandTag(ctx context.Context, userID string) (*models.BrandTag, error)
	ListBrandTags(ctx context.Context) ([]models.BrandTag, error)
	UpdateBrandTag(ctx context.Context, userID string, set bson.M) (*models.BrandTag, error)
	DeleteBrandTag(ctx context.Context, userID string) error
	DeleteAllBrandTags(ctx context.Context) (int64, error)
	SampleBrandTags(ctx context.Context, query bson.M, size int) ([]models.BrandTag, error)

	InsertProjectTag(ctx context.Context, tag *models.ProjectTag) error
	FindProjectTag(ctx context.Context, userID, projectID string) (*models.ProjectTag, error)
	ListProjectTagsByUser(ctx context.Context, userID string, limit int) ([]models.ProjectTag, error)
	ListProjectTags(ctx context.Context) ([]models.ProjectTag, error)
	UpdateProjectTag(ctx context.Context, userID, projectID string, set bson.M) (*models.ProjectTag, error)
	DeleteProjectTag(ctx context.Context, userID, projectID string) error
	DeleteAllProjectTags(ctx context.Context) (int64, error)
	SampleProjectTags(ctx context.Context, query bson.M, size int) ([]models.ProjectTag, error)

	// TaggedUserIDs - user_Id, уже имеющие тег данного варианта.
	TaggedUserIDs(ctx context.Context, variant string) ([]string, error)
}

type TagRepositoryImpl struct {
	modelTags   *mongo.Collection
	brandTags   *mongo.Collection
	projectTags *mongo.Collection
}

func NewTagRepository(m *database.Mongo) TagRepository {
	return &TagRepositoryImpl{
		modelTags:   m.Collection(database.CollModelTags),
		brandTags:   m.Collection(database.CollBrandTags),
		projectTags: m.Collection(database.CollProjectTags),
	}
}

// sampleDocs гоняет пайплайн {$match, $sample} и декодирует результат.
func sampleDocs[T any](ctx context.Context, coll *mongo.Collection, query bson.M, size int) ([]T, error) {
	pipeline := []bson.M{
		{"$match": query},
		{"$sample": bson.M{"size": size}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
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

func findAllDocs[T any](ctx context.Context, coll *mongo.Collection, query bson.M) ([]T, error) {
	cursor, err := coll.Find(ctx, query)
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

// --- model_tags ---

func (r *TagRepositoryImpl) InsertModelTag(ctx context.Context, tag *models.ModelTag) error {
	_, err := r.modelTags.InsertOne(ctx, tag)
	return err
}

func (r *TagRepositoryImpl) FindModelTag(ctx context.Context, userID string) (*models.ModelTag, error) {
	var tag models.ModelTag
	err := r.modelTags.FindOne(ctx, bson.M{"user_Id": userID}).Decode(&tag)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepositoryImpl) ListModelTags(ctx context.Context) ([]models.ModelTag, error) {
	return findAllDocs[models.ModelTag](ctx, r.modelTags, bson.M{})
}

func (r *TagRepositoryImpl) UpdateModelTag(ctx context.Context, userID string, set bson.M) (*models.ModelTag, error) {
	var tag models.ModelTag
	err := r.modelTags.FindOneAndUpdate(ctx,
		bson.M{"user_Id": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&tag)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepositoryImpl) DeleteModelTag(ctx context.Context, userID string) error {
	return deleteOne(ctx, r.modelTags, bson.M{"user_Id": userID})
}

func (r *TagRepositoryImpl) DeleteAllModelTags(ctx context.Context) (int64, error) {
	res, err := r.modelTags.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *TagRepositoryImpl) SampleModelTags(ctx context.Context, query bson.M, size int) ([]models.ModelTag, error) {
	return sampleDocs[models.ModelTag](ctx, r.modelTags, query, size)
}

// --- brand_tags ---

func (r *TagRepositoryImpl) InsertBrandTag(ctx context.Context, tag *models.BrandTag) error {
	_, err := r.brandTags.InsertOne(ctx, tag)
	return err
}

func (r *TagRepositoryImpl) FindBrandTag(ctx context.Context, userID string) (*models.BrandTag, error) {
	var tag models.BrandTag
	err := r.brandTags.FindOne(ctx, bson.M{"user_Id": userID}).Decode(&tag)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepositoryImpl) ListBrandTags(ctx context.Context) ([]models.BrandTag, error) {
	return findAllDocs[models.BrandTag](ctx, r.brandTags, bson.M{})
}

func (r *TagRepositoryImpl) UpdateBrandTag(ctx context.Context, userID string, set bson.M) (*models.BrandTag, error) {
	var tag models.BrandTag
	err := r.brandTags.FindOneAndUpdate(ctx,
		bson.M{"user_Id": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&tag)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepositoryImpl) DeleteBrandTag(ctx context.Context, userID string) error {
	return deleteOne(ctx, r.brandTags, bson.M{"user_Id": userID})
}

func (r *TagRepositoryImpl) DeleteAllBrandTags(ctx context.Context) (int64, error) {
	res, err := r.brandTags.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *TagRepositoryImpl) SampleBrandTags(ctx context.Context, query bson.M, size int) ([]models.BrandTag, error) {
	return sampleDocs[models.BrandTag](ctx, r.brandTags, query, size)
}

// --- project_tags ---

func (r *TagRepositoryImpl) InsertProjectTag(ctx context.Context, tag *models.ProjectTag) error {
	_, err := r.projectTags.InsertOne(ctx, tag)
	return err
}

func (r *TagRepositoryImpl) FindProjectTag(ctx context.Context, userID, projectID string) (*models.ProjectTag, error) {
	var tag models.ProjectTag
	err := r.projectTags.FindOne(ctx, bson.M{"user_Id": userID, "project_Id": projectID}).Decode(&tag)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepositoryImpl) ListProjectTagsByUser(ctx context.Context, userID string, limit int) ([]models.ProjectTag, error) {
	cursor, err := r.projectTags.Find(ctx,
		bson.M{"user_Id": userID},
		options.Find().SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.ProjectTag{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TagRepositoryImpl) ListProjectTags(ctx context.Context) ([]models.ProjectTag, error) {
	return findAllDocs[models.ProjectTag](ctx, r.projectTags, bson.M{})
}

func (r *TagRepositoryImpl) UpdateProjectTag(ctx context.Context, userID, projectID string, set bson.M) (*models.ProjectTag, error) {
	var tag models.ProjectTag
	err := r.projectTags.FindOneAndUpdate(ctx,
		bson.M{"user_Id": userID, "project_Id": projectID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&tag)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepositoryImpl) DeleteProjectTag(ctx context.Context, userID, projectID string) error {
	return deleteOne(ctx, r.projectTags, bson.M{"user_Id": userID, "project_Id": projectID})
}

func (r *TagRepositoryImpl) DeleteAllProjectTags(ctx context.Context) (int64, error) {
	res, err := r.projectTags.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *TagRepositoryImpl) SampleProjectTags(ctx context.Context, query bson.M, size int) ([]models.ProjectTag, error) {
	return sampleDocs[models.ProjectTag](ctx, r.projectTags, query, size)
}

func (r *TagRepositoryImpl) TaggedUserIDs(ctx context.Context, variant string) ([]string, error) {
	coll := r.modelTags
	switch variant {
	case models.VariantBrand:
		coll = r.brandTags
	case models.VariantProject:
		coll = r.projectTags
	}
	return distinctUserIDs(ctx, coll)
}

// --- helpers ---

func deleteOne(ctx context.Context, coll *mongo.Collection, filter bson.M) error {
	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func distinctUserIDs(ctx context.Context, coll *mongo.Collection) ([]string, error) {
	raw, err := coll.Distinct(ctx, "user_Id", bson.M{})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}
