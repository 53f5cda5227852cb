package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"modella_backend/internal/models"
	"modella_backend/internal/repositories"
)

// Фейковые репозитории в памяти для тестов сервисного слоя.

// --- пользователи ---

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(ids ...string) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}}
	for _, id := range ids {
		role := models.RoleBrand
		if strings.HasPrefix(id, models.RoleModel) {
			role = models.RoleModel
		}
		r.users[id] = &models.User{UserID: id, Role: role, Email: id + "@test.local"}
	}
	return r
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if _, ok := r.users[user.UserID]; ok {
		return repositories.ErrUserAlreadyExists
	}
	r.users[user.UserID] = user
	return nil
}

func (r *fakeUserRepo) FindByUserID(userID string) (*models.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Exists(userID string) (bool, error) {
	_, ok := r.users[userID]
	return ok, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.users[user.UserID] = user
	return nil
}

func (r *fakeUserRepo) Delete(userID string) error {
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	out := []models.User{}
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) UserIDsByPrefix(prefix string) ([]string, error) {
	out := []string{}
	for id := range r.users {
		if strings.HasPrefix(id, prefix) {
			out = append(out, id)
		}
	}
	return out, nil
}

// --- оценки ---

type fakeRatingRepo struct {
	ratings []models.Rating
}

func (r *fakeRatingRepo) Insert(ctx context.Context, rating *models.Rating) error {
	r.ratings = append(r.ratings, *rating)
	return nil
}

func (r *fakeRatingRepo) InsertMany(ctx context.Context, ratings []models.Rating) error {
	r.ratings = append(r.ratings, ratings...)
	return nil
}

func (r *fakeRatingRepo) FindByID(ctx context.Context, ratingID string) (*models.Rating, error) {
	for i := range r.ratings {
		if r.ratings[i].RatingID == ratingID {
			return &r.ratings[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeRatingRepo) FindPair(ctx context.Context, userID, ratedByID string) (*models.Rating, error) {
	for i := range r.ratings {
		if r.ratings[i].UserID == userID && r.ratings[i].RatedByID == ratedByID {
			return &r.ratings[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeRatingRepo) ListByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	out := []models.Rating{}
	for _, rt := range r.ratings {
		if rt.UserID == userID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *fakeRatingRepo) ListAll(ctx context.Context) ([]models.Rating, error) {
	return append([]models.Rating{}, r.ratings...), nil
}

func (r *fakeRatingRepo) ListRecent(ctx context.Context, userID string, limit int) ([]models.Rating, error) {
	byUser, _ := r.ListByUser(ctx, userID)
	out := []models.Rating{}
	for i := len(byUser) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, byUser[i])
	}
	return out, nil
}

func (r *fakeRatingRepo) ListByLevel(ctx context.Context, userID string, level int) ([]models.Rating, error) {
	out := []models.Rating{}
	for _, rt := range r.ratings {
		if rt.UserID == userID && rt.Rating == level {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *fakeRatingRepo) Update(ctx context.Context, ratingID string, set bson.M) error {
	for i := range r.ratings {
		if r.ratings[i].RatingID == ratingID {
			if v, ok := set["rating"].(int); ok {
				r.ratings[i].Rating = v
			}
			if v, ok := set["review"].(string); ok {
				r.ratings[i].Review = v
			}
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeRatingRepo) Delete(ctx context.Context, ratingID string) error {
	for i := range r.ratings {
		if r.ratings[i].RatingID == ratingID {
			r.ratings = append(r.ratings[:i], r.ratings[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeRatingRepo) DeleteAll(ctx context.Context) (int64, error) {
	n := int64(len(r.ratings))
	r.ratings = nil
	return n, nil
}

// --- теги ---

// fakeTagRepo отдает заранее заданные выборки, запрос не интерпретирует.
type fakeTagRepo struct {
	modelTags   map[string]*models.ModelTag
	brandTags   map[string]*models.BrandTag
	projectTags []models.ProjectTag

	sampleModels   []models.ModelTag
	sampleBrands   []models.BrandTag
	sampleProjects []models.ProjectTag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{
		modelTags: map[string]*models.ModelTag{},
		brandTags: map[string]*models.BrandTag{},
	}
}

func (r *fakeTagRepo) InsertModelTag(ctx context.Context, tag *models.ModelTag) error {
	r.modelTags[tag.UserID] = tag
	return nil
}

func (r *fakeTagRepo) FindModelTag(ctx context.Context, userID string) (*models.ModelTag, error) {
	t, ok := r.modelTags[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return t, nil
}

func (r *fakeTagRepo) ListModelTags(ctx context.Context) ([]models.ModelTag, error) {
	out := []models.ModelTag{}
	for _, t := range r.modelTags {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTagRepo) UpdateModelTag(ctx context.Context, userID string, set bson.M) (*models.ModelTag, error) {
	t, ok := r.modelTags[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return t, nil
}

func (r *fakeTagRepo) DeleteModelTag(ctx context.Context, userID string) error {
	if _, ok := r.modelTags[userID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.modelTags, userID)
	return nil
}

func (r *fakeTagRepo) DeleteAllModelTags(ctx context.Context) (int64, error) {
	n := int64(len(r.modelTags))
	r.modelTags = map[string]*models.ModelTag{}
	return n, nil
}

func (r *fakeTagRepo) SampleModelTags(ctx context.Context, query bson.M, size int) ([]models.ModelTag, error) {
	return r.sampleModels, nil
}

func (r *fakeTagRepo) InsertBrandTag(ctx context.Context, tag *models.BrandTag) error {
	r.brandTags[tag.UserID] = tag
	return nil
}

func (r *fakeTagRepo) FindBrandTag(ctx context.Context, userID string) (*models.BrandTag, error) {
	t, ok := r.brandTags[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return t, nil
}

func (r *fakeTagRepo) ListBrandTags(ctx context.Context) ([]models.BrandTag, error) {
	out := []models.BrandTag{}
	for _, t := range r.brandTags {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTagRepo) UpdateBrandTag(ctx context.Context, userID string, set bson.M) (*models.BrandTag, error) {
	t, ok := r.brandTags[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return t, nil
}

func (r *fakeTagRepo) DeleteBrandTag(ctx context.Context, userID string) error {
	if _, ok := r.brandTags[userID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.brandTags, userID)
	return nil
}

func (r *fakeTagRepo) DeleteAllBrandTags(ctx context.Context) (int64, error) {
	n := int64(len(r.brandTags))
	r.brandTags = map[string]*models.BrandTag{}
	return n, nil
}

func (r *fakeTagRepo) SampleBrandTags(ctx context.Context, query bson.M, size int) ([]models.BrandTag, error) {
	return r.sampleBrands, nil
}

func (r *fakeTagRepo) InsertProjectTag(ctx context.Context, tag *models.ProjectTag) error {
	r.projectTags = append(r.projectTags, *tag)
	return nil
}

func (r *fakeTagRepo) FindProjectTag(ctx context.Context, userID, projectID string) (*models.ProjectTag, error) {
	for i := range r.projectTags {
		if r.projectTags[i].UserID == userID && r.projectTags[i].ProjectID == projectID {
			return &r.projectTags[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeTagRepo) ListProjectTagsByUser(ctx context.Context, userID string, limit int) ([]models.ProjectTag, error) {
	out := []models.ProjectTag{}
	for _, t := range r.projectTags {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTagRepo) ListProjectTags(ctx context.Context) ([]models.ProjectTag, error) {
	return append([]models.ProjectTag{}, r.projectTags...), nil
}

func (r *fakeTagRepo) UpdateProjectTag(ctx context.Context, userID, projectID string, set bson.M) (*models.ProjectTag, error) {
	return r.FindProjectTag(ctx, userID, projectID)
}

func (r *fakeTagRepo) DeleteProjectTag(ctx context.Context, userID, projectID string) error {
	for i := range r.projectTags {
		if r.projectTags[i].UserID == userID && r.projectTags[i].ProjectID == projectID {
			r.projectTags = append(r.projectTags[:i], r.projectTags[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeTagRepo) DeleteAllProjectTags(ctx context.Context) (int64, error) {
	n := int64(len(r.projectTags))
	r.projectTags = nil
	return n, nil
}

func (r *fakeTagRepo) SampleProjectTags(ctx context.Context, query bson.M, size int) ([]models.ProjectTag, error) {
	return r.sampleProjects, nil
}

func (r *fakeTagRepo) TaggedUserIDs(ctx context.Context, variant string) ([]string, error) {
	out := []string{}
	switch variant {
	case models.VariantBrand:
		for id := range r.brandTags {
			out = append(out, id)
		}
	case models.VariantProject:
		seen := map[string]bool{}
		for _, t := range r.projectTags {
			if !seen[t.UserID] {
				seen[t.UserID] = true
				out = append(out, t.UserID)
			}
		}
	default:
		for id := range r.modelTags {
			out = append(out, id)
		}
	}
	return out, nil
}

// --- предпочтения ---

type fakePrefRepo struct {
	modelProject map[string]*models.ModelProjectPreference
	brandModel   map[string]*models.BrandModelPreference
	modelBrand   map[string]*models.ModelBrandPreference
}

func newFakePrefRepo() *fakePrefRepo {
	return &fakePrefRepo{
		modelProject: map[string]*models.ModelProjectPreference{},
		brandModel:   map[string]*models.BrandModelPreference{},
		modelBrand:   map[string]*models.ModelBrandPreference{},
	}
}

func (r *fakePrefRepo) InsertModelProject(ctx context.Context, p *models.ModelProjectPreference) error {
	r.modelProject[p.UserID] = p
	return nil
}

func (r *fakePrefRepo) FindModelProject(ctx context.Context, userID string) (*models.ModelProjectPreference, error) {
	p, ok := r.modelProject[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return p, nil
}

func (r *fakePrefRepo) ListModelProject(ctx context.Context, limit int) ([]models.ModelProjectPreference, error) {
	out := []models.ModelProjectPreference{}
	for _, p := range r.modelProject {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePrefRepo) UpdateModelProject(ctx context.Context, userID string, set bson.M) (*models.ModelProjectPreference, error) {
	return r.FindModelProject(ctx, userID)
}

func (r *fakePrefRepo) DeleteModelProject(ctx context.Context, userID string) error {
	if _, ok := r.modelProject[userID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.modelProject, userID)
	return nil
}

func (r *fakePrefRepo) DeleteAllModelProject(ctx context.Context) (int64, error) {
	n := int64(len(r.modelProject))
	r.modelProject = map[string]*models.ModelProjectPreference{}
	return n, nil
}

func (r *fakePrefRepo) SampleModelProject(ctx context.Context, query bson.M, size int) ([]models.ModelProjectPreference, error) {
	return r.ListModelProject(ctx, size)
}

func (r *fakePrefRepo) InsertBrandModel(ctx context.Context, p *models.BrandModelPreference) error {
	r.brandModel[p.UserID] = p
	return nil
}

func (r *fakePrefRepo) FindBrandModel(ctx context.Context, userID string) (*models.BrandModelPreference, error) {
	p, ok := r.brandModel[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return p, nil
}

func (r *fakePrefRepo) ListBrandModel(ctx context.Context, limit int) ([]models.BrandModelPreference, error) {
	out := []models.BrandModelPreference{}
	for _, p := range r.brandModel {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePrefRepo) UpdateBrandModel(ctx context.Context, userID string, set bson.M) (*models.BrandModelPreference, error) {
	return r.FindBrandModel(ctx, userID)
}

func (r *fakePrefRepo) DeleteBrandModel(ctx context.Context, userID string) error {
	if _, ok := r.brandModel[userID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.brandModel, userID)
	return nil
}

func (r *fakePrefRepo) DeleteAllBrandModel(ctx context.Context) (int64, error) {
	n := int64(len(r.brandModel))
	r.brandModel = map[string]*models.BrandModelPreference{}
	return n, nil
}

func (r *fakePrefRepo) SampleBrandModel(ctx context.Context, query bson.M, size int) ([]models.BrandModelPreference, error) {
	return r.ListBrandModel(ctx, size)
}

func (r *fakePrefRepo) InsertModelBrand(ctx context.Context, p *models.ModelBrandPreference) error {
	r.modelBrand[p.UserID] = p
	return nil
}

func (r *fakePrefRepo) FindModelBrand(ctx context.Context, userID string) (*models.ModelBrandPreference, error) {
	p, ok := r.modelBrand[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return p, nil
}

func (r *fakePrefRepo) ListModelBrand(ctx context.Context, limit int) ([]models.ModelBrandPreference, error) {
	out := []models.ModelBrandPreference{}
	for _, p := range r.modelBrand {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePrefRepo) UpdateModelBrand(ctx context.Context, userID string, set bson.M) (*models.ModelBrandPreference, error) {
	return r.FindModelBrand(ctx, userID)
}

func (r *fakePrefRepo) DeleteModelBrand(ctx context.Context, userID string) error {
	if _, ok := r.modelBrand[userID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.modelBrand, userID)
	return nil
}

func (r *fakePrefRepo) DeleteAllModelBrand(ctx context.Context) (int64, error) {
	n := int64(len(r.modelBrand))
	r.modelBrand = map[string]*models.ModelBrandPreference{}
	return n, nil
}

func (r *fakePrefRepo) SampleModelBrand(ctx context.Context, query bson.M, size int) ([]models.ModelBrandPreference, error) {
	return r.ListModelBrand(ctx, size)
}

func (r *fakePrefRepo) PreferredUserIDs(ctx context.Context, variant string) ([]string, error) {
	out := []string{}
	switch variant {
	case models.VariantModel:
		for id := range r.brandModel {
			out = append(out, id)
		}
	case models.VariantBrand:
		for id := range r.modelBrand {
			out = append(out, id)
		}
	default:
		for id := range r.modelProject {
			out = append(out, id)
		}
	}
	return out, nil
}
