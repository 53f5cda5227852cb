package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"modella_backend/internal/auth"
	"modella_backend/internal/keywords"
	"modella_backend/internal/logger"
	"modella_backend/internal/models"
	"modella_backend/internal/repositories"
	"modella_backend/internal/tagvalidate"
	"modella_backend/pkg/apperrors"
)

/*
GeneratorService - синтетические данные для наполнения стенда:
пользователи, теги, предпочтения. Владельцы новых тегов и
предпочтений берутся из множества "свободных" user_Id -
зарегистрированных, но еще не имеющих записи данного вида.
*/

type GeneratorService interface {
	GenerateUsers(ctx context.Context, count int, role string) ([]models.User, error)
	// GenerateTags - теги варианта req.TagType для свободных user_Id.
	GenerateTags(ctx context.Context, req *models.GenerateRandomRequest) (int, error)
	GeneratePreferences(ctx context.Context, req *models.GenerateRandomRequest) (int, error)
	// UnusedTagUserIDs - user_Id с нужным префиксом роли без тега варианта.
	UnusedTagUserIDs(ctx context.Context, variant string) ([]string, error)
	UnusedPreferenceUserIDs(ctx context.Context, variant string) ([]string, error)
}

type GeneratorServiceImpl struct {
	userRepo repositories.UserRepository
	tagRepo  repositories.TagRepository
	prefRepo repositories.PreferenceRepository
	fake     faker.Faker
}

func NewGeneratorService(userRepo repositories.UserRepository, tagRepo repositories.TagRepository, prefRepo repositories.PreferenceRepository) GeneratorService {
	return &GeneratorServiceImpl{
		userRepo: userRepo,
		tagRepo:  tagRepo,
		prefRepo: prefRepo,
		fake:     faker.New(),
	}
}

func (s *GeneratorServiceImpl) GenerateUsers(ctx context.Context, count int, role string) ([]models.User, error) {
	if role != models.RoleModel && role != models.RoleBrand {
		return nil, apperrors.ErrInvalidOperation("generator", "role must be 'model' or 'brand'")
	}

	created := []models.User{}
	for attempts := 0; len(created) < count && attempts < count*20; attempts++ {
		userID := fmt.Sprintf("%s%d", role, rand.Intn(900000)+100000)
		exists, err := s.userRepo.Exists(userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if exists {
			continue
		}

		hash, err := auth.HashPassword(s.fake.Internet().Password())
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user := models.User{
			UserID:       userID,
			Name:         s.fake.Person().Name(),
			Email:        fmt.Sprintf("%s_%s", userID, s.fake.Internet().Email()),
			PasswordHash: hash,
			Role:         role,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.userRepo.Create(&user); err != nil {
			continue
		}
		created = append(created, user)
	}

	logger.CtxInfo(ctx, "generated users", "role", role, "count", len(created))
	return created, nil
}

func (s *GeneratorServiceImpl) GenerateTags(ctx context.Context, req *models.GenerateRandomRequest) (int, error) {
	switch req.TagType {
	case models.VariantModel:
		return s.generateModelTags(ctx, req.Count)
	case models.VariantBrand:
		return s.generateBrandTags(ctx, req.Count)
	case models.VariantProject:
		return s.generateProjectTags(ctx, req.Count)
	default:
		return 0, apperrors.ErrInvalidOperation("generator", "tag_type must be Model, Brand or Project")
	}
}

func (s *GeneratorServiceImpl) GeneratePreferences(ctx context.Context, req *models.GenerateRandomRequest) (int, error) {
	switch req.TagType {
	case models.VariantModel, models.VariantBrand, models.VariantProject:
	default:
		return 0, apperrors.ErrInvalidOperation("generator", "tag_type must be Model, Brand or Project")
	}

	free, err := s.UnusedPreferenceUserIDs(ctx, req.TagType)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for i := 0; i < req.Count && i < len(free); i++ {
		userID := free[i]
		var insErr error
		switch req.TagType {
		case models.VariantModel:
			// Ищут моделей - бренды.
			insErr = s.prefRepo.InsertBrandModel(ctx, randomBrandModelPreference(userID))
		case models.VariantBrand:
			insErr = s.prefRepo.InsertModelBrand(ctx, randomModelBrandPreference(userID))
		case models.VariantProject:
			insErr = s.prefRepo.InsertModelProject(ctx, randomModelProjectPreference(userID))
		}
		if insErr != nil {
			if repositories.IsDuplicate(insErr) {
				continue
			}
			return inserted, apperrors.InternalError(insErr)
		}
		inserted++
	}

	logger.CtxInfo(ctx, "generated preferences", "variant", req.TagType, "count", inserted)
	return inserted, nil
}

func (s *GeneratorServiceImpl) generateModelTags(ctx context.Context, count int) (int, error) {
	free, err := s.UnusedTagUserIDs(ctx, models.VariantModel)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for i := 0; i < count && i < len(free); i++ {
		tag := randomModelTag(free[i])
		if err := s.tagRepo.InsertModelTag(ctx, tag); err != nil {
			if repositories.IsDuplicate(err) {
				continue
			}
			return inserted, apperrors.InternalError(err)
		}
		inserted++
	}
	logger.CtxInfo(ctx, "generated model tags", "count", inserted)
	return inserted, nil
}

func (s *GeneratorServiceImpl) generateBrandTags(ctx context.Context, count int) (int, error) {
	free, err := s.UnusedTagUserIDs(ctx, models.VariantBrand)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for i := 0; i < count && i < len(free); i++ {
		tag := randomBrandTag(free[i])
		if err := s.tagRepo.InsertBrandTag(ctx, tag); err != nil {
			if repositories.IsDuplicate(err) {
				continue
			}
			return inserted, apperrors.InternalError(err)
		}
		inserted++
	}
	logger.CtxInfo(ctx, "generated brand tags", "count", inserted)
	return inserted, nil
}

func (s *GeneratorServiceImpl) generateProjectTags(ctx context.Context, count int) (int, error) {
	// Проектов у бренда может быть несколько, исключение не нужно.
	owners, err := s.userRepo.UserIDsByPrefix(models.RoleBrand)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	if len(owners) == 0 {
		return 0, nil
	}

	inserted := 0
	for i := 0; i < count; i++ {
		tag := randomProjectTag(owners[rand.Intn(len(owners))])
		if err := s.tagRepo.InsertProjectTag(ctx, tag); err != nil {
			if repositories.IsDuplicate(err) {
				continue
			}
			return inserted, apperrors.InternalError(err)
		}
		inserted++
	}
	logger.CtxInfo(ctx, "generated project tags", "count", inserted)
	return inserted, nil
}

func (s *GeneratorServiceImpl) UnusedTagUserIDs(ctx context.Context, variant string) ([]string, error) {
	taken, err := s.tagRepo.TaggedUserIDs(ctx, variant)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.freeUserIDs(tagvalidate.RolePrefixFor(variant), taken)
}

func (s *GeneratorServiceImpl) UnusedPreferenceUserIDs(ctx context.Context, variant string) ([]string, error) {
	taken, err := s.prefRepo.PreferredUserIDs(ctx, variant)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.freeUserIDs(preferenceOwnerPrefix(variant), taken)
}

// freeUserIDs - зарегистрированные user_Id с данным префиксом минус
// занятые. Пустой результат - не ошибка.
func (s *GeneratorServiceImpl) freeUserIDs(prefix string, taken []string) ([]string, error) {
	all, err := s.userRepo.UserIDsByPrefix(prefix)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	takenSet := make(map[string]bool, len(taken))
	for _, id := range taken {
		takenSet[id] = true
	}

	free := []string{}
	for _, id := range all {
		if !takenSet[id] {
			free = append(free, id)
		}
	}
	return free, nil
}

// preferenceOwnerPrefix - роль владельца предпочтения. Вариант
// именуется по искомой стороне, владелец - противоположная роль.
func preferenceOwnerPrefix(variant string) string {
	if variant == models.VariantModel {
		return models.RoleBrand
	}
	return models.RoleModel
}

// --- случайные значения ---

func pick(category string) string {
	values := keywords.Get(category)
	return values[rand.Intn(len(values))]
}

func pickSet(category string, n int) []string {
	values := keywords.Get(category)
	rand.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	if n > len(values) {
		n = len(values)
	}
	return values[:n]
}

func randInt(min, max int) int {
	return min + rand.Intn(max-min+1)
}

func randRange(min, max int) *models.IntRange {
	lo := randInt(min, max-5)
	hi := randInt(lo, max)
	return models.NewIntRange(lo, hi)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func randomModelTag(userID string) *models.ModelTag {
	return &models.ModelTag{
		ClientType:      models.ClientTypeModel,
		UserID:          userID,
		Age:             intPtr(randInt(18, 60)),
		Height:          intPtr(randInt(150, 191)),
		NaturalEyeColor: strPtr(pick(keywords.EyeColors)),
		BodyType:        strPtr(pick(keywords.BodyTypes)),
		WorkField:       pickSet(keywords.WorkFields, randInt(1, 3)),
		SkinTone:        strPtr(pick(keywords.SkinTones)),
		Ethnicity:       strPtr(pick(keywords.Ethnicities)),
		NaturalHairType: strPtr(pick(keywords.HairTypes)),
		ExperienceLevel: strPtr(pick(keywords.ExperienceLevels)),
		Gender:          strPtr(pick(keywords.Genders)),
		Location:        strPtr(pick(keywords.Locations)),
		ShoeSize:        intPtr(randInt(36, 47)),
		BustChest:       intPtr(randInt(75, 110)),
		Waist:           intPtr(randInt(55, 90)),
		Hips:            intPtr(randInt(65, 105)),
		SavedTime:       time.Now().UTC(),
	}
}

func randomBrandTag(userID string) *models.BrandTag {
	return &models.BrandTag{
		ClientType: models.ClientTypeBrand,
		UserID:     userID,
		IsProject:  false,
		WorkField:  pickSet(keywords.WorkFields, randInt(1, 3)),
		Location:   strPtr(pick(keywords.Locations)),
		SavedTime:  time.Now().UTC(),
	}
}

func randomSearchAttributes() models.SearchAttributes {
	return models.SearchAttributes{
		Age:             randRange(18, 60),
		Height:          randRange(150, 191),
		NaturalEyeColor: pickSet(keywords.EyeColors, randInt(1, 3)),
		BodyType:        pickSet(keywords.BodyTypes, randInt(1, 3)),
		WorkField:       pickSet(keywords.WorkFields, randInt(1, 3)),
		SkinTone:        pickSet(keywords.SkinTones, randInt(1, 3)),
		Ethnicity:       pickSet(keywords.Ethnicities, randInt(1, 3)),
		NaturalHairType: pickSet(keywords.HairTypes, randInt(1, 3)),
		ExperienceLevel: pickSet(keywords.ExperienceLevels, randInt(1, 2)),
		Gender:          pickSet(keywords.Genders, randInt(1, 2)),
		ShoeSize:        randRange(36, 47),
		BustChest:       randRange(75, 110),
		Waist:           randRange(55, 90),
		Hips:            randRange(65, 105),
	}
}

func randomProjectTag(userID string) *models.ProjectTag {
	return &models.ProjectTag{
		ClientType:       models.ClientTypeBrand,
		ProjectID:        "project_" + primitive.NewObjectID().Hex(),
		UserID:           userID,
		IsProject:        true,
		SearchAttributes: randomSearchAttributes(),
		Location:         strPtr(pick(keywords.Locations)),
		SavedTime:        time.Now().UTC(),
	}
}

func randomModelProjectPreference(userID string) *models.ModelProjectPreference {
	return &models.ModelProjectPreference{
		ClientType:       models.ClientTypeModel,
		UserID:           userID,
		IsProject:        true,
		SearchAttributes: randomSearchAttributes(),
		Location:         pickSet(keywords.Locations, randInt(1, 3)),
		SavedTime:        time.Now().UTC(),
	}
}

func randomBrandModelPreference(userID string) *models.BrandModelPreference {
	return &models.BrandModelPreference{
		ClientType:       models.ClientTypeBrand,
		UserID:           userID,
		SearchAttributes: randomSearchAttributes(),
		Location:         pickSet(keywords.Locations, randInt(1, 3)),
		RatingLevel:      intPtr(randInt(1, 5)),
		SavedTime:        time.Now().UTC(),
	}
}

func randomModelBrandPreference(userID string) *models.ModelBrandPreference {
	return &models.ModelBrandPreference{
		ClientType:  models.ClientTypeModel,
		UserID:      userID,
		WorkField:   pickSet(keywords.WorkFields, randInt(1, 3)),
		Location:    pickSet(keywords.Locations, randInt(1, 3)),
		RatingLevel: intPtr(randInt(1, 5)),
		SavedTime:   time.Now().UTC(),
	}
}
