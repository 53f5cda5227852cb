package services

import (
	"context"
	"errors"

	"modella_backend/internal/logger"
	"modella_backend/internal/models"
	"modella_backend/internal/query"
	"modella_backend/internal/repositories"
	"modella_backend/pkg/apperrors"
)

/*
MatchingService - кросс-ролевой подбор: предпочтение пользователя
компилируется в запрос по тегам противоположной роли, выборка идет
случайной подвыборкой. rating_level предпочтения применяется
ПОСЛЕ выборки - сравнением с модальной оценкой кандидата;
кандидаты без оценок отбрасываются.
*/

type MatchingService interface {
	// MatchProjectsForModel - project_Id проектов под предпочтение модели.
	MatchProjectsForModel(ctx context.Context, userID string) ([]string, error)
	// MatchModelsForBrand - user_Id моделей под предпочтение бренда.
	MatchModelsForBrand(ctx context.Context, userID string) ([]string, error)
	// MatchBrandsForModel - user_Id брендов под предпочтение модели.
	MatchBrandsForModel(ctx context.Context, userID string) ([]string, error)
}

type MatchingServiceImpl struct {
	tagRepo    repositories.TagRepository
	prefRepo   repositories.PreferenceRepository
	ratings    RatingService
	sampleSize int
}

func NewMatchingService(tagRepo repositories.TagRepository, prefRepo repositories.PreferenceRepository, ratings RatingService, sampleSize int) MatchingService {
	return &MatchingServiceImpl{
		tagRepo:    tagRepo,
		prefRepo:   prefRepo,
		ratings:    ratings,
		sampleSize: sampleSize,
	}
}

func (s *MatchingServiceImpl) MatchProjectsForModel(ctx context.Context, userID string) ([]string, error) {
	pref, err := s.prefRepo.FindModelProject(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// user_Id владельца в кросс-запрос не входит: он идентифицирует
	// ищущего, а не искомого.
	f := &models.ModelProjectPreferenceFilter{
		SearchAttributes: pref.SearchAttributes,
		Location:         pref.Location,
	}
	q := query.CompileProjectSearch(f)
	logger.CtxDebug(ctx, "compiled project search", "user_Id", userID, "query", q)

	tags, err := s.tagRepo.SampleProjectTags(ctx, q, s.sampleSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := []string{}
	for _, t := range tags {
		ids = append(ids, t.ProjectID)
	}
	return ids, nil
}

func (s *MatchingServiceImpl) MatchModelsForBrand(ctx context.Context, userID string) ([]string, error) {
	pref, err := s.prefRepo.FindBrandModel(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	f := &models.BrandModelPreferenceFilter{
		SearchAttributes: pref.SearchAttributes,
		Location:         pref.Location,
		RatingLevel:      pref.RatingLevel,
	}
	q, err := query.CompileModelSearch(f)
	if err != nil {
		return nil, err
	}
	logger.CtxDebug(ctx, "compiled model search", "user_Id", userID, "query", q)

	tags, err := s.tagRepo.SampleModelTags(ctx, q, s.sampleSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := []string{}
	for _, t := range tags {
		ids = append(ids, t.UserID)
	}
	return s.filterByRating(ctx, ids, pref.RatingLevel)
}

func (s *MatchingServiceImpl) MatchBrandsForModel(ctx context.Context, userID string) ([]string, error) {
	pref, err := s.prefRepo.FindModelBrand(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	f := &models.ModelBrandPreferenceFilter{
		WorkField:   pref.WorkField,
		Location:    pref.Location,
		RatingLevel: pref.RatingLevel,
	}
	q, err := query.CompileBrandSearch(f)
	if err != nil {
		return nil, err
	}
	logger.CtxDebug(ctx, "compiled brand search", "user_Id", userID, "query", q)

	tags, err := s.tagRepo.SampleBrandTags(ctx, q, s.sampleSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := []string{}
	for _, t := range tags {
		ids = append(ids, t.UserID)
	}
	return s.filterByRating(ctx, ids, pref.RatingLevel)
}

// filterByRating оставляет кандидатов с модальной оценкой target.
// Без target возвращает всех.
func (s *MatchingServiceImpl) filterByRating(ctx context.Context, ids []string, target *int) ([]string, error) {
	if target == nil {
		return ids, nil
	}
	out := []string{}
	for _, id := range ids {
		ok, err := s.ratings.MatchesTarget(ctx, id, *target)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, id)
		}
	}
	return out, nil
}
