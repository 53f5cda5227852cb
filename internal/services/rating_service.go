package services

import (
	"context"
	"errors"
	"math/rand"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"modella_backend/internal/logger"
	"modella_backend/internal/models"
	"modella_backend/internal/repositories"
	"modella_backend/pkg/apperrors"
)

const recentRatingsLimit = 10

// RatingService - оценки пользователей и агрегация по ним.
type RatingService interface {
	Create(ctx context.Context, req *models.CreateRatingRequest) (*models.Rating, error)
	Get(ctx context.Context, ratingID string) (*models.Rating, error)
	ListByUser(ctx context.Context, userID string) ([]models.Rating, error)
	ListAll(ctx context.Context) ([]models.Rating, error)
	Recent(ctx context.Context, userID string) ([]models.Rating, error)
	ByLevel(ctx context.Context, userID string, level int) ([]models.Rating, error)
	Update(ctx context.Context, ratingID, actorID string, req *models.UpdateRatingRequest) (*models.Rating, error)
	Delete(ctx context.Context, ratingID, actorID string) error
	DeleteAll(ctx context.Context) (int64, error)
	GenerateRandom(ctx context.Context, count int) ([]models.Rating, error)

	// ModalRating - самый частый уровень оценок пользователя;
	// nil, если оценок нет. При равенстве частот берется высший уровень.
	ModalRating(ctx context.Context, userID string) (*int, error)
	// MatchesTarget - модальная оценка пользователя равна target.
	// Пользователи без оценок не проходят.
	MatchesTarget(ctx context.Context, userID string, target int) (bool, error)
}

type RatingServiceImpl struct {
	ratingRepo repositories.RatingRepository
	userRepo   repositories.UserRepository
	locks      *keyLock
}

func NewRatingService(ratingRepo repositories.RatingRepository, userRepo repositories.UserRepository) RatingService {
	return &RatingServiceImpl{
		ratingRepo: ratingRepo,
		userRepo:   userRepo,
		locks:      newKeyLock(),
	}
}

func (s *RatingServiceImpl) Create(ctx context.Context, req *models.CreateRatingRequest) (*models.Rating, error) {
	if req.UserID == req.RatedByID {
		return nil, apperrors.ErrSelfRatingNotAllowed
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidRatingLevel
	}

	for _, id := range []string{req.UserID, req.RatedByID} {
		exists, err := s.userRepo.Exists(id)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if !exists {
			return nil, apperrors.ErrInvalidUser
		}
	}

	s.locks.Lock("ratings:" + req.UserID + ":" + req.RatedByID)
	defer s.locks.Unlock("ratings:" + req.UserID + ":" + req.RatedByID)

	if _, err := s.ratingRepo.FindPair(ctx, req.UserID, req.RatedByID); err == nil {
		return nil, apperrors.ErrAlreadyExists(nil, "rating", "You have already rated this user")
	}

	rating := &models.Rating{
		RatingID:  primitive.NewObjectID().Hex(),
		UserID:    req.UserID,
		RatedByID: req.RatedByID,
		Rating:    req.Rating,
		Review:    req.Review,
	}

	if err := s.ratingRepo.Insert(ctx, rating); err != nil {
		if repositories.IsDuplicate(err) {
			return nil, apperrors.ErrAlreadyExists(err, "rating", "You have already rated this user")
		}
		return nil, apperrors.InternalError(err)
	}
	return rating, nil
}

func (s *RatingServiceImpl) Get(ctx context.Context, ratingID string) (*models.Rating, error) {
	rating, err := s.ratingRepo.FindByID(ctx, ratingID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rating, nil
}

func (s *RatingServiceImpl) ListByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	out, err := s.ratingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return out, nil
}

func (s *RatingServiceImpl) ListAll(ctx context.Context) ([]models.Rating, error) {
	out, err := s.ratingRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return out, nil
}

func (s *RatingServiceImpl) Recent(ctx context.Context, userID string) ([]models.Rating, error) {
	out, err := s.ratingRepo.ListRecent(ctx, userID, recentRatingsLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return out, nil
}

func (s *RatingServiceImpl) ByLevel(ctx context.Context, userID string, level int) ([]models.Rating, error) {
	if level < 1 || level > 5 {
		return nil, apperrors.ErrInvalidRatingLevel
	}
	out, err := s.ratingRepo.ListByLevel(ctx, userID, level)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return out, nil
}

func (s *RatingServiceImpl) Update(ctx context.Context, ratingID, actorID string, req *models.UpdateRatingRequest) (*models.Rating, error) {
	existing, err := s.Get(ctx, ratingID)
	if err != nil {
		return nil, err
	}
	if existing.RatedByID != actorID {
		return nil, apperrors.ErrNotRatingOwner
	}

	set := bson.M{}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, apperrors.ErrInvalidRatingLevel
		}
		set["rating"] = *req.Rating
	}
	if req.Review != nil {
		set["review"] = *req.Review
	}
	if len(set) == 0 {
		return existing, nil
	}

	if err := s.ratingRepo.Update(ctx, ratingID, set); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.Get(ctx, ratingID)
}

func (s *RatingServiceImpl) Delete(ctx context.Context, ratingID, actorID string) error {
	existing, err := s.Get(ctx, ratingID)
	if err != nil {
		return err
	}
	if existing.RatedByID != actorID {
		return apperrors.ErrNotRatingOwner
	}
	return mapDeleteErr(s.ratingRepo.Delete(ctx, ratingID))
}

func (s *RatingServiceImpl) DeleteAll(ctx context.Context) (int64, error) {
	return s.ratingRepo.DeleteAll(ctx)
}

// GenerateRandom раздает случайные оценки между существующими
// пользователями. Пары не повторяются, само-оценки пропускаются.
func (s *RatingServiceImpl) GenerateRandom(ctx context.Context, count int) ([]models.Rating, error) {
	modelIDs, err := s.userRepo.UserIDsByPrefix(models.RoleModel)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	brandIDs, err := s.userRepo.UserIDsByPrefix(models.RoleBrand)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	ids := append(modelIDs, brandIDs...)
	if len(ids) < 2 {
		return nil, apperrors.ErrInvalidOperation("rating", "Not enough users to generate ratings")
	}

	seen := map[string]bool{}
	generated := []models.Rating{}
	// Ограничение попыток на случай, когда свободных пар меньше count.
	for attempts := 0; len(generated) < count && attempts < count*20; attempts++ {
		userID := ids[rand.Intn(len(ids))]
		ratedByID := ids[rand.Intn(len(ids))]
		if userID == ratedByID {
			continue
		}
		pair := userID + ":" + ratedByID
		if seen[pair] {
			continue
		}
		if _, err := s.ratingRepo.FindPair(ctx, userID, ratedByID); err == nil {
			seen[pair] = true
			continue
		}
		seen[pair] = true

		level := rand.Intn(5) + 1
		generated = append(generated, models.Rating{
			RatingID:  primitive.NewObjectID().Hex(),
			UserID:    userID,
			RatedByID: ratedByID,
			Rating:    level,
			Review:    models.RatingReviewMap[level],
		})
	}

	if err := s.ratingRepo.InsertMany(ctx, generated); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "generated random ratings", "count", len(generated))
	return generated, nil
}

func (s *RatingServiceImpl) ModalRating(ctx context.Context, userID string) (*int, error) {
	ratings, err := s.ratingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(ratings) == 0 {
		return nil, nil
	}

	counts := map[int]int{}
	for _, r := range ratings {
		counts[r.Rating]++
	}

	modal, best := 0, 0
	for level := 1; level <= 5; level++ {
		// При равных частотах побеждает высший уровень.
		if counts[level] >= best && counts[level] > 0 {
			modal, best = level, counts[level]
		}
	}
	return &modal, nil
}

func (s *RatingServiceImpl) MatchesTarget(ctx context.Context, userID string, target int) (bool, error) {
	modal, err := s.ModalRating(ctx, userID)
	if err != nil {
		return false, err
	}
	return modal != nil && *modal == target, nil
}
