package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modella_backend/internal/models"
	"modella_backend/pkg/apperrors"
)

func seedRatings(repo *fakeRatingRepo, userID string, levels ...int) {
	for i, level := range levels {
		repo.ratings = append(repo.ratings, models.Rating{
			RatingID:  userID + "-r" + string(rune('a'+i)),
			UserID:    userID,
			RatedByID: "brand999",
			Rating:    level,
		})
	}
}

func TestModalRatingPicksMostFrequent(t *testing.T) {
	repo := &fakeRatingRepo{}
	seedRatings(repo, "model1", 5, 5, 5, 3, 1)
	svc := NewRatingService(repo, newFakeUserRepo())

	modal, err := svc.ModalRating(context.Background(), "model1")
	require.NoError(t, err)
	require.NotNil(t, modal)
	assert.Equal(t, 5, *modal)
}

func TestModalRatingTieTakesHighestLevel(t *testing.T) {
	repo := &fakeRatingRepo{}
	seedRatings(repo, "model1", 2, 2, 5, 5)
	svc := NewRatingService(repo, newFakeUserRepo())

	modal, err := svc.ModalRating(context.Background(), "model1")
	require.NoError(t, err)
	require.NotNil(t, modal)
	assert.Equal(t, 5, *modal)
}

func TestModalRatingNoRatings(t *testing.T) {
	svc := NewRatingService(&fakeRatingRepo{}, newFakeUserRepo())

	modal, err := svc.ModalRating(context.Background(), "model1")
	require.NoError(t, err)
	assert.Nil(t, modal)
}

func TestMatchesTarget(t *testing.T) {
	repo := &fakeRatingRepo{}
	seedRatings(repo, "model1", 4, 4, 2)
	svc := NewRatingService(repo, newFakeUserRepo())

	ok, err := svc.MatchesTarget(context.Background(), "model1", 4)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.MatchesTarget(context.Background(), "model1", 5)
	require.NoError(t, err)
	assert.False(t, ok)

	// Без оценок кандидат не проходит.
	ok, err = svc.MatchesTarget(context.Background(), "model2", 4)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateRatingRejectsSelfRating(t *testing.T) {
	svc := NewRatingService(&fakeRatingRepo{}, newFakeUserRepo("model1"))

	_, err := svc.Create(context.Background(), &models.CreateRatingRequest{
		UserID:    "model1",
		RatedByID: "model1",
		Rating:    5,
	})
	assert.ErrorIs(t, err, apperrors.ErrSelfRatingNotAllowed)
}

func TestCreateRatingRejectsBadLevel(t *testing.T) {
	svc := NewRatingService(&fakeRatingRepo{}, newFakeUserRepo("model1", "brand1"))

	for _, level := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), &models.CreateRatingRequest{
			UserID:    "model1",
			RatedByID: "brand1",
			Rating:    level,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRatingLevel)
	}
}

func TestCreateRatingRejectsUnknownUser(t *testing.T) {
	svc := NewRatingService(&fakeRatingRepo{}, newFakeUserRepo("brand1"))

	_, err := svc.Create(context.Background(), &models.CreateRatingRequest{
		UserID:    "model1",
		RatedByID: "brand1",
		Rating:    4,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUser)
}

func TestCreateRatingRejectsDuplicatePair(t *testing.T) {
	svc := NewRatingService(&fakeRatingRepo{}, newFakeUserRepo("model1", "brand1"))
	ctx := context.Background()

	first, err := svc.Create(ctx, &models.CreateRatingRequest{
		UserID:    "model1",
		RatedByID: "brand1",
		Rating:    4,
		Review:    "good work",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.RatingID)

	_, err = svc.Create(ctx, &models.CreateRatingRequest{
		UserID:    "model1",
		RatedByID: "brand1",
		Rating:    2,
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestUpdateRatingOnlyByAuthor(t *testing.T) {
	svc := NewRatingService(&fakeRatingRepo{}, newFakeUserRepo("model1", "brand1"))
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateRatingRequest{
		UserID:    "model1",
		RatedByID: "brand1",
		Rating:    3,
	})
	require.NoError(t, err)

	newLevel := 5
	_, err = svc.Update(ctx, created.RatingID, "brand2", &models.UpdateRatingRequest{Rating: &newLevel})
	assert.ErrorIs(t, err, apperrors.ErrNotRatingOwner)

	updated, err := svc.Update(ctx, created.RatingID, "brand1", &models.UpdateRatingRequest{Rating: &newLevel})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
}

func TestDeleteRatingOnlyByAuthor(t *testing.T) {
	svc := NewRatingService(&fakeRatingRepo{}, newFakeUserRepo("model1", "brand1"))
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateRatingRequest{
		UserID:    "model1",
		RatedByID: "brand1",
		Rating:    3,
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, created.RatingID, "model1")
	assert.ErrorIs(t, err, apperrors.ErrNotRatingOwner)

	require.NoError(t, svc.Delete(ctx, created.RatingID, "brand1"))

	_, err = svc.Get(ctx, created.RatingID)
	assert.Error(t, err)
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	repo := &fakeRatingRepo{}
	seedRatings(repo, "model1", 1, 2, 3, 4, 5, 1, 2, 3, 4, 5, 1, 2)
	svc := NewRatingService(repo, newFakeUserRepo())

	recent, err := svc.Recent(context.Background(), "model1")
	require.NoError(t, err)
	require.Len(t, recent, 10)
	assert.Equal(t, 2, recent[0].Rating)
	assert.Equal(t, 1, recent[1].Rating)
}

func TestGenerateRandomRatings(t *testing.T) {
	repo := &fakeRatingRepo{}
	users := newFakeUserRepo("model1", "model2", "brand1", "brand2")
	svc := NewRatingService(repo, users)

	generated, err := svc.GenerateRandom(context.Background(), 5)
	require.NoError(t, err)
	assert.NotEmpty(t, generated)

	seen := map[string]bool{}
	for _, r := range generated {
		assert.NotEqual(t, r.UserID, r.RatedByID)
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
		assert.Equal(t, models.RatingReviewMap[r.Rating], r.Review)

		pair := r.UserID + ":" + r.RatedByID
		assert.False(t, seen[pair], "duplicate pair %s", pair)
		seen[pair] = true
	}
}

func TestGenerateRandomNeedsTwoUsers(t *testing.T) {
	svc := NewRatingService(&fakeRatingRepo{}, newFakeUserRepo("model1"))

	_, err := svc.GenerateRandom(context.Background(), 3)
	assert.Error(t, err)
}
