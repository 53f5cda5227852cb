package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modella_backend/internal/models"
	"modella_backend/internal/tagvalidate"
)

func TestUnusedTagUserIDs(t *testing.T) {
	users := newFakeUserRepo("model1", "model2", "model3", "model4", "brand1")
	tagRepo := newFakeTagRepo()
	tagRepo.modelTags["model2"] = &models.ModelTag{UserID: "model2"}
	tagRepo.modelTags["model3"] = &models.ModelTag{UserID: "model3"}

	svc := NewGeneratorService(users, tagRepo, newFakePrefRepo())

	free, err := svc.UnusedTagUserIDs(context.Background(), models.VariantModel)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"model1", "model4"}, free)
}

func TestUnusedTagUserIDsEmptySetIsNotError(t *testing.T) {
	users := newFakeUserRepo("model1")
	tagRepo := newFakeTagRepo()
	tagRepo.modelTags["model1"] = &models.ModelTag{UserID: "model1"}

	svc := NewGeneratorService(users, tagRepo, newFakePrefRepo())

	free, err := svc.UnusedTagUserIDs(context.Background(), models.VariantModel)
	require.NoError(t, err)
	assert.Empty(t, free)
}

func TestUnusedPreferenceUserIDsOwnerIsOppositeRole(t *testing.T) {
	// Вариант "Model" - моделей ищут бренды, свободные владельцы - бренды.
	users := newFakeUserRepo("model1", "brand1", "brand2")
	prefRepo := newFakePrefRepo()
	prefRepo.brandModel["brand1"] = &models.BrandModelPreference{UserID: "brand1"}

	svc := NewGeneratorService(users, newFakeTagRepo(), prefRepo)

	free, err := svc.UnusedPreferenceUserIDs(context.Background(), models.VariantModel)
	require.NoError(t, err)
	assert.Equal(t, []string{"brand2"}, free)
}

func TestGenerateModelTagsStopsWhenExhausted(t *testing.T) {
	users := newFakeUserRepo("model1", "model2")
	tagRepo := newFakeTagRepo()

	svc := NewGeneratorService(users, tagRepo, newFakePrefRepo())

	n, err := svc.GenerateTags(context.Background(), &models.GenerateRandomRequest{
		Count:   10,
		TagType: models.VariantModel,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, tagRepo.modelTags, 2)
}

func TestGeneratedModelTagsPassValidation(t *testing.T) {
	users := newFakeUserRepo("model1", "model2", "model3")
	tagRepo := newFakeTagRepo()

	svc := NewGeneratorService(users, tagRepo, newFakePrefRepo())

	_, err := svc.GenerateTags(context.Background(), &models.GenerateRandomRequest{
		Count:   3,
		TagType: models.VariantModel,
	})
	require.NoError(t, err)

	for _, tag := range tagRepo.modelTags {
		assert.Equal(t, models.ClientTypeModel, tag.ClientType)
		assert.NoError(t, tagvalidate.ValidateModelTag(tag))
	}
}

func TestGeneratedProjectTagsPassValidation(t *testing.T) {
	users := newFakeUserRepo("brand1")
	tagRepo := newFakeTagRepo()

	svc := NewGeneratorService(users, tagRepo, newFakePrefRepo())

	n, err := svc.GenerateTags(context.Background(), &models.GenerateRandomRequest{
		Count:   3,
		TagType: models.VariantProject,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for i := range tagRepo.projectTags {
		tag := &tagRepo.projectTags[i]
		assert.True(t, tag.IsProject)
		assert.Contains(t, tag.ProjectID, "project_")
		assert.NoError(t, tagvalidate.ValidateProjectTag(tag))
	}
}

func TestGeneratePreferencesForSearchedVariant(t *testing.T) {
	users := newFakeUserRepo("model1", "model2", "brand1", "brand2")
	prefRepo := newFakePrefRepo()

	svc := NewGeneratorService(users, newFakeTagRepo(), prefRepo)

	// Вариант "Project": проекты ищут модели.
	n, err := svc.GeneratePreferences(context.Background(), &models.GenerateRandomRequest{
		Count:   10,
		TagType: models.VariantProject,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, prefRepo.modelProject, 2)

	for _, p := range prefRepo.modelProject {
		assert.NoError(t, tagvalidate.ValidateModelProjectPreference(p))
	}
}

func TestGenerateTagsUnknownVariant(t *testing.T) {
	svc := NewGeneratorService(newFakeUserRepo(), newFakeTagRepo(), newFakePrefRepo())

	_, err := svc.GenerateTags(context.Background(), &models.GenerateRandomRequest{
		Count:   1,
		TagType: "Sponsor",
	})
	assert.Error(t, err)
}

func TestGenerateUsersRejectsUnknownRole(t *testing.T) {
	svc := NewGeneratorService(newFakeUserRepo(), newFakeTagRepo(), newFakePrefRepo())

	_, err := svc.GenerateUsers(context.Background(), 3, "agency")
	assert.Error(t, err)
}

func TestGenerateUsers(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewGeneratorService(users, newFakeTagRepo(), newFakePrefRepo())

	created, err := svc.GenerateUsers(context.Background(), 3, models.RoleModel)
	require.NoError(t, err)
	require.Len(t, created, 3)

	for _, u := range created {
		assert.Regexp(t, `^model\d+$`, u.UserID)
		assert.Equal(t, models.RoleModel, u.Role)
		assert.NotEmpty(t, u.Name)
		assert.NotEmpty(t, u.PasswordHash)
	}
}
