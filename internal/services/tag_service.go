package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"modella_backend/internal/logger"
	"modella_backend/internal/models"
	"modella_backend/internal/query"
	"modella_backend/internal/repositories"
	"modella_backend/internal/tagvalidate"
	"modella_backend/pkg/apperrors"
)

// TagService - CRUD и фильтрация тегов трех вариантов.
type TagService interface {
	CreateModelTag(ctx context.Context, tag *models.ModelTag) (*models.ModelTag, error)
	GetModelTag(ctx context.Context, userID string) (*models.ModelTag, error)
	ListModelTags(ctx context.Context) ([]models.ModelTag, error)
	UpdateModelTag(ctx context.Context, userID string, upd *models.ModelTagUpdate) (*models.ModelTag, error)
	DeleteModelTag(ctx context.Context, userID string) error
	DeleteAllModelTags(ctx context.Context) (int64, error)
	FilterModelTags(ctx context.Context, f *models.ModelTagFilter) ([]models.ModelTag, error)

	CreateBrandTag(ctx context.Context, tag *models.BrandTag) (*models.BrandTag, error)
	GetBrandTag(ctx context.Context, userID string) (*models.BrandTag, error)
	ListBrandTags(ctx context.Context) ([]models.BrandTag, error)
	UpdateBrandTag(ctx context.Context, userID string, upd *models.BrandTagUpdate) (*models.BrandTag, error)
	DeleteBrandTag(ctx context.Context, userID string) error
	DeleteAllBrandTags(ctx context.Context) (int64, error)
	FilterBrandTags(ctx context.Context, f *models.BrandTagFilter) ([]models.BrandTag, error)

	CreateProjectTag(ctx context.Context, tag *models.ProjectTag) (*models.ProjectTag, error)
	GetProjectTag(ctx context.Context, userID, projectID string) (*models.ProjectTag, error)
	GetProjectTagsByUser(ctx context.Context, userID string) ([]models.ProjectTag, error)
	ListProjectTags(ctx context.Context) ([]models.ProjectTag, error)
	UpdateProjectTag(ctx context.Context, userID, projectID string, upd *models.ProjectTagUpdate) (*models.ProjectTag, error)
	DeleteProjectTag(ctx context.Context, userID, projectID string) error
	DeleteAllProjectTags(ctx context.Context) (int64, error)
	FilterProjectTags(ctx context.Context, f *models.ProjectTagFilter) ([]models.ProjectTag, error)
}

type TagServiceImpl struct {
	tagRepo    repositories.TagRepository
	userRepo   repositories.UserRepository
	locks      *keyLock
	sampleSize int
}

func NewTagService(tagRepo repositories.TagRepository, userRepo repositories.UserRepository, sampleSize int) TagService {
	return &TagServiceImpl{
		tagRepo:    tagRepo,
		userRepo:   userRepo,
		locks:      newKeyLock(),
		sampleSize: sampleSize,
	}
}

// requireUser проверяет существование user_Id в хранилище пользователей.
func (s *TagServiceImpl) requireUser(userID string) error {
	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !exists {
		return apperrors.ErrInvalidUser
	}
	return nil
}

// --- теги моделей ---

func (s *TagServiceImpl) CreateModelTag(ctx context.Context, tag *models.ModelTag) (*models.ModelTag, error) {
	if err := tagvalidate.ValidateOwnerRole(tag.UserID, models.RoleModel); err != nil {
		return nil, err
	}
	if err := s.requireUser(tag.UserID); err != nil {
		return nil, err
	}

	s.locks.Lock("model_tags:" + tag.UserID)
	defer s.locks.Unlock("model_tags:" + tag.UserID)

	if _, err := s.tagRepo.FindModelTag(ctx, tag.UserID); err == nil {
		return nil, apperrors.ErrAlreadyExists(nil, "tags", "Tag for this user_Id already exists")
	}

	tag.ClientType = models.ClientTypeModel
	if tag.SavedTime.IsZero() {
		tag.SavedTime = time.Now().UTC()
	}
	if err := tagvalidate.ValidateModelTag(tag); err != nil {
		return nil, err
	}

	if err := s.tagRepo.InsertModelTag(ctx, tag); err != nil {
		if repositories.IsDuplicate(err) {
			return nil, apperrors.ErrAlreadyExists(err, "tags", "Tag for this user_Id already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return tag, nil
}

func (s *TagServiceImpl) GetModelTag(ctx context.Context, userID string) (*models.ModelTag, error) {
	tag, err := s.tagRepo.FindModelTag(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tag, nil
}

func (s *TagServiceImpl) ListModelTags(ctx context.Context) ([]models.ModelTag, error) {
	tags, err := s.tagRepo.ListModelTags(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tags, nil
}

func (s *TagServiceImpl) UpdateModelTag(ctx context.Context, userID string, upd *models.ModelTagUpdate) (*models.ModelTag, error) {
	s.locks.Lock("model_tags:" + userID)
	defer s.locks.Unlock("model_tags:" + userID)

	existing, err := s.GetModelTag(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Валидируется слитая запись, а не один лишь патч.
	merged := *existing
	upd.ApplyTo(&merged)
	if err := tagvalidate.ValidateModelTag(&merged); err != nil {
		return nil, err
	}

	set := upd.SetDoc()
	if len(set) == 0 {
		return existing, nil
	}

	updated, err := s.tagRepo.UpdateModelTag(ctx, userID, set)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *TagServiceImpl) DeleteModelTag(ctx context.Context, userID string) error {
	return mapDeleteErr(s.tagRepo.DeleteModelTag(ctx, userID))
}

func (s *TagServiceImpl) DeleteAllModelTags(ctx context.Context) (int64, error) {
	return s.tagRepo.DeleteAllModelTags(ctx)
}

func (s *TagServiceImpl) FilterModelTags(ctx context.Context, f *models.ModelTagFilter) ([]models.ModelTag, error) {
	q := query.CompileModelTagFilter(f)
	logger.CtxDebug(ctx, "compiled model tag query", "query", q)
	tags, err := s.tagRepo.SampleModelTags(ctx, q, s.sampleSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tags, nil
}

// --- теги брендов ---

func (s *TagServiceImpl) CreateBrandTag(ctx context.Context, tag *models.BrandTag) (*models.BrandTag, error) {
	if err := tagvalidate.ValidateOwnerRole(tag.UserID, models.RoleBrand); err != nil {
		return nil, err
	}
	if err := s.requireUser(tag.UserID); err != nil {
		return nil, err
	}

	s.locks.Lock("brand_tags:" + tag.UserID)
	defer s.locks.Unlock("brand_tags:" + tag.UserID)

	if _, err := s.tagRepo.FindBrandTag(ctx, tag.UserID); err == nil {
		return nil, apperrors.ErrAlreadyExists(nil, "tags", "Tag for this user_Id already exists")
	}

	tag.ClientType = models.ClientTypeBrand
	tag.IsProject = false
	if tag.SavedTime.IsZero() {
		tag.SavedTime = time.Now().UTC()
	}
	if err := tagvalidate.ValidateBrandTag(tag); err != nil {
		return nil, err
	}

	if err := s.tagRepo.InsertBrandTag(ctx, tag); err != nil {
		if repositories.IsDuplicate(err) {
			return nil, apperrors.ErrAlreadyExists(err, "tags", "Tag for this user_Id already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return tag, nil
}

func (s *TagServiceImpl) GetBrandTag(ctx context.Context, userID string) (*models.BrandTag, error) {
	tag, err := s.tagRepo.FindBrandTag(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tag, nil
}

func (s *TagServiceImpl) ListBrandTags(ctx context.Context) ([]models.BrandTag, error) {
	tags, err := s.tagRepo.ListBrandTags(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tags, nil
}

func (s *TagServiceImpl) UpdateBrandTag(ctx context.Context, userID string, upd *models.BrandTagUpdate) (*models.BrandTag, error) {
	s.locks.Lock("brand_tags:" + userID)
	defer s.locks.Unlock("brand_tags:" + userID)

	existing, err := s.GetBrandTag(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := *existing
	upd.ApplyTo(&merged)
	if err := tagvalidate.ValidateBrandTag(&merged); err != nil {
		return nil, err
	}

	set := upd.SetDoc()
	if len(set) == 0 {
		return existing, nil
	}

	updated, err := s.tagRepo.UpdateBrandTag(ctx, userID, set)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *TagServiceImpl) DeleteBrandTag(ctx context.Context, userID string) error {
	return mapDeleteErr(s.tagRepo.DeleteBrandTag(ctx, userID))
}

func (s *TagServiceImpl) DeleteAllBrandTags(ctx context.Context) (int64, error) {
	return s.tagRepo.DeleteAllBrandTags(ctx)
}

func (s *TagServiceImpl) FilterBrandTags(ctx context.Context, f *models.BrandTagFilter) ([]models.BrandTag, error) {
	q := query.CompileBrandTagFilter(f)
	logger.CtxDebug(ctx, "compiled brand tag query", "query", q)
	tags, err := s.tagRepo.SampleBrandTags(ctx, q, s.sampleSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tags, nil
}

// --- теги проектов ---

func (s *TagServiceImpl) CreateProjectTag(ctx context.Context, tag *models.ProjectTag) (*models.ProjectTag, error) {
	if err := tagvalidate.ValidateOwnerRole(tag.UserID, models.RoleBrand); err != nil {
		return nil, err
	}
	if err := s.requireUser(tag.UserID); err != nil {
		return nil, err
	}

	if tag.ProjectID == "" {
		tag.ProjectID = "project_" + primitive.NewObjectID().Hex()
	}

	s.locks.Lock("project_tags:" + tag.ProjectID)
	defer s.locks.Unlock("project_tags:" + tag.ProjectID)

	if _, err := s.tagRepo.FindProjectTag(ctx, tag.UserID, tag.ProjectID); err == nil {
		return nil, apperrors.ErrAlreadyExists(nil, "tags", "Project ID already exists")
	}

	tag.ClientType = models.ClientTypeBrand
	tag.IsProject = true
	if tag.SavedTime.IsZero() {
		tag.SavedTime = time.Now().UTC()
	}
	if err := tagvalidate.ValidateProjectTag(tag); err != nil {
		return nil, err
	}

	if err := s.tagRepo.InsertProjectTag(ctx, tag); err != nil {
		if repositories.IsDuplicate(err) {
			return nil, apperrors.ErrAlreadyExists(err, "tags", "Project ID already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return tag, nil
}

func (s *TagServiceImpl) GetProjectTag(ctx context.Context, userID, projectID string) (*models.ProjectTag, error) {
	tag, err := s.tagRepo.FindProjectTag(ctx, userID, projectID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tag, nil
}

func (s *TagServiceImpl) GetProjectTagsByUser(ctx context.Context, userID string) ([]models.ProjectTag, error) {
	tags, err := s.tagRepo.ListProjectTagsByUser(ctx, userID, s.sampleSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(tags) == 0 {
		return nil, apperrors.ErrNotFound(repositories.ErrNotFound)
	}
	return tags, nil
}

func (s *TagServiceImpl) ListProjectTags(ctx context.Context) ([]models.ProjectTag, error) {
	tags, err := s.tagRepo.ListProjectTags(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tags, nil
}

func (s *TagServiceImpl) UpdateProjectTag(ctx context.Context, userID, projectID string, upd *models.ProjectTagUpdate) (*models.ProjectTag, error) {
	s.locks.Lock("project_tags:" + projectID)
	defer s.locks.Unlock("project_tags:" + projectID)

	existing, err := s.GetProjectTag(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	merged := *existing
	upd.ApplyTo(&merged)
	if err := tagvalidate.ValidateProjectTag(&merged); err != nil {
		return nil, err
	}

	set := upd.SetDoc()
	if len(set) == 0 {
		return existing, nil
	}

	updated, err := s.tagRepo.UpdateProjectTag(ctx, userID, projectID, set)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *TagServiceImpl) DeleteProjectTag(ctx context.Context, userID, projectID string) error {
	return mapDeleteErr(s.tagRepo.DeleteProjectTag(ctx, userID, projectID))
}

func (s *TagServiceImpl) DeleteAllProjectTags(ctx context.Context) (int64, error) {
	return s.tagRepo.DeleteAllProjectTags(ctx)
}

func (s *TagServiceImpl) FilterProjectTags(ctx context.Context, f *models.ProjectTagFilter) ([]models.ProjectTag, error) {
	q := query.CompileProjectTagFilter(f)
	logger.CtxDebug(ctx, "compiled project tag query", "query", q)
	tags, err := s.tagRepo.SampleProjectTags(ctx, q, s.sampleSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tags, nil
}

// mapDeleteErr переводит ошибку репозитория в доменную.
func mapDeleteErr(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.ErrNotFound(err)
	}
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
