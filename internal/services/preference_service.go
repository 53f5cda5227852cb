package services

import (
	"context"
	"errors"
	"time"

	"modella_backend/internal/logger"
	"modella_backend/internal/models"
	"modella_backend/internal/query"
	"modella_backend/internal/repositories"
	"modella_backend/internal/tagvalidate"
	"modella_backend/pkg/apperrors"
)

// PreferenceService - CRUD и фильтрация предпочтений.
// У пользователя не больше одного предпочтения каждого вида.
type PreferenceService interface {
	CreateModelProject(ctx context.Context, p *models.ModelProjectPreference) (*models.ModelProjectPreference, error)
	GetModelProject(ctx context.Context, userID string) (*models.ModelProjectPreference, error)
	ListModelProject(ctx context.Context) ([]models.ModelProjectPreference, error)
	UpdateModelProject(ctx context.Context, userID string, upd *models.ModelProjectPreferenceUpdate) (*models.ModelProjectPreference, error)
	DeleteModelProject(ctx context.Context, userID string) error
	DeleteAllModelProject(ctx context.Context) (int64, error)
	FilterModelProject(ctx context.Context, f *models.ModelProjectPreferenceFilter) ([]models.ModelProjectPreference, error)

	CreateBrandModel(ctx context.Context, p *models.BrandModelPreference) (*models.BrandModelPreference, error)
	GetBrandModel(ctx context.Context, userID string) (*models.BrandModelPreference, error)
	ListBrandModel(ctx context.Context) ([]models.BrandModelPreference, error)
	UpdateBrandModel(ctx context.Context, userID string, upd *models.BrandModelPreferenceUpdate) (*models.BrandModelPreference, error)
	DeleteBrandModel(ctx context.Context, userID string) error
	DeleteAllBrandModel(ctx context.Context) (int64, error)
	FilterBrandModel(ctx context.Context, f *models.BrandModelPreferenceFilter) ([]models.BrandModelPreference, error)

	CreateModelBrand(ctx context.Context, p *models.ModelBrandPreference) (*models.ModelBrandPreference, error)
	GetModelBrand(ctx context.Context, userID string) (*models.ModelBrandPreference, error)
	ListModelBrand(ctx context.Context) ([]models.ModelBrandPreference, error)
	UpdateModelBrand(ctx context.Context, userID string, upd *models.ModelBrandPreferenceUpdate) (*models.ModelBrandPreference, error)
	DeleteModelBrand(ctx context.Context, userID string) error
	DeleteAllModelBrand(ctx context.Context) (int64, error)
	FilterModelBrand(ctx context.Context, f *models.ModelBrandPreferenceFilter) ([]models.ModelBrandPreference, error)
}

type PreferenceServiceImpl struct {
	prefRepo   repositories.PreferenceRepository
	userRepo   repositories.UserRepository
	locks      *keyLock
	sampleSize int
}

func NewPreferenceService(prefRepo repositories.PreferenceRepository, userRepo repositories.UserRepository, sampleSize int) PreferenceService {
	return &PreferenceServiceImpl{
		prefRepo:   prefRepo,
		userRepo:   userRepo,
		locks:      newKeyLock(),
		sampleSize: sampleSize,
	}
}

func (s *PreferenceServiceImpl) requireUser(userID string) error {
	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !exists {
		return apperrors.ErrInvalidUser
	}
	return nil
}

// --- model_preferences (модель ищет проекты) ---

func (s *PreferenceServiceImpl) CreateModelProject(ctx context.Context, p *models.ModelProjectPreference) (*models.ModelProjectPreference, error) {
	if err := tagvalidate.ValidateOwnerRole(p.UserID, models.RoleModel); err != nil {
		return nil, err
	}
	if err := s.requireUser(p.UserID); err != nil {
		return nil, err
	}

	s.locks.Lock("model_preferences:" + p.UserID)
	defer s.locks.Unlock("model_preferences:" + p.UserID)

	if _, err := s.prefRepo.FindModelProject(ctx, p.UserID); err == nil {
		return nil, apperrors.ErrAlreadyExists(nil, "preferences", "Preference for this user_Id already exists")
	}

	p.ClientType = models.ClientTypeModel
	if p.SavedTime.IsZero() {
		p.SavedTime = time.Now().UTC()
	}
	if err := tagvalidate.ValidateModelProjectPreference(p); err != nil {
		return nil, err
	}

	if err := s.prefRepo.InsertModelProject(ctx, p); err != nil {
		if repositories.IsDuplicate(err) {
			return nil, apperrors.ErrAlreadyExists(err, "preferences", "Preference for this user_Id already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return p, nil
}

func (s *PreferenceServiceImpl) GetModelProject(ctx context.Context, userID string) (*models.ModelProjectPreference, error) {
	p, err := s.prefRepo.FindModelProject(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return p, nil
}

func (s *PreferenceServiceImpl) ListModelProject(ctx context.Context) ([]models.ModelProjectPreference, error) {
	out, err := s.prefRepo.ListModelProject(ctx, s.sampleSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return out, nil
}

func (s *PreferenceServiceImpl) UpdateModelProject(ctx context.Context, userID string, upd *models.ModelProjectPreferenceUpdate) (*models.ModelProjectPreference, error) {
	s.locks.Lock("model_preferences:" + userID)
	defer s.locks.Unlock("model_preferences:" + userID)

	existing, err := s.GetModelProject(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := *existing
	upd.ApplyTo(&merged)
	if err := tagvalidate.ValidateModelProjectPreference(&merged); err != nil {
		return nil, err
	}

	set := upd.SetDoc()
	if len(set) == 0 {
		return existing, nil
	}

	updated, err := s.prefRepo.UpdateModelProject(ctx, userID, set)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *PreferenceServiceImpl) DeleteModelProject(ctx context.Context, userID string) error {
	return mapDeleteErr(s.prefRepo.DeleteModelProject(ctx, userID))
}

func (s *PreferenceServiceImpl) DeleteAllModelProject(ctx context.Context) (int64, error) {
	return s.prefRepo.DeleteAllModelProject(ctx)
}

func (s *PreferenceServiceImpl) FilterModelProject(ctx context.Context, f *models.ModelProjectPreferenceFilter) ([]models.ModelProjectPreference, error) {
	q := query.CompileModelProjectPreferenceFilter(f)
	logger.CtxDebug(ctx, "compiled model preference query", "query", q)
	out, err := s.prefRepo.SampleModelProject(ctx, q, s.sampleSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return out, nil
}

// --- brand_preferences (бренд ищет моделей) ---

func (s *PreferenceServiceImpl) CreateBrandModel(ctx context.Context, p *models.BrandModelPreference) (*models.BrandModelPreference, error) {
	if err := tagvalidate.ValidateOwnerRole(p.UserID, models.RoleBrand); err != nil {
		return nil, err
	}
	if err := s.requireUser(p.UserID); err != nil {
		return nil, err
	}

	s.locks.Lock("brand_preferences:" + p.UserID)
	defer s.locks.Unlock("brand_preferences:" + p.UserID)

	if _, err := s.prefRepo.FindBrandModel(ctx, p.UserID); err == nil {
		return nil, apperrors.ErrAlreadyExists(nil, "preferences", "Preference for this user_Id already exists")
	}

	p.ClientType = models.ClientTypeBrand
	if p.SavedTime.IsZero() {
		p.SavedTime = time.Now().UTC()
	}
	if err := tagvalidate.ValidateBrandModelPreference(p); err != nil {
		return nil, err
	}

	if err := s.prefRepo.InsertBrandModel(ctx, p); err != nil {
		if repositories.IsDuplicate(err) {
			return nil, apperrors.ErrAlreadyExists(err, "preferences", "Preference for this user_Id already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return p, nil
}

func (s *PreferenceServiceImpl) GetBrandModel(ctx context.Context, userID string) (*models.BrandModelPreference, error) {
	p, err := s.prefRepo.FindBrandModel(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return p, nil
}

func (s *PreferenceServiceImpl) ListBrandModel(ctx context.Context) ([]models.BrandModelPreference, error) {
	out, err := s.prefRepo.ListBrandModel(ctx, s.sampleSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return out, nil
}

func (s *PreferenceServiceImpl) UpdateBrandModel(ctx context.Context, userID string, upd *models.BrandModelPreferenceUpdate) (*models.BrandModelPreference, error) {
	s.locks.Lock("brand_preferences:" + userID)
	defer s.locks.Unlock("brand_preferences:" + userID)

	existing, err := s.GetBrandModel(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := *existing
	upd.ApplyTo(&merged)
	if err := tagvalidate.ValidateBrandModelPreference(&merged); err != nil {
		return nil, err
	}

	set := upd.SetDoc()
	if len(set) == 0 {
		return existing, nil
	}

	updated, err := s.prefRepo.UpdateBrandModel(ctx, userID, set)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *PreferenceServiceImpl) DeleteBrandModel(ctx context.Context, userID string) error {
	return mapDeleteErr(s.prefRepo.DeleteBrandModel(ctx, userID))
}

func (s *PreferenceServiceImpl) DeleteAllBrandModel(ctx context.Context) (int64, error) {
	return s.prefRepo.DeleteAllBrandModel(ctx)
}

func (s *PreferenceServiceImpl) FilterBrandModel(ctx context.Context, f *models.BrandModelPreferenceFilter) ([]models.BrandModelPreference, error) {
	q, err := query.CompileBrandModelPreferenceFilter(f)
	if err != nil {
		return nil, err
	}
	logger.CtxDebug(ctx, "compiled brand preference query", "query", q)
	out, err := s.prefRepo.SampleBrandModel(ctx, q, s.sampleSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return out, nil
}

// --- model_brand_preferences (модель ищет бренды) ---

func (s *PreferenceServiceImpl) CreateModelBrand(ctx context.Context, p *models.ModelBrandPreference) (*models.ModelBrandPreference, error) {
	if err := tagvalidate.ValidateOwnerRole(p.UserID, models.RoleModel); err != nil {
		return nil, err
	}
	if err := s.requireUser(p.UserID); err != nil {
		return nil, err
	}

	s.locks.Lock("model_brand_preferences:" + p.UserID)
	defer s.locks.Unlock("model_brand_preferences:" + p.UserID)

	if _, err := s.prefRepo.FindModelBrand(ctx, p.UserID); err == nil {
		return nil, apperrors.ErrAlreadyExists(nil, "preferences", "Preference for this user_Id already exists")
	}

	p.ClientType = models.ClientTypeModel
	if p.SavedTime.IsZero() {
		p.SavedTime = time.Now().UTC()
	}
	if err := tagvalidate.ValidateModelBrandPreference(p); err != nil {
		return nil, err
	}

	if err := s.prefRepo.InsertModelBrand(ctx, p); err != nil {
		if repositories.IsDuplicate(err) {
			return nil, apperrors.ErrAlreadyExists(err, "preferences", "Preference for this user_Id already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return p, nil
}

func (s *PreferenceServiceImpl) GetModelBrand(ctx context.Context, userID string) (*models.ModelBrandPreference, error) {
	p, err := s.prefRepo.FindModelBrand(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return p, nil
}

func (s *PreferenceServiceImpl) ListModelBrand(ctx context.Context) ([]models.ModelBrandPreference, error) {
	out, err := s.prefRepo.ListModelBrand(ctx, s.sampleSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return out, nil
}

func (s *PreferenceServiceImpl) UpdateModelBrand(ctx context.Context, userID string, upd *models.ModelBrandPreferenceUpdate) (*models.ModelBrandPreference, error) {
	s.locks.Lock("model_brand_preferences:" + userID)
	defer s.locks.Unlock("model_brand_preferences:" + userID)

	existing, err := s.GetModelBrand(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := *existing
	upd.ApplyTo(&merged)
	if err := tagvalidate.ValidateModelBrandPreference(&merged); err != nil {
		return nil, err
	}

	set := upd.SetDoc()
	if len(set) == 0 {
		return existing, nil
	}

	updated, err := s.prefRepo.UpdateModelBrand(ctx, userID, set)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *PreferenceServiceImpl) DeleteModelBrand(ctx context.Context, userID string) error {
	return mapDeleteErr(s.prefRepo.DeleteModelBrand(ctx, userID))
}

func (s *PreferenceServiceImpl) DeleteAllModelBrand(ctx context.Context) (int64, error) {
	return s.prefRepo.DeleteAllModelBrand(ctx)
}

func (s *PreferenceServiceImpl) FilterModelBrand(ctx context.Context, f *models.ModelBrandPreferenceFilter) ([]models.ModelBrandPreference, error) {
	q, err := query.CompileModelBrandPreferenceFilter(f)
	if err != nil {
		return nil, err
	}
	logger.CtxDebug(ctx, "compiled model-brand preference query", "query", q)
	out, err := s.prefRepo.SampleModelBrand(ctx, q, s.sampleSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return out, nil
}
