package services

import (
	"errors"
	"time"

	"modella_backend/internal/auth"
	"modella_backend/internal/logger"
	"modella_backend/internal/models"
	"modella_backend/internal/repositories"
	"modella_backend/pkg/apperrors"
)

type UserService interface {
	Register(req *models.CreateUserRequest) (*models.AuthResponse, error)
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
	GetByUserID(userID string) (*models.User, error)
	Update(userID string, req *models.UpdateUserRequest) (*models.User, error)
	Delete(userID string) error
	List(limit, offset int) ([]models.User, error)
	Exists(userID string) (bool, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Register(req *models.CreateUserRequest) (*models.AuthResponse, error) {
	if !models.UserIDPattern.MatchString(req.UserID) {
		return nil, apperrors.ErrInvalidOperation("users",
			"user_Id must start with 'model' or 'brand' followed by numbers")
	}

	// Роль обязана совпадать с префиксом идентификатора.
	if (req.Role == models.RoleModel) != (req.UserID[:5] == models.RoleModel) {
		return nil, apperrors.ErrInvalidOperation("users",
			"user_Id prefix does not match role "+req.Role)
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		UserID:       req.UserID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Bio:          req.Bio,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "users", "User already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.UserID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_Id", user.UserID, "role", user.Role)
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *UserServiceImpl) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.UserID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *UserServiceImpl) GetByUserID(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) Update(userID string, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	now := time.Now().UTC()
	user.UpdatedAt = &now

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) Delete(userID string) error {
	err := s.userRepo.Delete(userID)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.ErrNotFound(err)
	}
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) List(limit, offset int) ([]models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	users, err := s.userRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

func (s *UserServiceImpl) Exists(userID string) (bool, error) {
	return s.userRepo.Exists(userID)
}
