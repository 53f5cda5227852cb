package services

import (
	"modella_backend/internal/config"
	"modella_backend/internal/database"
	"modella_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer - реестр сервисов приложения.
type ServiceContainer struct {
	UserService       UserService
	TagService        TagService
	PreferenceService PreferenceService
	RatingService     RatingService
	MatchingService   MatchingService
	GeneratorService  GeneratorService
}

// NewServiceContainer собирает репозитории и сервисы поверх подключений.
func NewServiceContainer(db *gorm.DB, mongo *database.Mongo, cfg *config.Config) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	tagRepo := repositories.NewTagRepository(mongo)
	prefRepo := repositories.NewPreferenceRepository(mongo)
	ratingRepo := repositories.NewRatingRepository(mongo)

	sampleSize := cfg.Matching.SampleSize

	ratingService := NewRatingService(ratingRepo, userRepo)

	return &ServiceContainer{
		UserService:       NewUserService(userRepo),
		TagService:        NewTagService(tagRepo, userRepo, sampleSize),
		PreferenceService: NewPreferenceService(prefRepo, userRepo, sampleSize),
		RatingService:     ratingService,
		MatchingService:   NewMatchingService(tagRepo, prefRepo, ratingService, sampleSize),
		GeneratorService:  NewGeneratorService(userRepo, tagRepo, prefRepo),
	}
}
