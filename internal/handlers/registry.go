package handlers

import (
	"modella_backend/internal/services"
)

// AppHandlers - реестр HTTP-обработчиков приложения.
type AppHandlers struct {
	User       *UserHandler
	Tag        *TagHandler
	Preference *PreferenceHandler
	Rating     *RatingHandler
	Matching   *MatchingHandler
	Generator  *GeneratorHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	return &AppHandlers{
		User:       NewUserHandler(sc.UserService),
		Tag:        NewTagHandler(sc.TagService),
		Preference: NewPreferenceHandler(sc.PreferenceService),
		Rating:     NewRatingHandler(sc.RatingService),
		Matching:   NewMatchingHandler(sc.MatchingService),
		Generator:  NewGeneratorHandler(sc.GeneratorService),
	}
}
