package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modella_backend/internal/services"
)

// stubRatingService перекрывает только ModalRating.
type stubRatingService struct {
	services.RatingService
	modal map[string]*int
}

func (s *stubRatingService) ModalRating(ctx context.Context, userID string) (*int, error) {
	return s.modal[userID], nil
}

func ratingRouter(svc services.RatingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewRatingHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestModalRatingEndpoint(t *testing.T) {
	five := 5
	r := ratingRouter(&stubRatingService{modal: map[string]*int{"model1": &five}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ratings/user/model1/modal", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		UserID      string `json:"user_Id"`
		ModalRating *int   `json:"modal_rating"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "model1", body.UserID)
	require.NotNil(t, body.ModalRating)
	assert.Equal(t, 5, *body.ModalRating)
}

func TestModalRatingEndpointNoRatingsIsNull(t *testing.T) {
	r := ratingRouter(&stubRatingService{modal: map[string]*int{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ratings/user/model9/modal", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ModalRating *int `json:"modal_rating"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body.ModalRating)
}
