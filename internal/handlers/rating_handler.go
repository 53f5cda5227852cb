package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"modella_backend/internal/middleware"
	"modella_backend/internal/models"
	"modella_backend/internal/services"
	"modella_backend/pkg/apperrors"
)

// RatingHandler - оценки пользователей.
// Автор изменения/удаления берется из JWT.
type RatingHandler struct {
	BaseHandler
	ratings services.RatingService
}

func NewRatingHandler(ratings services.RatingService) *RatingHandler {
	return &RatingHandler{BaseHandler: NewBaseHandler(), ratings: ratings}
}

func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ratings := rg.Group("/ratings")
	{
		ratings.POST("", h.Create)
		ratings.GET("", h.ListAll)
		ratings.GET("/:rating_id", h.Get)
		ratings.PATCH("/:rating_id", h.Update)
		ratings.DELETE("/:rating_id", h.Delete)
		ratings.DELETE("", h.DeleteAll)
		ratings.GET("/user/:user_id", h.ListByUser)
		ratings.GET("/user/:user_id/recent", h.Recent)
		ratings.GET("/user/:user_id/modal", h.Modal)
		ratings.GET("/user/:user_id/level/:level", h.ByLevel)
		ratings.POST("/generate", h.GenerateRandom)
	}
}

func (h *RatingHandler) Create(c *gin.Context) {
	var req models.CreateRatingRequest
	if !h.BindJSON(c, &req) {
		return
	}
	rating, err := h.ratings.Create(h.Ctx(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, rating)
}

func (h *RatingHandler) Get(c *gin.Context) {
	rating, err := h.ratings.Get(h.Ctx(c), c.Param("rating_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (h *RatingHandler) ListAll(c *gin.Context) {
	out, err := h.ratings.ListAll(h.Ctx(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *RatingHandler) ListByUser(c *gin.Context) {
	out, err := h.ratings.ListByUser(h.Ctx(c), c.Param("user_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *RatingHandler) Recent(c *gin.Context) {
	out, err := h.ratings.Recent(h.Ctx(c), c.Param("user_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Modal - самый частый уровень оценок пользователя.
// Без оценок modal_rating равен null.
func (h *RatingHandler) Modal(c *gin.Context) {
	modal, err := h.ratings.ModalRating(h.Ctx(c), c.Param("user_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_Id": c.Param("user_id"), "modal_rating": modal})
}

func (h *RatingHandler) ByLevel(c *gin.Context) {
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil {
		h.Error(c, apperrors.ErrInvalidRatingLevel)
		return
	}
	out, err := h.ratings.ByLevel(h.Ctx(c), c.Param("user_id"), level)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *RatingHandler) Update(c *gin.Context) {
	var req models.UpdateRatingRequest
	if !h.BindJSON(c, &req) {
		return
	}
	rating, err := h.ratings.Update(h.Ctx(c), c.Param("rating_id"), middleware.GetUserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (h *RatingHandler) Delete(c *gin.Context) {
	if err := h.ratings.Delete(h.Ctx(c), c.Param("rating_id"), middleware.GetUserID(c)); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted"})
}

func (h *RatingHandler) DeleteAll(c *gin.Context) {
	n, err := h.ratings.DeleteAll(h.Ctx(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": n})
}

func (h *RatingHandler) GenerateRandom(c *gin.Context) {
	var req struct {
		Count int `json:"count" binding:"required,min=1"`
	}
	if !h.BindJSON(c, &req) {
		return
	}
	generated, err := h.ratings.GenerateRandom(h.Ctx(c), req.Count)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"generated_count": len(generated), "ratings": generated})
}
