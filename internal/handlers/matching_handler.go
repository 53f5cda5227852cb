package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modella_backend/internal/services"
)

// MatchingHandler - кросс-ролевой подбор кандидатов.
type MatchingHandler struct {
	BaseHandler
	matching services.MatchingService
}

func NewMatchingHandler(matching services.MatchingService) *MatchingHandler {
	return &MatchingHandler{BaseHandler: NewBaseHandler(), matching: matching}
}

func (h *MatchingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	matching := rg.Group("/matching")
	{
		matching.GET("/projects/:user_id", h.MatchProjects)
		matching.GET("/models/:user_id", h.MatchModels)
		matching.GET("/brands/:user_id", h.MatchBrands)
	}
}

func (h *MatchingHandler) MatchProjects(c *gin.Context) {
	ids, err := h.matching.MatchProjectsForModel(h.Ctx(c), c.Param("user_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project_Ids": ids})
}

func (h *MatchingHandler) MatchModels(c *gin.Context) {
	ids, err := h.matching.MatchModelsForBrand(h.Ctx(c), c.Param("user_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_Ids": ids})
}

func (h *MatchingHandler) MatchBrands(c *gin.Context) {
	ids, err := h.matching.MatchBrandsForModel(h.Ctx(c), c.Param("user_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_Ids": ids})
}
