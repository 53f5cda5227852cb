package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modella_backend/internal/models"
	"modella_backend/internal/services"
)

// GeneratorHandler - наполнение стенда синтетическими данными.
type GeneratorHandler struct {
	BaseHandler
	generator services.GeneratorService
}

func NewGeneratorHandler(generator services.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{BaseHandler: NewBaseHandler(), generator: generator}
}

func (h *GeneratorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	gen := rg.Group("/generate")
	{
		gen.POST("/users", h.GenerateUsers)
		gen.POST("/tags", h.GenerateTags)
		gen.POST("/preferences", h.GeneratePreferences)
		gen.GET("/unused/tags/:variant", h.UnusedTagUsers)
		gen.GET("/unused/preferences/:variant", h.UnusedPreferenceUsers)
	}
}

func (h *GeneratorHandler) GenerateUsers(c *gin.Context) {
	var req struct {
		Count int    `json:"count" binding:"required,min=1"`
		Role  string `json:"role" binding:"required,oneof=model brand"`
	}
	if !h.BindJSON(c, &req) {
		return
	}
	users, err := h.generator.GenerateUsers(h.Ctx(c), req.Count, req.Role)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"generated_count": len(users), "users": users})
}

func (h *GeneratorHandler) GenerateTags(c *gin.Context) {
	var req models.GenerateRandomRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	n, err := h.generator.GenerateTags(h.Ctx(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"generated_count": n})
}

func (h *GeneratorHandler) GeneratePreferences(c *gin.Context) {
	var req models.GenerateRandomRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	n, err := h.generator.GeneratePreferences(h.Ctx(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"generated_count": n})
}

func (h *GeneratorHandler) UnusedTagUsers(c *gin.Context) {
	ids, err := h.generator.UnusedTagUserIDs(h.Ctx(c), c.Param("variant"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_Ids": ids})
}

func (h *GeneratorHandler) UnusedPreferenceUsers(c *gin.Context) {
	ids, err := h.generator.UnusedPreferenceUserIDs(h.Ctx(c), c.Param("variant"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_Ids": ids})
}
