package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modella_backend/internal/models"
	"modella_backend/internal/services"
)

// PreferenceHandler - CRUD и фильтрация предпочтений.
// Группы названы по искомой стороне: projects/models/brands.
type PreferenceHandler struct {
	BaseHandler
	prefs services.PreferenceService
}

func NewPreferenceHandler(prefs services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{BaseHandler: NewBaseHandler(), prefs: prefs}
}

func (h *PreferenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/preferences/projects")
	{
		projects.POST("", h.CreateModelProject)
		projects.GET("", h.ListModelProject)
		projects.GET("/:user_id", h.GetModelProject)
		projects.PATCH("/:user_id", h.UpdateModelProject)
		projects.DELETE("/:user_id", h.DeleteModelProject)
		projects.DELETE("", h.DeleteAllModelProject)
		projects.POST("/filter", h.FilterModelProject)
	}

	modelsGroup := rg.Group("/preferences/models")
	{
		modelsGroup.POST("", h.CreateBrandModel)
		modelsGroup.GET("", h.ListBrandModel)
		modelsGroup.GET("/:user_id", h.GetBrandModel)
		modelsGroup.PATCH("/:user_id", h.UpdateBrandModel)
		modelsGroup.DELETE("/:user_id", h.DeleteBrandModel)
		modelsGroup.DELETE("", h.DeleteAllBrandModel)
		modelsGroup.POST("/filter", h.FilterBrandModel)
	}

	brands := rg.Group("/preferences/brands")
	{
		brands.POST("", h.CreateModelBrand)
		brands.GET("", h.ListModelBrand)
		brands.GET("/:user_id", h.GetModelBrand)
		brands.PATCH("/:user_id", h.UpdateModelBrand)
		brands.DELETE("/:user_id", h.DeleteModelBrand)
		brands.DELETE("", h.DeleteAllModelBrand)
		brands.POST("/filter", h.FilterModelBrand)
	}
}

// --- предпочтения модели по проектам ---

func (h *PreferenceHandler) CreateModelProject(c *gin.Context) {
	var p models.ModelProjectPreference
	if !h.BindJSON(c, &p) {
		return
	}
	created, err := h.prefs.CreateModelProject(h.Ctx(c), &p)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PreferenceHandler) GetModelProject(c *gin.Context) {
	p, err := h.prefs.GetModelProject(h.Ctx(c), c.Param("user_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PreferenceHandler) ListModelProject(c *gin.Context) {
	out, err := h.prefs.ListModelProject(h.Ctx(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *PreferenceHandler) UpdateModelProject(c *gin.Context) {
	var upd models.ModelProjectPreferenceUpdate
	if !h.BindJSON(c, &upd) {
		return
	}
	p, err := h.prefs.UpdateModelProject(h.Ctx(c), c.Param("user_id"), &upd)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PreferenceHandler) DeleteModelProject(c *gin.Context) {
	if err := h.prefs.DeleteModelProject(h.Ctx(c), c.Param("user_id")); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preference deleted"})
}

func (h *PreferenceHandler) DeleteAllModelProject(c *gin.Context) {
	n, err := h.prefs.DeleteAllModelProject(h.Ctx(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": n})
}

func (h *PreferenceHandler) FilterModelProject(c *gin.Context) {
	var f models.ModelProjectPreferenceFilter
	if !h.BindJSON(c, &f) {
		return
	}
	out, err := h.prefs.FilterModelProject(h.Ctx(c), &f)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// --- предпочтения бренда по моделям ---

func (h *PreferenceHandler) CreateBrandModel(c *gin.Context) {
	var p models.BrandModelPreference
	if !h.BindJSON(c, &p) {
		return
	}
	created, err := h.prefs.CreateBrandModel(h.Ctx(c), &p)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PreferenceHandler) GetBrandModel(c *gin.Context) {
	p, err := h.prefs.GetBrandModel(h.Ctx(c), c.Param("user_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PreferenceHandler) ListBrandModel(c *gin.Context) {
	out, err := h.prefs.ListBrandModel(h.Ctx(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *PreferenceHandler) UpdateBrandModel(c *gin.Context) {
	var upd models.BrandModelPreferenceUpdate
	if !h.BindJSON(c, &upd) {
		return
	}
	p, err := h.prefs.UpdateBrandModel(h.Ctx(c), c.Param("user_id"), &upd)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PreferenceHandler) DeleteBrandModel(c *gin.Context) {
	if err := h.prefs.DeleteBrandModel(h.Ctx(c), c.Param("user_id")); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preference deleted"})
}

func (h *PreferenceHandler) DeleteAllBrandModel(c *gin.Context) {
	n, err := h.prefs.DeleteAllBrandModel(h.Ctx(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": n})
}

func (h *PreferenceHandler) FilterBrandModel(c *gin.Context) {
	var f models.BrandModelPreferenceFilter
	if !h.BindJSON(c, &f) {
		return
	}
	out, err := h.prefs.FilterBrandModel(h.Ctx(c), &f)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// --- предпочтения модели по брендам ---

func (h *PreferenceHandler) CreateModelBrand(c *gin.Context) {
	var p models.ModelBrandPreference
	if !h.BindJSON(c, &p) {
		return
	}
	created, err := h.prefs.CreateModelBrand(h.Ctx(c), &p)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PreferenceHandler) GetModelBrand(c *gin.Context) {
	p, err := h.prefs.GetModelBrand(h.Ctx(c), c.Param("user_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PreferenceHandler) ListModelBrand(c *gin.Context) {
	out, err := h.prefs.ListModelBrand(h.Ctx(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *PreferenceHandler) UpdateModelBrand(c *gin.Context) {
	var upd models.ModelBrandPreferenceUpdate
	if !h.BindJSON(c, &upd) {
		return
	}
	p, err := h.prefs.UpdateModelBrand(h.Ctx(c), c.Param("user_id"), &upd)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PreferenceHandler) DeleteModelBrand(c *gin.Context) {
	if err := h.prefs.DeleteModelBrand(h.Ctx(c), c.Param("user_id")); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preference deleted"})
}

func (h *PreferenceHandler) DeleteAllModelBrand(c *gin.Context) {
	n, err := h.prefs.DeleteAllModelBrand(h.Ctx(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": n})
}

func (h *PreferenceHandler) FilterModelBrand(c *gin.Context) {
	var f models.ModelBrandPreferenceFilter
	if !h.BindJSON(c, &f) {
		return
	}
	out, err := h.prefs.FilterModelBrand(h.Ctx(c), &f)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
