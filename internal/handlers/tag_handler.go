package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modella_backend/internal/models"
	"modella_backend/internal/services"
)

// TagHandler - CRUD и фильтрация тегов.
// Маршруты разнесены по вариантам, тело запроса у каждого свое.
type TagHandler struct {
	BaseHandler
	tags services.TagService
}

func NewTagHandler(tags services.TagService) *TagHandler {
	return &TagHandler{BaseHandler: NewBaseHandler(), tags: tags}
}

func (h *TagHandler) RegisterRoutes(rg *gin.RouterGroup) {
	model := rg.Group("/tags/model")
	{
		model.POST("", h.CreateModelTag)
		model.GET("", h.ListModelTags)
		model.GET("/:user_id", h.GetModelTag)
		model.PATCH("/:user_id", h.UpdateModelTag)
		model.DELETE("/:user_id", h.DeleteModelTag)
		model.DELETE("", h.DeleteAllModelTags)
		model.POST("/filter", h.FilterModelTags)
	}

	brand := rg.Group("/tags/brand")
	{
		brand.POST("", h.CreateBrandTag)
		brand.GET("", h.ListBrandTags)
		brand.GET("/:user_id", h.GetBrandTag)
		brand.PATCH("/:user_id", h.UpdateBrandTag)
		brand.DELETE("/:user_id", h.DeleteBrandTag)
		brand.DELETE("", h.DeleteAllBrandTags)
		brand.POST("/filter", h.FilterBrandTags)
	}

	project := rg.Group("/tags/project")
	{
		project.POST("", h.CreateProjectTag)
		project.GET("", h.ListProjectTags)
		project.GET("/:user_id", h.GetProjectTagsByUser)
		project.GET("/:user_id/:project_id", h.GetProjectTag)
		project.PATCH("/:user_id/:project_id", h.UpdateProjectTag)
		project.DELETE("/:user_id/:project_id", h.DeleteProjectTag)
		project.DELETE("", h.DeleteAllProjectTags)
		project.POST("/filter", h.FilterProjectTags)
	}
}

// --- model ---

func (h *TagHandler) CreateModelTag(c *gin.Context) {
	var tag models.ModelTag
	if !h.BindJSON(c, &tag) {
		return
	}
	created, err := h.tags.CreateModelTag(h.Ctx(c), &tag)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TagHandler) GetModelTag(c *gin.Context) {
	tag, err := h.tags.GetModelTag(h.Ctx(c), c.Param("user_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) ListModelTags(c *gin.Context) {
	tags, err := h.tags.ListModelTags(h.Ctx(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) UpdateModelTag(c *gin.Context) {
	var upd models.ModelTagUpdate
	if !h.BindJSON(c, &upd) {
		return
	}
	tag, err := h.tags.UpdateModelTag(h.Ctx(c), c.Param("user_id"), &upd)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) DeleteModelTag(c *gin.Context) {
	if err := h.tags.DeleteModelTag(h.Ctx(c), c.Param("user_id")); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}

func (h *TagHandler) DeleteAllModelTags(c *gin.Context) {
	n, err := h.tags.DeleteAllModelTags(h.Ctx(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": n})
}

func (h *TagHandler) FilterModelTags(c *gin.Context) {
	var f models.ModelTagFilter
	if !h.BindJSON(c, &f) {
		return
	}
	tags, err := h.tags.FilterModelTags(h.Ctx(c), &f)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// --- brand ---

func (h *TagHandler) CreateBrandTag(c *gin.Context) {
	var tag models.BrandTag
	if !h.BindJSON(c, &tag) {
		return
	}
	created, err := h.tags.CreateBrandTag(h.Ctx(c), &tag)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TagHandler) GetBrandTag(c *gin.Context) {
	tag, err := h.tags.GetBrandTag(h.Ctx(c), c.Param("user_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) ListBrandTags(c *gin.Context) {
	tags, err := h.tags.ListBrandTags(h.Ctx(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) UpdateBrandTag(c *gin.Context) {
	var upd models.BrandTagUpdate
	if !h.BindJSON(c, &upd) {
		return
	}
	tag, err := h.tags.UpdateBrandTag(h.Ctx(c), c.Param("user_id"), &upd)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) DeleteBrandTag(c *gin.Context) {
	if err := h.tags.DeleteBrandTag(h.Ctx(c), c.Param("user_id")); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}

func (h *TagHandler) DeleteAllBrandTags(c *gin.Context) {
	n, err := h.tags.DeleteAllBrandTags(h.Ctx(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": n})
}

func (h *TagHandler) FilterBrandTags(c *gin.Context) {
	var f models.BrandTagFilter
	if !h.BindJSON(c, &f) {
		return
	}
	tags, err := h.tags.FilterBrandTags(h.Ctx(c), &f)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// --- project ---

func (h *TagHandler) CreateProjectTag(c *gin.Context) {
	var tag models.ProjectTag
	if !h.BindJSON(c, &tag) {
		return
	}
	created, err := h.tags.CreateProjectTag(h.Ctx(c), &tag)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TagHandler) GetProjectTag(c *gin.Context) {
	tag, err := h.tags.GetProjectTag(h.Ctx(c), c.Param("user_id"), c.Param("project_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) GetProjectTagsByUser(c *gin.Context) {
	tags, err := h.tags.GetProjectTagsByUser(h.Ctx(c), c.Param("user_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) ListProjectTags(c *gin.Context) {
	tags, err := h.tags.ListProjectTags(h.Ctx(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) UpdateProjectTag(c *gin.Context) {
	var upd models.ProjectTagUpdate
	if !h.BindJSON(c, &upd) {
		return
	}
	tag, err := h.tags.UpdateProjectTag(h.Ctx(c), c.Param("user_id"), c.Param("project_id"), &upd)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) DeleteProjectTag(c *gin.Context) {
	if err := h.tags.DeleteProjectTag(h.Ctx(c), c.Param("user_id"), c.Param("project_id")); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}

func (h *TagHandler) DeleteAllProjectTags(c *gin.Context) {
	n, err := h.tags.DeleteAllProjectTags(h.Ctx(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": n})
}

func (h *TagHandler) FilterProjectTags(c *gin.Context) {
	var f models.ProjectTagFilter
	if !h.BindJSON(c, &f) {
		return
	}
	tags, err := h.tags.FilterProjectTags(h.Ctx(c), &f)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}
