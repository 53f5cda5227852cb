package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"modella_backend/internal/middleware"
	"modella_backend/internal/models"
	"modella_backend/internal/services"
)

// UserHandler - регистрация, логин и профили пользователей.
type UserHandler struct {
	BaseHandler
	users services.UserService
}

func NewUserHandler(users services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: NewBaseHandler(), users: users}
}

// RegisterPublicRoutes - маршруты без аутентификации.
func (h *UserHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

// RegisterRoutes - маршруты под JWT.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:user_id", h.Get)
		users.PUT("/me", h.UpdateMe)
		users.DELETE("/me", h.DeleteMe)
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.users.Register(&req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.users.Login(&req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.GetByUserID(c.Param("user_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	users, err := h.users.List(limit, offset)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req models.UpdateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}
	user, err := h.users.Update(middleware.GetUserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.users.Delete(middleware.GetUserID(c)); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
