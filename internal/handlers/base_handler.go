package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"modella_backend/internal/logger"
	"modella_backend/internal/middleware"
	"modella_backend/internal/validator"
	"modella_backend/pkg/apperrors"
)

// BaseHandler - общие помощники для HTTP-обработчиков.
type BaseHandler struct {
	validate *validator.Validator
}

func NewBaseHandler() BaseHandler {
	return BaseHandler{validate: validator.New()}
}

// Ctx - контекст запроса, обогащенный user_Id для логгера.
func (h *BaseHandler) Ctx(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if uid := middleware.GetUserID(c); uid != "" {
		ctx = logger.WithUserID(ctx, uid)
	}
	return ctx
}

// Error отдает ошибку в стандартном формате.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// BindJSON декодирует тело запроса; при ошибке отвечает 400.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError(err.Error()))
		return false
	}
	return true
}

// BindAndValidate - BindJSON плюс структурная валидация.
func (h *BaseHandler) BindAndValidate(c *gin.Context, obj interface{}) bool {
	if !h.BindJSON(c, obj) {
		return false
	}
	if err := h.validate.Validate(obj); err != nil {
		apperrors.HandleError(c, apperrors.ValidationError(err.Error()))
		return false
	}
	return true
}
