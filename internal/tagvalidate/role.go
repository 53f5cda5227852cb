package tagvalidate

import (
	"strings"

	"modella_backend/internal/models"
	"modella_backend/pkg/apperrors"
)

// RolePrefixFor возвращает ожидаемый префикс user_Id для варианта тега.
// Теги проектов принадлежат брендам.
func RolePrefixFor(variant string) string {
	if variant == models.VariantModel {
		return models.RoleModel
	}
	return models.RoleBrand
}

// ValidateOwnerRole проверяет, что user_Id принадлежит роли, которой
// адресован вариант записи: тег модели - только "model*", тег бренда
// и проекта - только "brand*".
func ValidateOwnerRole(userID, rolePrefix string) error {
	if !models.UserIDPattern.MatchString(userID) {
		return apperrors.ErrInvalidOperation("users",
			"user_Id must start with 'model' or 'brand' followed by numbers")
	}
	if !strings.HasPrefix(userID, rolePrefix) {
		return apperrors.ErrInvalidOperation("tags",
			"user_Id "+userID+" does not belong to role "+rolePrefix)
	}
	return nil
}
