package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок
(теги, предпочтения, рейтинги, пользователи).
*/

// =========================================================================
// Фабричные ФУНКЦИИ
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (400)
// Оригинальный API отдает 400 на дубликаты, сохраняем это поведение.
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusBadRequest)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// NewInvalidValueError - недопустимое значение категориального поля.
// Details содержит список разрешенных значений.
func NewInvalidValueError(field string, allowed []string) *AppError {
	return New(CodeValidationFailed, "tags", "Invalid value for "+field, http.StatusBadRequest).
		WithDetails(map[string]interface{}{
			"field":          field,
			"allowed_values": allowed,
		})
}

// NewOutOfRangeError - числовое значение вне допустимых границ.
func NewOutOfRangeError(field, message string) *AppError {
	return New(CodeValidationFailed, "tags", message, http.StatusBadRequest).
		WithDetails(map[string]interface{}{"field": field})
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ
// =========================================================================

// ErrInvalidUser - user_Id не существует в хранилище пользователей.
var ErrInvalidUser = New(
	CodeValidationFailed,
	"users",
	"Invalid user_Id. User does not exist.",
	http.StatusBadRequest,
)

// ErrInvalidRatingLevel - rating_level вне диапазона 1..5.
var ErrInvalidRatingLevel = New(
	CodeValidationFailed,
	"rating",
	"rating_level must be an integer between 1 and 5",
	http.StatusBadRequest,
)

// ErrSelfRatingNotAllowed - пользователь оценивает сам себя.
var ErrSelfRatingNotAllowed = New(
	CodeInvalidOperation,
	"rating",
	"You cannot rate yourself",
	http.StatusBadRequest,
)

// ErrNotRatingOwner - изменять/удалять рейтинг может только его автор.
var ErrNotRatingOwner = New(
	CodeForbidden,
	"rating",
	"You can only modify your own rating",
	http.StatusForbidden,
)

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
