package contextkeys

// Ключи gin-контекста, которые выставляет AuthMiddleware.
const (
	UserIDKey = "userID"
	RoleKey   = "role"
)
