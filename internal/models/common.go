package models

import "regexp"

// Роли пользователей. user_Id всегда начинается с префикса роли.
const (
	RoleModel = "model"
	RoleBrand = "brand"
)

// client_Type тега/предпочтения.
const (
	ClientTypeModel = "Model"
	ClientTypeBrand = "Brand"
)

// Варианты тегов и предпочтений для генератора случайных данных.
const (
	VariantModel   = "Model"
	VariantBrand   = "Brand"
	VariantProject = "Project"
)

// UserIDPattern - формат идентификатора: префикс роли + цифры.
var UserIDPattern = regexp.MustCompile(`^(model|brand)\d+$`)

// IntRange - закрытый числовой диапазон [min, max].
// Сериализуется как массив из двух элементов и в BSON, и в JSON.
type IntRange [2]int

func (r IntRange) Min() int { return r[0] }
func (r IntRange) Max() int { return r[1] }

// Valid проверяет, что границы упорядочены.
func (r IntRange) Valid() bool { return r[0] <= r[1] }

// Contains проверяет попадание значения в диапазон (включительно).
func (r IntRange) Contains(v int) bool { return v >= r[0] && v <= r[1] }

// NewIntRange - конструктор для literal-неудобных мест.
func NewIntRange(min, max int) *IntRange {
	r := IntRange{min, max}
	return &r
}
