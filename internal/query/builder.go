package query

import (
	"go.mongodb.org/mongo-driver/bson"

	"modella_backend/internal/models"
)

/*
Низкоуровневые сеттеры условий. Общее правило:
  - nil / пустое значение -> поле не попадает в запрос;
  - скаляр                -> равенство;
  - набор значений        -> {$in: [...]};
  - числовой диапазон     -> {$gte: min, $lte: max}.
*/

func setEqStr(q bson.M, field string, v *string) {
	if v == nil || *v == "" {
		return
	}
	q[field] = *v
}

func setEqInt(q bson.M, field string, v *int) {
	if v == nil {
		return
	}
	q[field] = *v
}

// setIn добавляет условие принадлежности набору.
// Пустые строки выбрасываются; пустой после чистки набор опускается.
func setIn(q bson.M, field string, values []string) {
	cleaned := cleanList(values)
	if len(cleaned) == 0 {
		return
	}
	q[field] = bson.M{"$in": cleaned}
}

func setRange(q bson.M, field string, r *models.IntRange) {
	if r == nil {
		return
	}
	q[field] = bson.M{"$gte": r.Min(), "$lte": r.Max()}
}

// cleanList выбрасывает пустые строки из набора.
func cleanList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			cleaned = append(cleaned, v)
		}
	}
	return cleaned
}
