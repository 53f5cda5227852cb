package keywords

import (
	"strings"

	"modella_backend/internal/logger"
)

// Категории словарей допустимых значений для тегов и предпочтений.
const (
	EyeColors        = "eye_colors"
	BodyTypes        = "body_types"
	WorkFields       = "work_fields"
	SkinTones        = "skin_tones"
	Ethnicities      = "ethnicities"
	HairTypes        = "hair_types"
	Genders          = "genders"
	Locations        = "locations"
	ExperienceLevels = "experience_levels"
)

var registry = map[string][]string{
	EyeColors: {
		"Brown", "Blue", "Hazel", "Green", "Gray", "Amber", "Red", "Violet", "Heterochromia",
	},
	BodyTypes: {
		"Straight Size Models", "Plus-Size Models", "Petite Models", "Fitness Models",
		"Glamour Models", "Mature Models", "Alternative Models", "Parts Models",
		"Child Models", "Body-Positive Models", "Androgynous Models", "Fit Models",
	},
	WorkFields: {
		"Fashion/Runway Modeling", "Commercial Modeling", "Beauty Modeling",
		"Lingerie/Swimsuit Modeling", "Fitness Modeling", "Plus-Size Modeling",
		"Editorial Modeling", "Child Modeling", "Parts Modeling", "Catalog Modeling",
		"Runway Modeling", "Commercial Print Modeling", "Virtual Modeling", "Lifestyle Modeling",
	},
	SkinTones: {
		"Fair", "Light", "Medium", "Olive", "Tan", "Deep Tan", "Brown", "Dark Brown", "Ebony",
	},
	Ethnicities: {
		"Caucasian", "African", "African-American", "Hispanic/Latino", "Asian",
		"South Asian (Indian, Pakistani, Bangladeshi)", "Middle Eastern",
		"Native American/Indigenous", "Pacific Islander", "Mixed-Race",
		"Mediterranean", "Nordic", "East Asian (Chinese, Japanese, Korean)",
		"Southeast Asian (Thai, Filipino, Vietnamese, etc.)", "Caribbean",
	},
	HairTypes: {
		"Straight", "Wavy", "Curly", "Coily", "Kinky", "Textured", "Afro", "Braided",
		"Buzz Cut", "Shaved", "Dyed/Colored Hair", "Gray/White Hair", "Bald",
	},
	Genders: {
		"Female", "Male", "Non-Binary", "Androgynous", "Transgender Female",
		"Transgender Male", "Genderfluid", "Agender",
	},
	Locations: {
		"Mumbai, India", "New York City, USA", "Shanghai, China", "Dubai, UAE",
		"Rome, Italy", "Seoul, South Korea", "Paris, France", "Mexico City, Mexico",
		"London, United Kingdom", "Cape Town, South Africa",
	},
	ExperienceLevels: {
		"Beginner (0-1 years)", "Intermediate (1-3 years)", "Experienced (3-5 years)",
		"Advanced (5-7 years)", "Expert (7+ years)",
	},
}

// Get возвращает список допустимых значений для категории.
// Имя категории нечувствительно к регистру.
// Неизвестная категория - пустой список (и warning в лог).
func Get(category string) []string {
	values, ok := registry[strings.ToLower(category)]
	if !ok {
		logger.Warn("unknown keyword category requested", "category", category)
		return []string{}
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// Contains проверяет принадлежность значения словарю категории.
// Сравнение без учета регистра.
func Contains(category, value string) bool {
	for _, v := range registry[strings.ToLower(category)] {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}

// Categories возвращает список всех известных категорий.
func Categories() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}
