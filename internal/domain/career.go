package domain

// Career describes one career path as produced by the model or the static
// catalog. It is persisted verbatim when a caller stores it.
type Career struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	RequiredSkills    []string `json:"requiredSkills"`
	RecommendedSkills []string `json:"recommendedSkills"`
	AverageSalary     float64  `json:"averageSalary"`
	GrowthPotential   string   `json:"growthPotential"`
	Companies         []string `json:"companies"`
	Courses           []string `json:"courses"`
	ImageURL          string   `json:"imageUrl"`
}

// Growth potential labels used by the catalog and requested from the model.
const (
	GrowthHigh     = "High"
	GrowthMedium   = "Medium"
	GrowthLow      = "Low"
	GrowthVeryHigh = "Very High"
)

// QuizOption is a single answer choice.
type QuizOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// QuizQuestion is a multiple-choice question. CorrectAnswerID references
// one of Options by ID.
type QuizQuestion struct {
	ID              string       `json:"id"`
	Question        string       `json:"question"`
	Options         []QuizOption `json:"options"`
	CorrectAnswerID string       `json:"correctAnswerId"`
	Explanation     string       `json:"explanation"`
	Points          int          `json:"points"`
}

// HasValidAnswer reports whether CorrectAnswerID names one of the options.
func (q QuizQuestion) HasValidAnswer() bool {
	for _, opt := range q.Options {
		if opt.ID == q.CorrectAnswerID {
			return true
		}
	}
	return false
}

// Quiz is an ordered set of questions. ID is derived from the construction
// time and is only locally distinct.
type Quiz struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []QuizQuestion `json:"questions"`
}

// Recommendation pairs a career name with the reason it was suggested.
type Recommendation struct {
	Career      string `json:"career"`
	Explanation string `json:"explanation"`
}

// RecommendationList is the top-level shape of recommendation payloads.
type RecommendationList struct {
	Recommendations []Recommendation `json:"recommendations"`
}
