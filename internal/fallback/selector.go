// Package fallback serves canned payloads when the model reports quota
// exhaustion. Every payload is wrapped in the same envelope the live model
// produces, with JSON text matching the schema the prompt requested.
package fallback

import (
	"fmt"
	"strings"
	"time"

	"pathpilot/internal/domain"
	"pathpilot/internal/util"
)

// Kind is the closed set of fallback payloads.
type Kind int

const (
	KindTrending Kind = iota + 1
	KindQuiz
	KindRecommendations
	KindCategoryCareers
	KindEnrichment
)

// DefaultQuizSize is used when the caller did not ask for a question count.
const DefaultQuizSize = 10

var kindNames = map[Kind]string{
	KindTrending:        "trending",
	KindQuiz:            "quiz",
	KindRecommendations: "recommendations",
	KindCategoryCareers: "category",
	KindEnrichment:      "enrich",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindTrending, KindQuiz, KindRecommendations, KindCategoryCareers, KindEnrichment}
}

// ParseKind maps a label such as "quiz" to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if kindNames[k] == strings.ToLower(strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown fallback kind %q", s)
}

// Params carries the request parameters that shape a fallback payload.
// Nil counts mean the caller did not supply one.
type Params struct {
	NumQuestions *int
	Topic        string
	Category     string
	Count        *int
	Limit        *int
	Titles       []string
}

// Selector builds fallback envelopes from the static catalog.
type Selector struct {
	now   func() time.Time
	newID func(time.Time) string
}

// NewSelector creates a Selector stamping quizzes with the wall clock.
func NewSelector() *Selector {
	return &Selector{now: time.Now, newID: util.NewULIDAt}
}

// Select returns the canned envelope for kind.
func (s *Selector) Select(kind Kind, p Params) (*domain.Envelope, error) {
	switch kind {
	case KindTrending:
		return domain.NewJSONEnvelope(TrendingCareers())
	case KindQuiz:
		return domain.NewJSONEnvelope(s.quiz(p))
	case KindRecommendations:
		n := prefixLen(p.Limit, len(recommendations), len(recommendations))
		return domain.NewJSONEnvelope(domain.RecommendationList{
			Recommendations: append([]domain.Recommendation{}, recommendations[:n]...),
		})
	case KindCategoryCareers:
		return domain.NewJSONEnvelope(careersInCategory(p.Category, p.Count))
	case KindEnrichment:
		return domain.NewJSONEnvelope(enrich(p.Titles))
	default:
		return nil, fmt.Errorf("no fallback registered for %s", kind)
	}
}

// TrendingCareers returns a copy of the full trending catalog.
func TrendingCareers() []domain.Career {
	return append([]domain.Career{}, trendingCareers...)
}

// QuizQuestions returns a copy of the canonical ordered question list.
func QuizQuestions() []domain.QuizQuestion {
	return append([]domain.QuizQuestion{}, quizQuestions...)
}

// Recommendations returns a copy of the canned recommendation list.
func Recommendations() []domain.Recommendation {
	return append([]domain.Recommendation{}, recommendations...)
}

func (s *Selector) quiz(p Params) domain.Quiz {
	n := prefixLen(p.NumQuestions, DefaultQuizSize, len(quizQuestions))

	title := "Career Discovery Quiz"
	if topic := strings.TrimSpace(p.Topic); topic != "" {
		title = topic + " Career Quiz"
	}
	return domain.Quiz{
		ID:          s.newID(s.now()),
		Title:       title,
		Description: "A practice quiz to help you explore careers while live generation is unavailable.",
		Questions:   append([]domain.QuizQuestion{}, quizQuestions[:n]...),
	}
}

func careersInCategory(category string, count *int) []domain.Career {
	var matched []domain.Career
	for _, c := range trendingCareers {
		if strings.EqualFold(c.Category, strings.TrimSpace(category)) {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		matched = trendingCareers
	}
	n := prefixLen(count, len(matched), len(matched))
	return append([]domain.Career{}, matched[:n]...)
}

func enrich(titles []string) map[string]domain.Career {
	out := make(map[string]domain.Career, len(titles))
	for _, title := range titles {
		for _, c := range trendingCareers {
			if strings.EqualFold(c.Title, strings.TrimSpace(title)) {
				out[title] = c
				break
			}
		}
	}
	return out
}

// prefixLen resolves how many leading catalog entries to return:
// min(requested, available), with def standing in for a missing request.
// Negative requests yield zero. Entries are never repeated or padded.
func prefixLen(requested *int, def, available int) int {
	n := def
	if requested != nil {
		n = *requested
	}
	if n < 0 {
		n = 0
	}
	if n > available {
		n = available
	}
	return n
}
