// Package prompt turns endpoint parameters into model instructions. Every
// builder is deterministic for its input and spells out the exact JSON shape
// expected back.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Defaults applied when a caller omits a parameter.
const (
	DefaultTrendingCount         = 24
	DefaultRecommendLimit        = 12
	DefaultCareerRecommendations = 3
	DefaultQuizQuestions         = 5
	DefaultCategoryCount         = 15
)

const careerSchema = `{
  "id": "string",
  "title": "string",
  "description": "string",
  "category": "string",
  "requiredSkills": ["string"],
  "recommendedSkills": ["string"],
  "averageSalary": number,
  "growthPotential": "Low" | "Medium" | "High" | "Very High",
  "companies": ["string"],
  "courses": ["string"],
  "imageUrl": "string"
}`

const quizSchema = `{
  "id": "string",
  "title": "string",
  "description": "string",
  "questions": [
    {
      "id": "string",
      "question": "string",
      "options": [{"id": "string", "text": "string"}],
      "correctAnswerId": "string (must equal one option id)",
      "explanation": "string",
      "points": integer
    }
  ]
}`

const recommendationSchema = `{
  "recommendations": [
    {"career": "string", "explanation": "string"}
  ]
}`

const jsonOnly = "Respond ONLY with valid JSON. Do not wrap it in markdown code fences and do not add commentary."

// IntOr returns *v, or def when v is nil.
func IntOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// Trending asks for count currently in-demand careers.
func Trending(count int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are a career market analyst. List %d trending careers for the current job market.\n", count))
	sb.WriteString("Cover a diverse mix of industries and vary the selection each time you are asked.\n")
	sb.WriteString("Use realistic average annual salaries in USD, well-known hiring companies and reputable courses.\n\n")
	sb.WriteString(fmt.Sprintf("Return a JSON array of exactly %d objects, each with this schema:\n", count))
	sb.WriteString(careerSchema)
	sb.WriteString("\n\n" + jsonOnly + "\n")
	return sb.String()
}

// Recommend asks for careers matching the user's stated preferences.
func Recommend(preferences map[string]interface{}, limit int) string {
	var sb strings.Builder
	sb.WriteString("You are a career advisor. Recommend careers that fit the following user preferences:\n")
	sb.WriteString(encode(preferences, "{}") + "\n\n")
	sb.WriteString(fmt.Sprintf("Suggest up to %d careers, ordered from best to weakest fit, and explain each suggestion in one or two sentences.\n\n", limit))
	sb.WriteString("Return a JSON object with this schema:\n")
	sb.WriteString(recommendationSchema)
	sb.WriteString("\n\n" + jsonOnly + "\n")
	return sb.String()
}

// Enrich asks for full career details for each title, keyed by title.
func Enrich(titles []string) string {
	var sb strings.Builder
	sb.WriteString("You are a career research assistant. Provide detailed information for each of these career titles:\n")
	for _, title := range titles {
		sb.WriteString("- " + title + "\n")
	}
	sb.WriteString("\nReturn a JSON object whose keys are the exact titles listed above and whose values follow this schema:\n")
	sb.WriteString(careerSchema)
	sb.WriteString("\n\n" + jsonOnly + "\n")
	return sb.String()
}

// QuizOptions configures a quiz prompt.
type QuizOptions struct {
	Topic         string
	Subcategory   string
	Difficulty    string
	QuestionStyle string
	NumQuestions  int
}

// Quiz asks for a multiple-choice quiz.
func Quiz(opts QuizOptions) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are an expert quiz author. Create a multiple-choice quiz with exactly %d questions.\n", opts.NumQuestions))
	if opts.Topic != "" {
		sb.WriteString("TOPIC: " + opts.Topic + "\n")
	}
	if opts.Subcategory != "" {
		sb.WriteString("SUBCATEGORY: " + opts.Subcategory + "\n")
	}
	if opts.Difficulty != "" {
		sb.WriteString("DIFFICULTY: " + opts.Difficulty + "\n")
	}
	if opts.QuestionStyle != "" {
		sb.WriteString("QUESTION STYLE: " + opts.QuestionStyle + "\n")
	}
	sb.WriteString("\nRULES:\n")
	sb.WriteString("- Each question has exactly 4 options with ids \"a\", \"b\", \"c\" and \"d\".\n")
	sb.WriteString("- correctAnswerId must be the id of one of that question's options.\n")
	sb.WriteString("- Randomize which option is correct and vary the questions between requests.\n")
	sb.WriteString("- Keep explanations under 50 words and award 10 points per question.\n\n")
	sb.WriteString("Return a JSON object with this schema:\n")
	sb.WriteString(quizSchema)
	sb.WriteString("\n\n" + jsonOnly + "\n")
	return sb.String()
}

// CareersByCategory asks for count careers within one category.
func CareersByCategory(category string, count int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are a career market analyst. List %d careers in the %q category.\n", count, category))
	sb.WriteString("Include both established and emerging roles and set every category field to the requested category.\n\n")
	sb.WriteString(fmt.Sprintf("Return a JSON array of exactly %d objects, each with this schema:\n", count))
	sb.WriteString(careerSchema)
	sb.WriteString("\n\n" + jsonOnly + "\n")
	return sb.String()
}

// CareerRecommendations asks for careers derived from prior quiz answers.
func CareerRecommendations(answers []interface{}, limit int) string {
	var sb strings.Builder
	sb.WriteString("You are a career advisor. A user completed a career interest quiz with these answers:\n")
	sb.WriteString(encode(answers, "[]") + "\n\n")
	sb.WriteString(fmt.Sprintf("Based on these answers, recommend exactly %d careers and explain how the answers support each one.\n\n", limit))
	sb.WriteString("Return a JSON object with this schema:\n")
	sb.WriteString(recommendationSchema)
	sb.WriteString("\n\n" + jsonOnly + "\n")
	return sb.String()
}

// encode renders v as indented JSON; encoding/json sorts map keys, keeping
// the prompt deterministic.
func encode(v interface{}, empty string) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil || string(data) == "null" {
		return empty
	}
	return string(data)
}
