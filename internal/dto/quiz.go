package dto

// QuizRequest asks the model for a multiple-choice career quiz
// @Description Request body for quiz generation. All fields are optional.
type QuizRequest struct {
	Topic         string `json:"topic" example:"Software Engineering"`
	Subcategory   string `json:"subcategory" example:"Backend"`
	Difficulty    string `json:"difficulty" example:"intermediate"`
	QuestionStyle string `json:"questionStyle" example:"scenario-based"`
	NumQuestions  *int   `json:"numQuestions,omitempty" example:"5"`
}

// CareerRecommendationsRequest carries prior quiz answers
// @Description Request body for recommendations derived from quiz answers
type CareerRecommendationsRequest struct {
	Answers []interface{} `json:"answers" swaggertype:"array,object"`
	Limit   *int          `json:"limit,omitempty" example:"3"`
}

// QuizResultResponse is a stored quiz result as returned to callers
// @Description Stored quiz result. Fields other than userId and createdAt are caller-defined.
type QuizResultResponse map[string]interface{}
