package dto

// TrendingRequest represents the body of POST /trending
// @Description Request body for trending careers
type TrendingRequest struct {
	Count *int `json:"count,omitempty" example:"24"`
}

// RecommendRequest represents the body of POST /recommend
// @Description Request body for preference-based recommendations
type RecommendRequest struct {
	Preferences map[string]interface{} `json:"preferences" swaggertype:"object"`
	Limit       *int                   `json:"limit,omitempty" example:"12"`
}

// EnrichRequest represents the body of POST /enrich
type EnrichRequest struct {
	Titles []string `json:"titles" example:"Data Scientist,UX Designer"`
}

// CategoryRequest represents the body of POST /careers-by-category
type CategoryRequest struct {
	Category string `json:"category" example:"Technology"`
	Count    *int   `json:"count,omitempty" example:"15"`
}

// InsertResponse reports the id the document store assigned
// @Description Identifier of the inserted document
type InsertResponse struct {
	InsertedID string `json:"insertedId" example:"665f1c2e9b1d4a0012345678"`
}

// ErrorResponse is the body of every failed request
// @Description Error response
type ErrorResponse struct {
	Error string `json:"error" example:"GEMINI_API_KEY is not configured"`
}
