package api

import "github.com/nutriscope/backend/internal/types"

// AnalyzeItem is one requested food; qty is grams and tolerates
// numeric strings.
type AnalyzeItem struct {
	Name string          `json:"name"`
	Qty  types.FlexFloat `json:"qty"`
}

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	City   string          `json:"city"`
	Items  []AnalyzeItem   `json:"items"`
	Gender string          `json:"gender"`
	Height types.FlexFloat `json:"height"`
	Weight types.FlexFloat `json:"weight"`
}

// AnalyzeResponse is the successful analysis result.
type AnalyzeResponse struct {
	Weather         *types.WeatherSnapshot `json:"weather"`
	TotalNutrients  map[string]string      `json:"total_nutrients"`
	Deficient       map[string]string      `json:"deficient"`
	Recommendations []types.Recommendation `json:"recommendations"`
}

// ConsultRequest is the body of POST /consult: the profile plus the
// output of a previous analysis, echoed back by the client.
type ConsultRequest struct {
	Age            types.FlexFloat        `json:"age"`
	Gender         string                 `json:"gender"`
	Height         types.FlexFloat        `json:"height"`
	Weight         types.FlexFloat        `json:"weight"`
	Activity       string                 `json:"activity"`
	TotalNutrients map[string]string      `json:"total_nutrients"`
	Deficient      map[string]string      `json:"deficient"`
	Weather        *types.WeatherSnapshot `json:"weather"`
	Lang           string                 `json:"lang"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message      string                 `json:"message"`
	AnalysisData *types.AnalysisContext `json:"analysis_data"`
	Lang         string                 `json:"lang"`
}
