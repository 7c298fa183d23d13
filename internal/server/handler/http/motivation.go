package http

import (
	"net/http"

	"github.com/atinyakov/GrowthMindset/internal/motivation"
)

// MotivationResponse lists a quote of the day and the selectable options
// for the summary form.
type MotivationResponse struct {
	Quote           string   `json:"quote"`
	Tips            []string `json:"tips"`
	FeedbackOptions []string `json:"feedback_options"`
}

// Motivation handles GET /api/motivation.
func Motivation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MotivationResponse{
		Quote:           motivation.Quote(),
		Tips:            motivation.Tips,
		FeedbackOptions: motivation.FeedbackOptions,
	})
}
