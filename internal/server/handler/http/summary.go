package http

import (
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/GrowthMindset/internal/models"
	"github.com/atinyakov/GrowthMindset/internal/summary"
)

// SummaryHandler serves the downloadable progress summary.
type SummaryHandler struct {
	// Generate renders the document; summary.Generate in production.
	Generate func(summary.Input) ([]byte, error)
	Log      *zap.Logger
}

// SummaryRequest carries the fields printed on the summary page.
// Goal and achieved date must be filled in before a document is made.
type SummaryRequest struct {
	Goal         string `json:"goal" validate:"required"`
	AchievedDate string `json:"achieved_date" validate:"required,datetime=2006-01-02"`
	Tip          string `json:"tip"`
	Feedback     string `json:"feedback"`
}

// Download handles POST /api/summary and answers with the PDF as an attachment.
func (h *SummaryHandler) Download(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "please fill in all fields before downloading", http.StatusBadRequest)
		return
	}
	achieved, err := time.Parse(models.DateLayout, req.AchievedDate)
	if err != nil {
		http.Error(w, "please fill in all fields before downloading", http.StatusBadRequest)
		return
	}

	doc, err := h.Generate(summary.Input{
		Goal:         req.Goal,
		AchievedDate: achieved,
		Tip:          req.Tip,
		Feedback:     req.Feedback,
	})
	if err != nil {
		h.Log.Error("failed to generate summary", zap.Error(err))
		http.Error(w, "failed to generate document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", summary.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+summary.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
