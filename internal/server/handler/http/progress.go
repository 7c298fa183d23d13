package http

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/GrowthMindset/internal/middleware"
	"github.com/atinyakov/GrowthMindset/internal/models"
	"github.com/atinyakov/GrowthMindset/internal/motivation"
	"github.com/atinyakov/GrowthMindset/internal/service"
)

// ProgressService defines the progress operations required by ProgressHandler.
type ProgressService interface {
	RecordProgress(ctx context.Context, sess *models.Session, percentage int) (*models.ProgressEntry, error)
}

// ProgressHandler handles daily progress submissions.
type ProgressHandler struct {
	ProgressService ProgressService
	Log             *zap.Logger
}

// ProgressRequest is the slider value, 0 to 100.
type ProgressRequest struct {
	Progress *int `json:"progress" validate:"required,min=0,max=100"`
}

// ProgressResponse echoes the saved entry with an encouragement message.
type ProgressResponse struct {
	Entry   models.ProgressEntry `json:"entry"`
	Message string               `json:"message"`
}

// Save handles POST /api/progress for the session in the request context.
func (h *ProgressHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req ProgressRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "progress must be between 0 and 100", http.StatusBadRequest)
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	entry, err := h.ProgressService.RecordProgress(r.Context(), sess, *req.Progress)
	if errors.Is(err, service.ErrMissingSession) {
		http.Error(w, "please log in to save your progress", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.Log.Error("failed to record progress", zap.Error(err))
		http.Error(w, "failed to save progress", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, ProgressResponse{
		Entry:   *entry,
		Message: motivation.ProgressMessage(entry.Progress),
	})
}
