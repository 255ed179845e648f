package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/solilop/solilop-backend/internal/service/whisper"
)

type whisperService interface {
	ListWhispers(ctx context.Context, input whisper.ListInput) (*whisper.ListResult, error)
	MarkRead(ctx context.Context, input whisper.MarkReadInput) error
}

// WhisperHandler serves /api/whispers.
type WhisperHandler struct {
	svc whisperService
	log *slog.Logger
}

// NewWhisperHandler creates a WhisperHandler.
func NewWhisperHandler(svc whisperService, logger *slog.Logger) *WhisperHandler {
	return &WhisperHandler{svc: svc, log: logger.With("handler", "whisper")}
}

type whisperResponse struct {
	ID             string `json:"id"`
	ToUserID       string `json:"to_user_id"`
	Message        string `json:"message"`
	SentimentMatch string `json:"sentiment_match"`
	CreatedAt      int64  `json:"created_at"`
	IsRead         bool   `json:"is_read"`
}

type listWhispersResponse struct {
	Whispers    []whisperResponse `json:"whispers"`
	UnreadCount int               `json:"unread_count"`
	Total       int               `json:"total"`
}

// List handles GET /api/whispers. unread_only=true restricts the page to
// unread whispers; unread_count is always the caller's overall count.
func (h *WhisperHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ListWhispers(r.Context(), whisper.ListInput{
		Limit:      limit,
		Offset:     offset,
		UnreadOnly: r.URL.Query().Get("unread_only") == "true",
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listWhispersResponse{
		Whispers:    make([]whisperResponse, 0, len(result.Whispers)),
		UnreadCount: result.UnreadCount,
		Total:       len(result.Whispers),
	}
	for _, wh := range result.Whispers {
		resp.Whispers = append(resp.Whispers, whisperResponse{
			ID:             wh.ID.String(),
			ToUserID:       wh.RecipientID.String(),
			Message:        wh.Message,
			SentimentMatch: wh.SentimentMatch,
			CreatedAt:      wh.CreatedAt.UnixMilli(),
			IsRead:         wh.IsRead,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// MarkRead handles PUT /api/whispers/{id}/read. Whispers addressed to
// someone else are reported as not found.
func (h *WhisperHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// Malformed ids cannot name one of the caller's whispers.
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.MarkRead(r.Context(), whisper.MarkReadInput{WhisperID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeSuccess(w)
}
