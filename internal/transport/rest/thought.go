package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/solilop/solilop-backend/internal/domain"
	"github.com/solilop/solilop-backend/internal/service/thought"
)

type thoughtService interface {
	CreateThought(ctx context.Context, input thought.CreateInput) (*domain.Thought, error)
	ListThoughts(ctx context.Context, input thought.ListInput) ([]*domain.Thought, error)
}

// ThoughtHandler serves /api/thoughts.
type ThoughtHandler struct {
	svc thoughtService
	log *slog.Logger
}

// NewThoughtHandler creates a ThoughtHandler.
func NewThoughtHandler(svc thoughtService, logger *slog.Logger) *ThoughtHandler {
	return &ThoughtHandler{svc: svc, log: logger.With("handler", "thought")}
}

type createThoughtRequest struct {
	Content string `json:"content"`
}

type createThoughtResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Sentiment string `json:"sentiment"`
	CreatedAt int64  `json:"created_at"`
}

type thoughtResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	Sentiment string `json:"sentiment"`
	CreatedAt int64  `json:"created_at"`
}

type listThoughtsResponse struct {
	Thoughts []thoughtResponse `json:"thoughts"`
	Total    int               `json:"total"`
}

// Create handles POST /api/thoughts.
func (h *ThoughtHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createThoughtRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.CreateThought(r.Context(), thought.CreateInput{Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createThoughtResponse{
		ID:        t.ID.String(),
		Content:   t.Content,
		Sentiment: t.Sentiment.String(),
		CreatedAt: t.CreatedAt.UnixMilli(),
	})
}

// List handles GET /api/thoughts. total is the size of the returned page.
func (h *ThoughtHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.ListThoughts(r.Context(), thought.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listThoughtsResponse{Thoughts: make([]thoughtResponse, 0, len(items)), Total: len(items)}
	for _, t := range items {
		resp.Thoughts = append(resp.Thoughts, thoughtResponse{
			ID:        t.ID.String(),
			UserID:    t.UserID.String(),
			Content:   t.Content,
			Sentiment: t.Sentiment.String(),
			CreatedAt: t.CreatedAt.UnixMilli(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
