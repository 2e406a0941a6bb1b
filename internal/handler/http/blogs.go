package http

import (
	"net/http"

	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/internal/utils"
	"github.com/MKhiriev/go-bloglist/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.services.BlogService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}

	utils.WriteJSON(w, blogs, http.StatusOK)
}

func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, ErrUnauthorized)
		return
	}

	var req models.CreateBlogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	blog, err := h.services.BlogService.Create(ctx, req, actor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("blog_id", blog.ID).Msg("blog created")
	utils.WriteJSON(w, blog, http.StatusCreated)
}

func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, ErrUnauthorized)
		return
	}

	var update models.BlogUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	blog, err := h.services.BlogService.Update(ctx, chi.URLParam(r, "id"), update, actor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, blog, http.StatusOK)
}

func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, ErrUnauthorized)
		return
	}

	if err := h.services.BlogService.Delete(ctx, chi.URLParam(r, "id"), actor); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) blogStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.BlogService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
