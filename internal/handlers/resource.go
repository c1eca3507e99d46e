// Package handlers implements the HTTP handlers for the content and
// admin APIs. One generic Resource handler serves every content type;
// the per-type differences (table, upload policy, messages) come from
// the resource registry.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"patrika/internal/httpjson"
	"patrika/internal/media"
	"patrika/internal/models"
	"patrika/internal/store"
)

// formOverhead is slack added on top of the upload size limit to leave
// room for the text fields of the multipart body.
const formOverhead = 1 << 20

// maxFormMemory is how much of a multipart body is held in memory while
// parsing; the rest spills to temp files.
const maxFormMemory = 32 << 20

// Resource handles the CRUD routes of one content type.
type Resource struct {
	store *store.ArticleStore
	media *media.Store
	res   models.Resource
}

// NewResource creates the handler group for one content resource.
func NewResource(s *store.ArticleStore, m *media.Store) *Resource {
	return &Resource{store: s, media: m, res: s.Resource()}
}

// Name returns the resource's route segment.
func (h *Resource) Name() string {
	return h.res.Name
}

// List returns all records, newest publication date first.
func (h *Resource) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List()
	if err != nil {
		slog.Error("list failed", "resource", h.res.Name, "error", err)
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []models.Article{}
	}
	httpjson.Write(w, http.StatusOK, items)
}

// Get returns one record by id.
func (h *Resource) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.articleID(w, r)
	if !ok {
		return
	}

	item, err := h.store.FindByID(id)
	if err != nil {
		slog.Error("get failed", "resource", h.res.Name, "error", err)
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if item == nil {
		httpjson.Error(w, http.StatusNotFound, h.res.Label+" not found")
		return
	}
	httpjson.Write(w, http.StatusOK, item)
}

// Create validates the submitted fields, stores an uploaded file if one
// was sent, and inserts the record.
func (h *Resource) Create(w http.ResponseWriter, r *http.Request) {
	in, saved, ok := h.readInput(w, r)
	if !ok {
		return
	}

	if !hasValue(in.TitleEN) || !hasValue(in.TitleNP) ||
		!hasValue(in.DescriptionEN) || !hasValue(in.DescriptionNP) {
		h.discard(saved)
		httpjson.Error(w, http.StatusBadRequest, "English and Nepali title & description are required")
		return
	}
	if h.res.ImageRequired && !hasValue(in.Image) {
		httpjson.Error(w, http.StatusBadRequest, "Image is required")
		return
	}

	article := &models.Article{PublishedAt: time.Now()}
	article.Apply(in)

	created, err := h.store.Create(article)
	if err != nil {
		h.discard(saved)
		slog.Error("create failed", "resource", h.res.Name, "error", err)
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}

// Update merges the supplied fields over the stored record. Fields absent
// from the request keep their prior values. A freshly uploaded file
// replaces the media reference; the old file is deleted only after the
// row update succeeds.
func (h *Resource) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.articleID(w, r)
	if !ok {
		return
	}

	existing, err := h.store.FindByID(id)
	if err != nil {
		slog.Error("update lookup failed", "resource", h.res.Name, "error", err)
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing == nil {
		httpjson.Error(w, http.StatusNotFound, h.res.Label+" not found")
		return
	}

	in, saved, ok := h.readInput(w, r)
	if !ok {
		return
	}

	oldImage := existing.Image
	existing.Apply(in)

	updated, err := h.store.Update(existing)
	if err != nil {
		h.discard(saved)
		slog.Error("update failed", "resource", h.res.Name, "error", err)
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if updated == nil {
		h.discard(saved)
		httpjson.Error(w, http.StatusNotFound, h.res.Label+" not found")
		return
	}

	// The new reference is persisted; the replaced file can go.
	if saved != "" && oldImage != nil && *oldImage != saved {
		h.media.Remove(*oldImage)
	}

	httpjson.Write(w, http.StatusOK, updated)
}

// Delete removes the record, then best-effort removes its media file.
func (h *Resource) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.articleID(w, r)
	if !ok {
		return
	}

	deleted, err := h.store.Delete(id)
	if err != nil {
		slog.Error("delete failed", "resource", h.res.Name, "error", err)
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if deleted == nil {
		httpjson.Error(w, http.StatusNotFound, h.res.Label+" not found")
		return
	}

	if deleted.Image != nil {
		h.media.Remove(*deleted.Image)
	}

	httpjson.Message(w, http.StatusOK, h.res.Label+" deleted successfully")
}

// articleID parses the {id} route parameter, writing a 400 on garbage.
func (h *Resource) articleID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}

// discard best-effort removes a file that was written for a request that
// ultimately failed.
func (h *Resource) discard(saved string) {
	if saved != "" {
		h.media.Remove(saved)
	}
}

// hasValue reports whether an optional field was supplied and is non-empty.
func hasValue(s *string) bool {
	return s != nil && *s != ""
}
