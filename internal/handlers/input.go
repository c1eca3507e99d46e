package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"patrika/internal/httpjson"
	"patrika/internal/media"
	"patrika/internal/models"
)

// articleBody is the JSON wire shape for create/update requests. Pointer
// fields make field presence explicit: an absent field stays nil and the
// stored value is kept.
type articleBody struct {
	BadgeEN       *string `json:"badge_en"`
	BadgeNP       *string `json:"badge_np"`
	TitleEN       *string `json:"title_en"`
	TitleNP       *string `json:"title_np"`
	SubtitleEN    *string `json:"subtitle_en"`
	SubtitleNP    *string `json:"subtitle_np"`
	TagEN         *string `json:"tag_en"`
	TagNP         *string `json:"tag_np"`
	CategoryEN    *string `json:"category_en"`
	CategoryNP    *string `json:"category_np"`
	DescriptionEN *string `json:"description_en"`
	DescriptionNP *string `json:"description_np"`
	Image         *string `json:"image"`
	Photo         *string `json:"photo"`
	Date          *string `json:"date"`
}

// readInput parses a create/update request body into an ArticleInput.
// Multipart bodies may carry a file in the resource's file field, which
// is written to the media store; the returned saved path is "" when no
// file was uploaded. On failure readInput writes the error response and
// returns ok=false.
func (h *Resource) readInput(w http.ResponseWriter, r *http.Request) (in *models.ArticleInput, saved string, ok bool) {
	contentType := r.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(contentType, "multipart/form-data"):
		return h.readMultipart(w, r)
	case strings.HasPrefix(contentType, "application/json"):
		return h.readJSON(w, r)
	default:
		// No body, or an unhandled content type: nothing supplied.
		return &models.ArticleInput{}, "", true
	}
}

// readMultipart parses a multipart form, stores an uploaded file if
// present, and maps text fields by key presence.
func (h *Resource) readMultipart(w http.ResponseWriter, r *http.Request) (*models.ArticleInput, string, bool) {
	if h.res.MaxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.res.MaxUploadSize+formOverhead)
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpjson.Error(w, http.StatusRequestEntityTooLarge, "File too large")
			return nil, "", false
		}
		httpjson.Error(w, http.StatusBadRequest, "Invalid form data")
		return nil, "", false
	}

	saved, err := h.media.Save(r, h.res)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrFileType):
			httpjson.Error(w, http.StatusBadRequest, "Only image files are allowed")
		case errors.Is(err, media.ErrTooLarge):
			httpjson.Error(w, http.StatusRequestEntityTooLarge, "File too large")
		default:
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
		}
		return nil, "", false
	}

	in := &models.ArticleInput{
		BadgeEN:       formField(r, "badge_en"),
		BadgeNP:       formField(r, "badge_np"),
		TitleEN:       formField(r, "title_en"),
		TitleNP:       formField(r, "title_np"),
		SubtitleEN:    formField(r, "subtitle_en"),
		SubtitleNP:    formField(r, "subtitle_np"),
		TagEN:         formField(r, "tag_en"),
		TagNP:         formField(r, "tag_np"),
		CategoryEN:    formField(r, "category_en"),
		CategoryNP:    formField(r, "category_np"),
		DescriptionEN: formField(r, "description_en"),
		DescriptionNP: formField(r, "description_np"),
	}

	if saved != "" {
		in.Image = &saved
	} else if ref := formField(r, h.res.FileField); ref != nil {
		// String fallback for clients that pass a path instead of a file.
		in.Image = ref
	}

	if dateStr := formField(r, "date"); dateStr != nil {
		published, perr := parseDate(*dateStr)
		if perr != nil {
			httpjson.Error(w, http.StatusBadRequest, "Invalid date format")
			h.discard(saved)
			return nil, "", false
		}
		in.PublishedAt = &published
	}

	return in, saved, true
}

// readJSON decodes a JSON body. Any decode failure gets the uniform
// invalid-JSON response.
func (h *Resource) readJSON(w http.ResponseWriter, r *http.Request) (*models.ArticleInput, string, bool) {
	var body articleBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid JSON format")
		return nil, "", false
	}

	in := &models.ArticleInput{
		BadgeEN:       body.BadgeEN,
		BadgeNP:       body.BadgeNP,
		TitleEN:       body.TitleEN,
		TitleNP:       body.TitleNP,
		SubtitleEN:    body.SubtitleEN,
		SubtitleNP:    body.SubtitleNP,
		TagEN:         body.TagEN,
		TagNP:         body.TagNP,
		CategoryEN:    body.CategoryEN,
		CategoryNP:    body.CategoryNP,
		DescriptionEN: body.DescriptionEN,
		DescriptionNP: body.DescriptionNP,
	}

	if h.res.FileField == "photo" {
		in.Image = body.Photo
	} else {
		in.Image = body.Image
	}

	if body.Date != nil {
		published, err := parseDate(*body.Date)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "Invalid date format")
			return nil, "", false
		}
		in.PublishedAt = &published
	}

	return in, "", true
}

// formField returns the value of a multipart text field, or nil when the
// field was not part of the request. Presence matters: an empty supplied
// value and an absent field behave differently on update.
func formField(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// parseDate accepts a date-only value or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
