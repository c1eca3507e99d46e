// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import "time"

// Article is one content record. Every content resource (main, news,
// arts & culture, interviews, more, social, home) shares this shape;
// the tables differ only by name.
type Article struct {
	ID            int64     `json:"id"`
	BadgeEN       *string   `json:"badge_en,omitempty"`
	BadgeNP       *string   `json:"badge_np,omitempty"`
	TitleEN       string    `json:"title_en"`
	TitleNP       string    `json:"title_np"`
	SubtitleEN    *string   `json:"subtitle_en,omitempty"`
	SubtitleNP    *string   `json:"subtitle_np,omitempty"`
	TagEN         *string   `json:"tag_en,omitempty"`
	TagNP         *string   `json:"tag_np,omitempty"`
	CategoryEN    *string   `json:"category_en,omitempty"`
	CategoryNP    *string   `json:"category_np,omitempty"`
	DescriptionEN string    `json:"description_en"`
	DescriptionNP string    `json:"description_np"`
	Image         *string   `json:"image"`
	PublishedAt   time.Time `json:"published_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ArticleInput is a partial-update representation: a nil field means
// "leave the current value unchanged". Handlers populate it from either
// multipart form data (key presence) or a JSON body (pointer fields).
type ArticleInput struct {
	BadgeEN       *string
	BadgeNP       *string
	TitleEN       *string
	TitleNP       *string
	SubtitleEN    *string
	SubtitleNP    *string
	TagEN         *string
	TagNP         *string
	CategoryEN    *string
	CategoryNP    *string
	DescriptionEN *string
	DescriptionNP *string
	Image         *string
	PublishedAt   *time.Time
}

// Apply merges the supplied fields over the article, leaving nil fields
// untouched.
func (a *Article) Apply(in *ArticleInput) {
	if in.BadgeEN != nil {
		a.BadgeEN = in.BadgeEN
	}
	if in.BadgeNP != nil {
		a.BadgeNP = in.BadgeNP
	}
	if in.TitleEN != nil {
		a.TitleEN = *in.TitleEN
	}
	if in.TitleNP != nil {
		a.TitleNP = *in.TitleNP
	}
	if in.SubtitleEN != nil {
		a.SubtitleEN = in.SubtitleEN
	}
	if in.SubtitleNP != nil {
		a.SubtitleNP = in.SubtitleNP
	}
	if in.TagEN != nil {
		a.TagEN = in.TagEN
	}
	if in.TagNP != nil {
		a.TagNP = in.TagNP
	}
	if in.CategoryEN != nil {
		a.CategoryEN = in.CategoryEN
	}
	if in.CategoryNP != nil {
		a.CategoryNP = in.CategoryNP
	}
	if in.DescriptionEN != nil {
		a.DescriptionEN = *in.DescriptionEN
	}
	if in.DescriptionNP != nil {
		a.DescriptionNP = *in.DescriptionNP
	}
	if in.Image != nil {
		a.Image = in.Image
	}
	if in.PublishedAt != nil {
		a.PublishedAt = *in.PublishedAt
	}
}
