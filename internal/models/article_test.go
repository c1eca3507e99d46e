package models

import (
	"testing"
	"time"
)

func strp(s string) *string { return &s }

func sampleArticle() Article {
	return Article{
		ID:            7,
		TitleEN:       "Flood Alert",
		TitleNP:       "पानी",
		SubtitleEN:    strp("Rivers rising"),
		TagEN:         strp("Weather"),
		DescriptionEN: "Heavy rain expected.",
		DescriptionNP: "भारी वर्षाको सम्भावना।",
		Image:         strp("uploads/news/news-1-a.jpg"),
		PublishedAt:   time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestApplyLeavesAbsentFieldsUnchanged(t *testing.T) {
	a := sampleArticle()
	a.Apply(&ArticleInput{})

	want := sampleArticle()
	if a.TitleEN != want.TitleEN || a.TitleNP != want.TitleNP {
		t.Errorf("titles changed: got %q/%q", a.TitleEN, a.TitleNP)
	}
	if a.Image == nil || *a.Image != *want.Image {
		t.Errorf("image changed: got %v", a.Image)
	}
	if !a.PublishedAt.Equal(want.PublishedAt) {
		t.Errorf("published_at changed: got %v", a.PublishedAt)
	}
	if a.SubtitleEN == nil || *a.SubtitleEN != "Rivers rising" {
		t.Errorf("subtitle changed: got %v", a.SubtitleEN)
	}
}

func TestApplyMergesSuppliedFields(t *testing.T) {
	a := sampleArticle()
	when := time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)
	a.Apply(&ArticleInput{
		TitleEN:     strp("Landslide Warning"),
		TagNP:       strp("मौसम"),
		Image:       strp("uploads/news/news-2-b.jpg"),
		PublishedAt: &when,
	})

	if a.TitleEN != "Landslide Warning" {
		t.Errorf("title_en: got %q", a.TitleEN)
	}
	if a.TitleNP != "पानी" {
		t.Errorf("title_np overwritten: got %q", a.TitleNP)
	}
	if a.TagNP == nil || *a.TagNP != "मौसम" {
		t.Errorf("tag_np: got %v", a.TagNP)
	}
	if a.TagEN == nil || *a.TagEN != "Weather" {
		t.Errorf("tag_en overwritten: got %v", a.TagEN)
	}
	if a.Image == nil || *a.Image != "uploads/news/news-2-b.jpg" {
		t.Errorf("image: got %v", a.Image)
	}
	if !a.PublishedAt.Equal(when) {
		t.Errorf("published_at: got %v", a.PublishedAt)
	}
}

func TestApplyCanClearOptionalFieldWithEmptyString(t *testing.T) {
	a := sampleArticle()
	a.Apply(&ArticleInput{SubtitleEN: strp("")})

	if a.SubtitleEN == nil || *a.SubtitleEN != "" {
		t.Errorf("expected subtitle cleared to empty string, got %v", a.SubtitleEN)
	}
}

func TestResourceRegistry(t *testing.T) {
	byName := map[string]Resource{}
	for _, res := range Resources() {
		byName[res.Name] = res
	}

	if len(byName) != 7 {
		t.Fatalf("expected 7 resources, got %d", len(byName))
	}

	main := byName["main"]
	if main.ImageRequired {
		t.Error("main must not require an image")
	}
	if main.MaxUploadSize != 0 || main.ImagesOnly {
		t.Error("main must accept any file of any size")
	}

	if got := byName["artsandculture"].FileField; got != "photo" {
		t.Errorf("artsandculture file field: got %q, want photo", got)
	}

	for _, name := range []string{"news", "artsandculture", "interviews", "more", "social", "home"} {
		res := byName[name]
		if !res.ImageRequired {
			t.Errorf("%s must require an image", name)
		}
		if res.MaxUploadSize != MaxImageSize {
			t.Errorf("%s upload limit: got %d", name, res.MaxUploadSize)
		}
		if !res.ImagesOnly {
			t.Errorf("%s must restrict uploads to images", name)
		}
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleUser) || !ValidRole(RoleAdmin) {
		t.Error("user and admin must be valid roles")
	}
	if ValidRole(Role("superadmin")) {
		t.Error("superadmin must not be a valid role")
	}
}
