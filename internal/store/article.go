// Package store provides database access methods for all content and
// admin entities. Each store struct wraps a *sql.DB and exposes typed
// query methods.
package store

import (
	"database/sql"
	"fmt"

	"patrika/internal/models"
)

// ArticleStore handles database operations for one content table.
// The same implementation serves every content type; the table name
// comes from the resource registry, never from user input.
type ArticleStore struct {
	db       *sql.DB
	resource models.Resource
}

// NewArticleStore creates an ArticleStore bound to the given resource's table.
func NewArticleStore(db *sql.DB, resource models.Resource) *ArticleStore {
	return &ArticleStore{db: db, resource: resource}
}

// Resource returns the resource this store is bound to.
func (s *ArticleStore) Resource() models.Resource {
	return s.resource
}

// articleColumns lists the columns selected in article queries.
const articleColumns = `id, badge_en, badge_np, title_en, title_np,
	subtitle_en, subtitle_np, tag_en, tag_np, category_en, category_np,
	description_en, description_np, image, published_at, created_at, updated_at`

// scanArticle scans an article row from the result set.
func scanArticle(scanner interface{ Scan(...any) error }) (*models.Article, error) {
	var a models.Article
	err := scanner.Scan(
		&a.ID, &a.BadgeEN, &a.BadgeNP, &a.TitleEN, &a.TitleNP,
		&a.SubtitleEN, &a.SubtitleNP, &a.TagEN, &a.TagNP, &a.CategoryEN, &a.CategoryNP,
		&a.DescriptionEN, &a.DescriptionNP, &a.Image, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns all articles, newest publication first. Creation time
// breaks ties between identical publication dates.
func (s *ArticleStore) List() ([]models.Article, error) {
	rows, err := s.db.Query(`
		SELECT ` + articleColumns + `
		FROM ` + s.resource.Table + `
		ORDER BY published_at DESC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.resource.Table, err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.resource.Table, err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// FindByID retrieves a single article. Returns nil if not found.
func (s *ArticleStore) FindByID(id int64) (*models.Article, error) {
	row := s.db.QueryRow(
		`SELECT `+articleColumns+` FROM `+s.resource.Table+` WHERE id = $1`, id)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s by id: %w", s.resource.Table, err)
	}
	return a, nil
}

// Create inserts a new article and returns it with generated fields populated.
func (s *ArticleStore) Create(a *models.Article) (*models.Article, error) {
	row := s.db.QueryRow(`
		INSERT INTO `+s.resource.Table+` (badge_en, badge_np, title_en, title_np,
			subtitle_en, subtitle_np, tag_en, tag_np, category_en, category_np,
			description_en, description_np, image, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+articleColumns,
		a.BadgeEN, a.BadgeNP, a.TitleEN, a.TitleNP,
		a.SubtitleEN, a.SubtitleNP, a.TagEN, a.TagNP, a.CategoryEN, a.CategoryNP,
		a.DescriptionEN, a.DescriptionNP, a.Image, a.PublishedAt,
	)
	created, err := scanArticle(row)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", s.resource.Table, err)
	}
	return created, nil
}

// Update persists all mutable fields of the article and returns the
// stored row. Returns nil if the article no longer exists.
func (s *ArticleStore) Update(a *models.Article) (*models.Article, error) {
	row := s.db.QueryRow(`
		UPDATE `+s.resource.Table+` SET
			badge_en = $1, badge_np = $2, title_en = $3, title_np = $4,
			subtitle_en = $5, subtitle_np = $6, tag_en = $7, tag_np = $8,
			category_en = $9, category_np = $10,
			description_en = $11, description_np = $12,
			image = $13, published_at = $14, updated_at = NOW()
		WHERE id = $15
		RETURNING `+articleColumns,
		a.BadgeEN, a.BadgeNP, a.TitleEN, a.TitleNP,
		a.SubtitleEN, a.SubtitleNP, a.TagEN, a.TagNP, a.CategoryEN, a.CategoryNP,
		a.DescriptionEN, a.DescriptionNP, a.Image, a.PublishedAt, a.ID,
	)
	updated, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", s.resource.Table, err)
	}
	return updated, nil
}

// Delete removes an article and returns it so the caller can clean up
// the referenced media file. Returns nil if not found.
func (s *ArticleStore) Delete(id int64) (*models.Article, error) {
	row := s.db.QueryRow(
		`DELETE FROM `+s.resource.Table+` WHERE id = $1 RETURNING `+articleColumns, id)
	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete %s: %w", s.resource.Table, err)
	}
	return a, nil
}
