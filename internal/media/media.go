// Package media implements the on-disk media store. Uploaded files land
// in one subdirectory per resource under a configurable root, get a
// collision-resistant generated name, and are referenced from content
// rows by their public path (e.g. "uploads/news/news-<ms>-<uuid>.jpg").
package media

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"patrika/internal/models"
)

// PublicPrefix is the URL path prefix under which stored files are served.
const PublicPrefix = "uploads"

var (
	// ErrFileType is returned when an upload is not an allowed image type.
	ErrFileType = errors.New("only image files are allowed")

	// ErrTooLarge is returned when an upload exceeds the resource's size limit.
	ErrTooLarge = errors.New("file too large")
)

// allowedExtensions is the image extension allow-list for restricted resources.
var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// allowedImageTypes is the sniffed MIME allow-list matching allowedExtensions.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Store writes and removes uploaded files under a root directory.
type Store struct {
	root string
}

// NewStore creates a media store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the directory files are stored under.
func (s *Store) Root() string {
	return s.root
}

// Save extracts the resource's file field from an already-parsed
// multipart request, validates it against the resource's upload policy,
// and writes it to disk. It returns the stored reference path, or ""
// with a nil error when the request carries no file at all.
func (s *Store) Save(r *http.Request, res models.Resource) (string, error) {
	file, header, err := r.FormFile(res.FileField)
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		// A text value in the file field also means "no upload".
		return "", nil
	}
	defer file.Close()

	if res.MaxUploadSize > 0 && header.Size > res.MaxUploadSize {
		return "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if res.ImagesOnly {
		if err := checkImage(file, ext); err != nil {
			return "", err
		}
	}

	dir := filepath.Join(s.root, res.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%d-%s%s", res.Name, time.Now().UnixMilli(), uuid.New(), ext)

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return path.Join(PublicPrefix, res.Name, name), nil
}

// checkImage validates the extension and the sniffed content type against
// the image allow-lists. The file is rewound afterwards so the caller can
// read it from the start.
func checkImage(file multipart.File, ext string) error {
	if !allowedExtensions[ext] {
		return ErrFileType
	}

	// Sniff the first 512 bytes; the declared Content-Type header is
	// client-controlled and not trusted.
	sniff := make([]byte, 512)
	n, err := file.Read(sniff)
	if err != nil && err != io.EOF {
		return fmt.Errorf("read upload: %w", err)
	}
	if !allowedImageTypes[http.DetectContentType(sniff[:n])] {
		return ErrFileType
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind upload: %w", err)
	}
	return nil
}

// Remove deletes the file behind a stored reference. It is best-effort:
// a missing file or any other failure is logged and swallowed, never
// surfaced to the caller.
func (s *Store) Remove(ref string) {
	if ref == "" {
		return
	}

	rel, ok := strings.CutPrefix(ref, PublicPrefix+"/")
	if !ok {
		// Raw string references supplied by clients may point anywhere;
		// only files inside the store are ours to delete.
		return
	}
	rel = filepath.Clean(rel)
	if strings.HasPrefix(rel, "..") {
		return
	}

	if err := os.Remove(filepath.Join(s.root, rel)); err != nil && !os.IsNotExist(err) {
		slog.Warn("media file cleanup failed", "ref", ref, "error", err)
	}
}
