package models

// MaxImageSize is the upload size limit applied to every resource except
// the main article type, which accepts files of any size and type.
const MaxImageSize = 10 << 20 // 10 MB

// Resource describes one content type: its route segment, table, and
// upload policy. The CRUD handlers and stores are parameterized by it,
// so adding a content type means adding an entry here plus a migration.
type Resource struct {
	Name          string // URL segment and upload subdirectory
	Table         string
	Label         string // singular name used in messages
	FileField     string // multipart file field, also the string fallback key
	MaxUploadSize int64  // bytes; 0 means unlimited
	ImagesOnly    bool   // restrict uploads to the image allow-list
	ImageRequired bool   // a media reference must be present at creation
}

// Resources returns the registry of all content types, in mount order.
func Resources() []Resource {
	return []Resource{
		{Name: "main", Table: "main", Label: "Article", FileField: "image"},
		{Name: "news", Table: "news", Label: "News", FileField: "image",
			MaxUploadSize: MaxImageSize, ImagesOnly: true, ImageRequired: true},
		{Name: "artsandculture", Table: "artsandculture", Label: "Arts and culture item", FileField: "photo",
			MaxUploadSize: MaxImageSize, ImagesOnly: true, ImageRequired: true},
		{Name: "interviews", Table: "interviews", Label: "Interview", FileField: "image",
			MaxUploadSize: MaxImageSize, ImagesOnly: true, ImageRequired: true},
		{Name: "more", Table: "more", Label: "Item", FileField: "image",
			MaxUploadSize: MaxImageSize, ImagesOnly: true, ImageRequired: true},
		{Name: "social", Table: "social", Label: "Social post", FileField: "image",
			MaxUploadSize: MaxImageSize, ImagesOnly: true, ImageRequired: true},
		{Name: "home", Table: "home", Label: "Home item", FileField: "image",
			MaxUploadSize: MaxImageSize, ImagesOnly: true, ImageRequired: true},
	}
}
