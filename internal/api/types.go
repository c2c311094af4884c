package api

// PlaceholderCover is used when a book is saved without a cover image URL.
const PlaceholderCover = "https://placehold.co/200x300?text=No+Cover"

// Book mirrors a record in the remote collection. The id is assigned by the
// server on creation and never changes afterward.
type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	CoverImage  string `json:"coverImage"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
	IsFavorite  bool   `json:"isFavorite"`
}

// NewBook carries the fields sent when creating a record. The server assigns
// the id, so the payload deliberately has no id field.
type NewBook struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	CoverImage  string `json:"coverImage"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
	IsFavorite  bool   `json:"isFavorite"`
}
