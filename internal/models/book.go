package models

// Book is a catalog entry. Books are created in bulk when the catalog
// is fetched; only the availability flag mutates afterwards.
type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}
