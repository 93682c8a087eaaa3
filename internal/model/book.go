package model

type BookPreview struct {
	VolumeID string
	Title    string
	Authors  []string
	Year     string
}

type BooksPage struct {
	Books       []BookPreview
	HasNextPage bool
	Page        int
	Title       string
	Author      string
}

type BookSearchRequest struct {
	Title  string
	Author string
	Page   int
}

type FavoriteBook struct {
	VolumeID string `db:"volume_id"`
	Title    string `db:"title"`
	Authors  string `db:"authors"`
}
