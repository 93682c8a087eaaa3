package tgCallback

// Callback button prefixes
const (
	EnterAuthorSurname string = "enter_author_surname"
	SearchByBookTitle  string = "search_by_book_title"
	PageNumber         string = "page_number"
	BackToBooksPage    string = "back_to_books_page"
	LinkEmail          string = "link_email"
	DeleteEmail        string = "delete_email"

	// prefixes
	ToBookDetails  string = "to_book_details:"
	ToBooksPage    string = "to_books_page:"
	DownloadBook   string = "download_book:"
	SendToKindle   string = "send_to_kindle:"
	AddFavorite    string = "add_favorite:"
	DeleteFavorite string = "delete_favorite:"
)
