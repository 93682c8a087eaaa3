package model

// Volume - том из Google Books API (kind = books#volume).
type Volume struct {
	Kind       string     `json:"kind"`
	ID         string     `json:"id"`
	Etag       string     `json:"etag,omitempty"`
	SelfLink   string     `json:"selfLink,omitempty"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
	SaleInfo   SaleInfo   `json:"saleInfo,omitempty"`
	AccessInfo AccessInfo `json:"accessInfo,omitempty"`
}

type VolumeInfo struct {
	Title               string               `json:"title"`
	Subtitle            string               `json:"subtitle,omitempty"`
	Authors             []string             `json:"authors,omitempty"`
	Publisher           string               `json:"publisher,omitempty"`
	PublishedDate       string               `json:"publishedDate,omitempty"`
	Description         string               `json:"description,omitempty"`
	IndustryIdentifiers []IndustryIdentifier `json:"industryIdentifiers,omitempty"`
	PageCount           int                  `json:"pageCount,omitempty"`
	Categories          []string             `json:"categories,omitempty"`
	AverageRating       float64              `json:"averageRating,omitempty"`
	RatingsCount        int                  `json:"ratingsCount,omitempty"`
	ImageLinks          ImageLinks           `json:"imageLinks,omitempty"`
	Language            string               `json:"language,omitempty"`
	PreviewLink         string               `json:"previewLink,omitempty"`
	InfoLink            string               `json:"infoLink,omitempty"`
	CanonicalVolumeLink string               `json:"canonicalVolumeLink,omitempty"`
}

type IndustryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail,omitempty"`
	Thumbnail      string `json:"thumbnail,omitempty"`
}

type SaleInfo struct {
	Country     string `json:"country,omitempty"`
	Saleability string `json:"saleability,omitempty"`
	IsEbook     bool   `json:"isEbook,omitempty"`
	ListPrice   *Price `json:"listPrice,omitempty"`
	RetailPrice *Price `json:"retailPrice,omitempty"`
	BuyLink     string `json:"buyLink,omitempty"`
}

type Price struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currencyCode"`
}

type AccessInfo struct {
	Country       string        `json:"country,omitempty"`
	Viewability   string        `json:"viewability,omitempty"`
	Embeddable    bool          `json:"embeddable,omitempty"`
	PublicDomain  bool          `json:"publicDomain,omitempty"`
	Epub          FormatAccess  `json:"epub,omitempty"`
	Pdf           FormatAccess  `json:"pdf,omitempty"`
	WebReaderLink string        `json:"webReaderLink,omitempty"`
	AccessView    string        `json:"accessViewStatus,omitempty"`
}

type FormatAccess struct {
	IsAvailable  bool   `json:"isAvailable"`
	DownloadLink string `json:"downloadLink,omitempty"`
	AcsTokenLink string `json:"acsTokenLink,omitempty"`
}

// DownloadRefs собирает доступные прямые ссылки скачивания по форматам
// (ключи - epub, pdf).
func (v Volume) DownloadRefs() map[string]string {
	refs := make(map[string]string)
	if v.AccessInfo.Epub.IsAvailable && v.AccessInfo.Epub.DownloadLink != "" {
		refs["epub"] = v.AccessInfo.Epub.DownloadLink
	}
	if v.AccessInfo.Pdf.IsAvailable && v.AccessInfo.Pdf.DownloadLink != "" {
		refs["pdf"] = v.AccessInfo.Pdf.DownloadLink
	}
	return refs
}

// PublishedYear возвращает год из publishedDate (форматы YYYY, YYYY-MM, YYYY-MM-DD).
func (vi VolumeInfo) PublishedYear() string {
	if len(vi.PublishedDate) >= 4 {
		return vi.PublishedDate[:4]
	}
	return vi.PublishedDate
}
