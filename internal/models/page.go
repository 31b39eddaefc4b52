package models

// Page is a CMS page. The slug is the external identity used by the public
// site's routing; titles and contents are stored per language.
type Page struct {
	ID        int64  `json:"id"`
	Slug      string `json:"slug"`
	TitleRu   string `json:"title_ru"`
	TitleUz   string `json:"title_uz"`
	TitleEn   string `json:"title_en"`
	ContentRu string `json:"content_ru"`
	ContentUz string `json:"content_uz"`
	ContentEn string `json:"content_en"`
	IsActive  bool   `json:"is_active"`
}
