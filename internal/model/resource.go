package model

// Resource is a curated mental-health support link or article.
//
// URL is a pointer because a resource may have no link at all. An absent
// URL serializes as JSON null, which is what the frontend expects —
// an empty string would render as a broken link.
//
// Rating (0–5) and Likes default to zero; neither is clamped on update.
type Resource struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Icon        string  `json:"icon"`
	URL         *string `json:"url"`
	Rating      int     `json:"rating"`
	Likes       int     `json:"likes"`
}
