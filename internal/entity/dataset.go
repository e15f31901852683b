package entity

// Dataset is a published BPS Kota Medan statistics table. URL identifies it.
type Dataset struct {
	ID          string   `db:"id" json:"id"`
	Title       string   `db:"title" json:"title"`
	Description string   `db:"description" json:"description"`
	Category    string   `db:"category" json:"category"`
	URL         string   `db:"url" json:"url"`
	Keywords    []string `db:"-" json:"keywords,omitempty"`
	Year        int      `db:"year" json:"year,omitempty"`
}

// Source is a citation attached to an assistant message.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
