package types

// LocationStat is one row of the location histogram.
type LocationStat struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Analytics is the summary-statistics response: total client count,
// distinct locations, and the top-10 location histogram.
type Analytics struct {
	Total           int            `json:"total"`
	UniqueLocations int            `json:"unique_locations"`
	TopLocation     string         `json:"top_location"`
	Locations       []LocationStat `json:"locations"`
}

// ContactMessage is one pending contact-form message.
type ContactMessage struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// SourceFile describes one uploaded spreadsheet source.
type SourceFile struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}
