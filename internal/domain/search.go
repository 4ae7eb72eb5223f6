package domain

// SearchItem represents a single result from the Google Custom Search JSON API
type SearchItem struct {
	Title       string      `json:"title"`
	Snippet     string      `json:"snippet"`
	Link        string      `json:"link"`
	DisplayLink string      `json:"displayLink"`
	PageMap     *SearchPage `json:"pagemap,omitempty"`
}

// SearchPage holds the structured page metadata attached to a search item
type SearchPage struct {
	CSEImage    []SearchImage       `json:"cse_image,omitempty"`
	ImageObject []SearchImageObject `json:"imageobject,omitempty"`
}

// SearchImage is a pagemap cse_image entry
type SearchImage struct {
	Src string `json:"src"`
}

// SearchImageObject is a pagemap imageobject entry
type SearchImageObject struct {
	URL string `json:"url"`
}

// SearchResponse represents the response from the custom search API
type SearchResponse struct {
	Items []SearchItem `json:"items"`
}
