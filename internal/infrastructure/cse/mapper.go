package cse

import (
	"strings"

	"github.com/safeglow/backend/internal/domain"
)

// UnknownSource is reported when neither displayLink nor link yields a host
const UnknownSource = "Unknown"

// ClassifierText builds the classifier input for an item: title and snippet
// joined by a single space.
func ClassifierText(item *domain.SearchItem) string {
	return item.Title + " " + item.Snippet
}

// MapToProduct converts a search item and its verdict to a domain Product
func MapToProduct(item *domain.SearchItem, verdict domain.Verdict) domain.Product {
	return domain.Product{
		Title:   item.Title,
		Snippet: item.Snippet,
		Link:    item.Link,
		Source:  ResolveSource(item),
		Image:   ExtractImage(item),
		Verdict: verdict,
	}
}

// ResolveSource returns the display host for an item, falling back to the
// host segment of the link and then to UnknownSource.
func ResolveSource(item *domain.SearchItem) string {
	if item.DisplayLink != "" {
		return item.DisplayLink
	}

	// "https://host/path" splits into ["https:", "", "host", "path"]
	parts := strings.Split(item.Link, "/")
	if len(parts) > 2 && parts[2] != "" {
		return parts[2]
	}

	return UnknownSource
}

// ExtractImage returns the first cse_image src, else the first imageobject
// url, else nil.
func ExtractImage(item *domain.SearchItem) *string {
	if item.PageMap == nil {
		return nil
	}

	if len(item.PageMap.CSEImage) > 0 && item.PageMap.CSEImage[0].Src != "" {
		src := item.PageMap.CSEImage[0].Src
		return &src
	}

	if len(item.PageMap.ImageObject) > 0 && item.PageMap.ImageObject[0].URL != "" {
		u := item.PageMap.ImageObject[0].URL
		return &u
	}

	return nil
}
