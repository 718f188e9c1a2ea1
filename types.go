package haystack

// Document is a unit of text content with open key/value metadata.
// An empty ID is filled with a generated UUID on Write.
type Document struct {
	ID      string         `json:"id"`
	Content string         `json:"content"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// ListResult is one page of documents. NextCursor is empty on the last page;
// otherwise pass it to the next List call.
type ListResult struct {
	Documents  []Document `json:"documents"`
	NextCursor string     `json:"next_cursor,omitempty"`
}
