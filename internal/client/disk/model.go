package disk

// Resource represents one file or folder entry of a publicly shared folder.
// Only the fields the application reads are mapped; the API returns more.
type Resource struct {
	// Name is the base name of the file or folder.
	Name string `json:"name"`
	// Path is the resource path inside the shared folder (e.g., "/photos/cat.jpg").
	Path string `json:"path"`
	// Type is the resource kind: "file" or "dir".
	Type string `json:"type"`
	// MediaType is the provider's coarse content classification (e.g., "image", "video").
	MediaType string `json:"media_type"`
	// MimeType is the exact MIME type of a file resource.
	MimeType string `json:"mime_type"`
	// Size is the file size in bytes; zero for folders.
	Size int64 `json:"size"`
	// Preview is the URL of a provider-generated preview image, when available.
	Preview string `json:"preview"`
	// Created is the creation timestamp as reported by the provider.
	Created string `json:"created"`
	// Modified is the modification timestamp as reported by the provider.
	Modified string `json:"modified"`
}

// ResourceList is the paginated item container under "_embedded".
type ResourceList struct {
	// Items are the entries of the current page.
	Items []*Resource `json:"items"`
	// Limit is the page size the server applied.
	Limit int `json:"limit"`
	// Offset is the offset of the current page.
	Offset int `json:"offset"`
	// Total is the total number of entries in the folder.
	Total int `json:"total"`
}

// PublicResourcesResponse represents the response structure for fetching one page
// of a public folder listing.
type PublicResourcesResponse struct {
	// Name is the base name of the shared resource itself.
	Name string `json:"name"`
	// Path is the path of the shared resource itself.
	Path string `json:"path"`
	// Type is the resource kind of the shared resource itself.
	Type string `json:"type"`
	// PublicKey is the public identifier of the shared resource.
	PublicKey string `json:"public_key"`
	// Embedded holds the page of child entries.
	Embedded *ResourceList `json:"_embedded"`
}

// DownloadLinkResponse represents the response structure for resolving a download link.
type DownloadLinkResponse struct {
	// Href is the short-lived direct download URL.
	Href string `json:"href"`
	// Method is the HTTP method to use with Href.
	Method string `json:"method"`
	// Templated indicates whether Href contains URI template parameters.
	Templated bool `json:"templated"`
}

// FetchJSONResult holds a decoded JSON response along with the HTTP status code.
type FetchJSONResult[T any] struct {
	// Data is the decoded response body, or nil when the request failed.
	Data *T
	// StatusCode is the HTTP status code of the response.
	StatusCode int
}
