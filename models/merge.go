package models

// Source names one of the two documents a merge fetches.
type Source string

const (
	// SourceTemplate is the base sing-box configuration.
	SourceTemplate Source = "template"
	// SourceNodes is the generated node list (Sub-Store export or similar).
	SourceNodes Source = "nodes"
)

func (s Source) String() string {
	return string(s)
}

// MergeRequest carries the two upstream locations for a single merge.
type MergeRequest struct {
	// TemplateURL points to the base configuration document.
	TemplateURL string `json:"template"`

	// NodesURL points to the node list document.
	NodesURL string `json:"nodes"`
}

// URL returns the location of the given source.
func (r MergeRequest) URL(source Source) string {
	if source == SourceNodes {
		return r.NodesURL
	}
	return r.TemplateURL
}

// Document is a decoded JSON document. Root holds the generic value as
// produced by encoding/json (objects are map[string]any, arrays []any).
type Document struct {
	Root any
}
