package loam

// NamespaceMetadata is the frontmatter of one namespace document.
type NamespaceMetadata struct {
	Prefix string `json:"prefix" mapstructure:"prefix"`
	URI    string `json:"uri" mapstructure:"uri"`
}
