package types

// ElementMetadata is the static description record an element type
// supplies once, at registration. It is pure metadata and carries no
// behavior.
type ElementMetadata struct {
	Name           string `yaml:"name"`
	Classification string `yaml:"classification"`
	Description    string `yaml:"description"`
	Author         string `yaml:"author"`
}
