package decl

import (
	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a field, keeping the raw default node so that an
// explicit "default: null" stays distinct from an absent default.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	var shadow struct {
		Name        string `yaml:"name"`
		Type        string `yaml:"type"`
		DefaultExpr string `yaml:"default_expr"`
	}

	if err := node.Decode(&shadow); err != nil {
		return err
	}

	*f = Field{
		Name:        shadow.Name,
		Type:        shadow.Type,
		DefaultExpr: shadow.DefaultExpr,
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "default" {
			f.Default = node.Content[i+1]
		}
	}

	return nil
}
