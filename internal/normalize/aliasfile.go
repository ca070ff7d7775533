// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"
)

// AliasFile is the on-disk shape of an alias override file:
//
//	aliases:
//	  company: [employer]
//	  job_url: [apply link]
type AliasFile struct {
	Aliases map[string][]string `yaml:"aliases"`
}

// ReadAliasFile loads alias overrides from a YAML file.
func ReadAliasFile(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading alias file: %w", err)
	}
	var af AliasFile
	if err := yaml.Unmarshal(data, &af); err != nil {
		return nil, fmt.Errorf("parsing alias file %s: %w", path, err)
	}
	return af.Aliases, nil
}

// WriteAliasFile writes t to w in AliasFile form, fields in output order.
func WriteAliasFile(w io.Writer, t AliasTable) error {
	fields := &yaml.Node{Kind: yaml.MappingNode}
	for _, field := range aliasedFields {
		var val yaml.Node
		if err := val.Encode(t[field]); err != nil {
			return fmt.Errorf("encoding aliases for %s: %w", field, err)
		}
		val.Style = yaml.FlowStyle
		fields.Content = append(fields.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: field}, &val)
	}
	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "aliases"},
			fields,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(root)
}
