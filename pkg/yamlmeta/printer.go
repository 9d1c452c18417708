// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const printerIndent = 2

// AsBytes prints the document in block style.
func (d *Document) AsBytes() ([]byte, error) {
	buf := new(bytes.Buffer)

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(printerIndent)

	err := enc.Encode(asYAMLNode(d.Value))
	if err != nil {
		return nil, fmt.Errorf("Marshaling YAML document: %s", err)
	}

	err = enc.Close()
	if err != nil {
		return nil, fmt.Errorf("Marshaling YAML document: %s", err)
	}

	return buf.Bytes(), nil
}

func asYAMLNode(node Node) *yaml.Node {
	switch typedNode := node.(type) {
	case *Map:
		result := &yaml.Node{Kind: yaml.MappingNode, Tag: mapTag}
		if typedNode == nil {
			return result
		}
		for _, item := range typedNode.Items {
			keyTag := item.keyTag
			if len(keyTag) == 0 {
				keyTag = strTag
			}
			result.Content = append(result.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: keyTag, Value: item.Key},
				asYAMLNode(item.Value))
		}
		return result

	case *Array:
		result := &yaml.Node{Kind: yaml.SequenceNode, Tag: seqTag}
		if typedNode == nil {
			return result
		}
		for _, item := range typedNode.Items {
			result.Content = append(result.Content, asYAMLNode(item))
		}
		return result

	case *Scalar:
		if typedNode == nil {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: nullTag, Value: "null"}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: typedNode.Tag, Value: typedNode.Value}

	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: nullTag, Value: "null"}
	}
}
