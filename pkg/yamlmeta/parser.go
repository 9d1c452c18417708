// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type Parser struct {
	associatedName string
}

func NewParser() *Parser {
	return &Parser{}
}

// ParseBytes parses data that holds exactly one YAML document.
// associatedName is only used in error messages.
func (p *Parser) ParseBytes(data []byte, associatedName string) (*Document, error) {
	p.associatedName = associatedName

	var root yaml.Node

	dec := yaml.NewDecoder(bytes.NewReader(data))

	err := dec.Decode(&root)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Unmarshaling YAML %s: %s", p.desc(), err)
	}

	if err == nil {
		var extra yaml.Node

		err = dec.Decode(&extra)
		if err == nil {
			return nil, fmt.Errorf("Expected %s to contain a single YAML document, but found another one on line %d",
				p.desc(), extra.Line)
		}
		if !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Unmarshaling YAML %s: %s", p.desc(), err)
		}
	}

	if root.Kind == 0 || (root.Kind == yaml.DocumentNode && len(root.Content) == 0) {
		return nil, fmt.Errorf("Expected %s to contain a YAML document", p.desc())
	}

	val, err := p.convert(&root)
	if err != nil {
		return nil, err
	}

	return &Document{Value: val}, nil
}

func (p *Parser) convert(node *yaml.Node) (Node, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		return p.convert(node.Content[0])

	case yaml.MappingNode:
		result := &Map{}

		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]

			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("Expected map key on line %d in %s to be a scalar", keyNode.Line, p.desc())
			}
			if _, found := result.Get(keyNode.Value); found {
				return nil, fmt.Errorf("Unmarshaling YAML %s: Unexpected duplicate key '%s' on line %d",
					p.desc(), keyNode.Value, keyNode.Line)
			}

			val, err := p.convert(valNode)
			if err != nil {
				return nil, err
			}

			result.Items = append(result.Items, &MapItem{
				Key:    keyNode.Value,
				Value:  val,
				keyTag: keyNode.ShortTag(),
			})
		}
		return result, nil

	case yaml.SequenceNode:
		result := &Array{}

		for _, itemNode := range node.Content {
			val, err := p.convert(itemNode)
			if err != nil {
				return nil, err
			}
			result.Items = append(result.Items, val)
		}
		return result, nil

	case yaml.ScalarNode:
		return &Scalar{Value: node.Value, Tag: node.ShortTag()}, nil

	case yaml.AliasNode:
		// Aliases are expanded; anchors are not carried into the output
		return p.convert(node.Alias)

	default:
		return nil, fmt.Errorf("Unknown YAML node kind %d on line %d in %s", node.Kind, node.Line, p.desc())
	}
}

func (p *Parser) desc() string {
	if len(p.associatedName) == 0 {
		return "document"
	}
	return fmt.Sprintf("'%s'", p.associatedName)
}
