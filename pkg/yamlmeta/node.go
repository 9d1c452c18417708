// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

func NewMap() *Map { return &Map{} }

// NewMapFromItems keeps items in the given order.
func NewMapFromItems(items ...*MapItem) *Map { return &Map{Items: items} }

func NewMapItem(key string, value Node) *MapItem {
	return &MapItem{Key: key, Value: value}
}

func NewArray(items ...Node) *Array { return &Array{Items: items} }

func NewString(val string) *Scalar { return &Scalar{Value: val, Tag: strTag} }

func NewBool(val bool) *Scalar {
	if val {
		return &Scalar{Value: "true", Tag: boolTag}
	}
	return &Scalar{Value: "false", Tag: boolTag}
}

func NewNull() *Scalar { return &Scalar{Value: "null", Tag: nullTag} }

func (n *Map) sealed()    {}
func (n *Array) sealed()  {}
func (n *Scalar) sealed() {}

func (n *Map) GetValues() []Node {
	var result []Node
	for _, item := range n.Items {
		result = append(result, item.Value)
	}
	return result
}

func (n *Array) GetValues() []Node { return append([]Node{}, n.Items...) }
func (n *Scalar) GetValues() []Node { return nil }

func (n *Map) Get(key string) (Node, bool) {
	if n == nil {
		return nil, false
	}
	for _, item := range n.Items {
		if item.Key == key {
			return item.Value, true
		}
	}
	return nil, false
}

// Set overwrites the value of an existing key (keeping its position)
// or appends a new item.
func (n *Map) Set(key string, value Node) {
	for _, item := range n.Items {
		if item.Key == key {
			item.Value = value
			return
		}
	}
	n.Items = append(n.Items, NewMapItem(key, value))
}

func (n *Map) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Items)
}

func (n *Array) Append(value Node) { n.Items = append(n.Items, value) }

func (n *Array) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Items)
}

func (n *Scalar) IsNull() bool { return n == nil || n.Tag == nullTag }

func (n *Map) DeepCopyAsNode() Node {
	result := &Map{}
	for _, item := range n.Items {
		result.Items = append(result.Items, &MapItem{
			Key:    item.Key,
			Value:  deepCopy(item.Value),
			keyTag: item.keyTag,
		})
	}
	return result
}

func (n *Array) DeepCopyAsNode() Node {
	result := &Array{}
	for _, item := range n.Items {
		result.Items = append(result.Items, deepCopy(item))
	}
	return result
}

func (n *Scalar) DeepCopyAsNode() Node {
	copied := *n
	return &copied
}

func deepCopy(node Node) Node {
	if node == nil {
		return nil
	}
	return node.DeepCopyAsNode()
}

// IsFalsy reports whether node should be treated as missing when it is
// used as a container for updates.
func IsFalsy(node Node) bool {
	switch typedNode := node.(type) {
	case nil:
		return true
	case *Map:
		return typedNode.Len() == 0
	case *Array:
		return typedNode.Len() == 0
	case *Scalar:
		return typedNode.IsNull()
	default:
		return false
	}
}
