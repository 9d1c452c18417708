// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

type Node interface {
	GetValues() []Node // ie children
	DeepCopyAsNode() Node

	sealed() // limit the concrete types of Node to Map, Array and Scalar
}

var _ = []Node{&Map{}, &Array{}, &Scalar{}}

type Document struct {
	Value Node
}

type Map struct {
	Items []*MapItem
}

type MapItem struct {
	Key   string
	Value Node

	keyTag string
}

type Array struct {
	Items []Node
}

type Scalar struct {
	Value string
	Tag   string
}

const (
	strTag  = "!!str"
	nullTag = "!!null"
	boolTag = "!!bool"
	mapTag  = "!!map"
	seqTag  = "!!seq"
)
