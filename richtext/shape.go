package richtext

import (
	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"
)

// Shape is the syntactic shape of the next value, known before any of it
// is consumed.
type Shape uint8

const (
	ShapeOther  Shape = iota // booleans, numbers, delimiters, invalid input
	ShapeString              // markup string
	ShapeArray               // array of markup strings
	ShapeObject              // legacy component tree
	ShapeNull                // absent value
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeString:
		return "string"
	case ShapeArray:
		return "array"
	case ShapeObject:
		return "object"
	case ShapeNull:
		return "null"
	default:
		return "other"
	}
}

// ShapeOf maps a peeked JSON token kind to a shape.
func ShapeOf(kind jsontext.Kind) Shape {
	switch kind {
	case '"':
		return ShapeString
	case '[':
		return ShapeArray
	case '{':
		return ShapeObject
	case 'n':
		return ShapeNull
	default:
		return ShapeOther
	}
}

// YAMLShapeOf maps a YAML node to a shape. Aliases are resolved first.
func YAMLShapeOf(node *yaml.Node) Shape {
	node = resolveYAML(node)
	if node == nil {
		return ShapeNull
	}
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!str":
			return ShapeString
		case "!!null":
			return ShapeNull
		}
		return ShapeOther
	case yaml.SequenceNode:
		return ShapeArray
	case yaml.MappingNode:
		return ShapeObject
	default:
		return ShapeOther
	}
}

func resolveYAML(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch node.Kind {
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}
			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		case 0:
			// zero Node, nothing was decoded into it
			return nil
		default:
			return node
		}
	}
	return nil
}
