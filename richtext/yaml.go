package richtext

import (
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Neumenon/richtext/styled"
)

// DecodeYAML decodes a YAML node with the same shape rules as JSON: a
// string scalar is markup, a sequence of strings is joined line by line,
// a mapping is a legacy component and null is absent.
func (d *Decoder) DecodeYAML(node *yaml.Node) (*styled.Text, error) {
	node = resolveYAML(node)
	if node == nil {
		return nil, nil
	}
	path := yamlPath(node)

	switch YAMLShapeOf(node) {
	case ShapeString:
		if node.Value == "" {
			return styled.Empty(), nil
		}
		return d.parseMarkup(node.Value, path, ShapeString)

	case ShapeArray:
		lines := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if YAMLShapeOf(item) != ShapeString {
				item = resolveYAML(item)
				return nil, &DecodeError{Kind: KindNonStringElement, Path: yamlPath(item), Shape: YAMLShapeOf(item), Found: yamlKindName(item)}
			}
			lines = append(lines, resolveYAML(item).Value)
		}
		d.logger.Debug("joined rich text lines", zap.String("path", path), zap.Int("lines", len(lines)))
		return d.parseMarkup(strings.Join(lines, Separator), path, ShapeArray)

	case ShapeObject:
		var tree any
		if err := node.Decode(&tree); err != nil {
			return nil, &DecodeError{Kind: KindLegacyFormat, Path: path, Shape: ShapeObject, Err: err}
		}
		source, err := json.Marshal(tree, json.Deterministic(true))
		if err != nil {
			return nil, &DecodeError{Kind: KindLegacyFormat, Path: path, Shape: ShapeObject, Err: err}
		}
		text, err := d.legacy.Decode(string(source))
		if err != nil {
			return nil, &DecodeError{Kind: KindLegacyFormat, Path: path, Shape: ShapeObject, Err: err}
		}
		return text, nil

	case ShapeNull:
		return nil, nil

	default:
		return nil, &DecodeError{Kind: KindUnexpectedShape, Path: path, Shape: ShapeOther, Found: yamlKindName(node)}
	}
}

func yamlPath(node *yaml.Node) string {
	return fmt.Sprintf("%d:%d", node.Line, node.Column)
}

func yamlKindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return strings.TrimPrefix(node.ShortTag(), "!!")
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "node"
	}
}
