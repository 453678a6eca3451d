// Package styled implements the rich-text document model.
//
// A document is a tree of [Text] nodes. Each node carries literal content,
// a [Style], and ordered children that inherit the node's style:
//
//	Text{"" style{}}
//	  Text{"Hello, " color=gold}
//	  Text{"world" color=gold bold}
//
// Trees are immutable once built. Every constructor copies its inputs and
// every accessor returns copies, so a *Text can be shared freely between
// goroutines.
//
// # Style
//
// A style holds an optional color, five tri-state decorations (unset, true,
// false), an optional click action, an optional hover text, an insertion
// string and a font key. A child's effective style is its parent's effective
// style with the child's set fields laid on top (see [Style.Merge]).
//
// # Compact Form
//
// [Text.Compact] returns an equivalent tree without redundant nodes: empty
// leaves are dropped, equal-styled neighbours are merged, single-child
// wrappers are collapsed and style fields already inherited from a parent
// are stripped. Two documents that render the same usually compact to
// [Text.Equal] trees.
package styled
