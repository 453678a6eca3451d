package styled

// Compact returns an equivalent tree without redundant nodes.
//
// The result renders the same segments with the same effective styles:
//   - style fields equal to the inherited value are removed,
//   - leaves without content are dropped,
//   - neighbouring leaves with equal styles are merged,
//   - a content-less node with one child is replaced by that child,
//   - a content-less node adopts the content of an unstyled first leaf.
//
// Compacting the absent value returns nil.
func (t *Text) Compact() *Text {
	if t == nil {
		return nil
	}
	return compact(t, Style{})
}

func compact(t *Text, inherited Style) *Text {
	style := t.style.unmerge(inherited)
	effective := inherited.Merge(style)

	children := make([]*Text, 0, len(t.children))
	for _, c := range t.children {
		cc := compact(c, effective)
		if cc.IsEmpty() {
			continue
		}
		if n := len(children); n > 0 && mergeable(children[n-1], cc) {
			prev := children[n-1]
			children[n-1] = &Text{content: prev.content + cc.content, style: prev.style}
			continue
		}
		children = append(children, cc)
	}

	content := t.content
	if content == "" && len(children) > 0 {
		first := children[0]
		if first.style.IsEmpty() && len(first.children) == 0 {
			content = first.content
			children = children[1:]
		}
	}

	if content == "" && len(children) == 1 {
		only := children[0]
		merged := style.Merge(only.style)
		return &Text{content: only.content, style: merged.unmerge(inherited), children: only.children}
	}

	if len(children) == 0 {
		children = nil
	}
	return &Text{content: content, style: style, children: children}
}

func mergeable(a, b *Text) bool {
	return len(a.children) == 0 && len(b.children) == 0 && a.style.Equal(b.style)
}
