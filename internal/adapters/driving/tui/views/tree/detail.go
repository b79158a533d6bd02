package tree

import (
	"fmt"
	"slices"
	"strings"

	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hyperless/internal/markup"
)

// Detail renders the description of n shown beside the tree: its type,
// position, attributes and markup. Markup lines beyond height are cut.
func Detail(n *markup.Node, s *styles.Styles, opts markup.RenderOptions, width, height int) string {
	var b strings.Builder

	field := func(label, value string) {
		b.WriteString(s.Muted.Render(label + ": "))
		b.WriteString(s.Normal.Render(value))
		b.WriteString("\n")
	}

	field("Type", n.Type().String())
	if n.Tag() != "" {
		field("Tag", n.Tag())
	}
	field("Path", Path(n))
	field("Children", fmt.Sprintf("%d", n.Len()))

	attrs, err := n.ParseAttributes()
	if attrs.Len() > 0 || err != nil {
		b.WriteString("\n")
		b.WriteString(s.Subtitle.Render("Attributes"))
		b.WriteString("\n")
		for name, value := range attrs.All() {
			b.WriteString(fmt.Sprintf("  %s=%q\n", name, value))
		}
		if err != nil {
			b.WriteString(s.Error.Render("  ! " + err.Error()))
			b.WriteString("\n")
		}
	}

	var out strings.Builder
	_ = n.Render(&out, opts)
	if out.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(s.Subtitle.Render("Markup"))
		b.WriteString("\n")
		lines := strings.Split(out.String(), "\n")
		if height > 0 && len(lines) > height {
			lines = append(lines[:height], "…")
		}
		for _, line := range lines {
			if runes := []rune(line); width > 1 && len(runes) > width {
				line = string(runes[:width-1]) + "…"
			}
			b.WriteString(s.Muted.Render(line))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// Path names n by the tags of its ancestors, e.g. "root > html > body".
// Nodes without a tag are named by their type.
func Path(n *markup.Node) string {
	var parts []string
	for node := n; node != nil; node = node.Parent() {
		name := node.Tag()
		if name == "" || node.Type() == markup.StrayNode {
			name = strings.ToLower(node.Type().String())
		}
		parts = append(parts, name)
	}
	slices.Reverse(parts)
	return strings.Join(parts, " > ")
}
