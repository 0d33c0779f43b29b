package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// linkTags are the component-template elements that create navigation
// edges.
var linkTags = map[string]bool{
	"router-link": true,
	"RouterLink":  true,
	"nuxt-link":   true,
	"NuxtLink":    true,
}

// extractTemplateLinks scans a single-file component's template for
// implicit navigation edges. The HTML grammar is error-tolerant and
// vue templates carry framework syntax (v-if, @click) as plain
// attributes, so unlike the script extractors this path never treats
// residual parse errors as fatal: it scans whatever parsed.
func extractTemplateLinks(source []byte, filePath string) *ParseResult {
	result := &ParseResult{Router: RouterVueTemplate}
	c := &walkCtx{source: source, path: filePath}

	parser := newHTMLParser()
	defer parser.Close()
	tree := parser.Parse(source, nil)
	if tree == nil {
		c.warnf(nil, "Template could not be parsed")
		result.Warnings = c.warnings
		return result
	}
	defer tree.Close()

	scanTemplateNode(tree.RootNode(), c, result)
	result.Warnings = c.warnings
	return result
}

func newHTMLParser() *sitter.Parser {
	parser := sitter.NewParser()
	_ = parser.SetLanguage(htmlGrammar())
	return parser
}

func scanTemplateNode(node *sitter.Node, c *walkCtx, result *ParseResult) {
	if node == nil {
		return
	}

	if node.Kind() == "start_tag" || node.Kind() == "self_closing_tag" {
		scanLinkTag(node, c, result)
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		scanTemplateNode(node.Child(i), c, result)
	}
}

func scanLinkTag(tag *sitter.Node, c *walkCtx, result *ParseResult) {
	tagName := ""
	for i := uint(0); i < tag.ChildCount(); i++ {
		child := tag.Child(i)
		if child != nil && child.Kind() == "tag_name" {
			tagName = nodeText(child, c.source)
			break
		}
	}
	if !linkTags[tagName] {
		return
	}

	for i := uint(0); i < tag.ChildCount(); i++ {
		attr := tag.Child(i)
		if attr == nil || attr.Kind() != "attribute" {
			continue
		}
		name, value := attributeParts(attr, c.source)
		switch name {
		case "to":
			if value != "" {
				result.Links = append(result.Links, NavLink{Target: value, Line: nodeLine(attr)})
			}
		case ":to", "v-bind:to":
			// A bound target is still static when the expression is a
			// plain quoted string: :to="'/about'".
			inner := strings.TrimSpace(value)
			if len(inner) >= 2 && (inner[0] == '\'' || inner[0] == '`') && inner[len(inner)-1] == inner[0] &&
				!strings.Contains(inner, "${") {
				result.Links = append(result.Links, NavLink{Target: inner[1 : len(inner)-1], Line: nodeLine(attr)})
				continue
			}
			c.warnf(attr, "Dynamic link target %q", value)
		}
	}
}

func attributeParts(attr *sitter.Node, source []byte) (string, string) {
	name := ""
	value := ""
	for i := uint(0); i < attr.ChildCount(); i++ {
		child := attr.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "attribute_name":
			name = nodeText(child, source)
		case "quoted_attribute_value":
			// The inner attribute_value carries the raw text without the
			// surrounding quotes, including any nested expression quotes.
			for j := uint(0); j < child.ChildCount(); j++ {
				if inner := child.Child(j); inner != nil && inner.Kind() == "attribute_value" {
					value = nodeText(inner, source)
				}
			}
		case "attribute_value":
			value = nodeText(child, source)
		}
	}
	return name, value
}
