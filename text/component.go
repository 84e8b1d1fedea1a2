// Package text implements the styled, nested text component model embedded
// in status and kick message payloads: a Style + Content tree, a legacy
// "&"/"§"-code parser, a modern "<tag>" markup parser with gradient
// interpolation, and protocol-gated JSON serialization.
//
// The shape is grounded on the teacher library's flat NBT-backed
// TextComponent (java_protocol/net_structures/text_component.go), but
// restructured into an explicit Style/Content tree because the parsers and
// the hex-vs-legacy color gate need a real tree to build and walk.
package text

// ContentKind tags which variant of Content is populated.
type ContentKind int

const (
	ContentText ContentKind = iota
	ContentTranslatable
	ContentSelector
)

// Content is the tagged payload of a Component: plain text, a translation
// key with component arguments, or an entity selector with an optional
// separator component.
type Content struct {
	Kind ContentKind

	Text string // ContentText

	TranslateKey string      // ContentTranslatable
	Args         []Component // ContentTranslatable

	SelectorPattern string     // ContentSelector
	Separator       *Component // ContentSelector
}

// Component is a node in the text component tree: a Style, a Content
// variant, and child "extra" components that inherit the parent's
// resolved style unless they override it.
type Component struct {
	Style    Style
	Content  Content
	Extra    []Component
	Protocol int
}

// NewText builds a plain-text leaf component.
func NewText(s string) Component {
	return Component{Content: Content{Kind: ContentText, Text: s}}
}

// NewTranslatable builds a translation-key component with component args.
func NewTranslatable(key string, args ...Component) Component {
	return Component{Content: Content{Kind: ContentTranslatable, TranslateKey: key, Args: args}}
}

// NewSelector builds an entity-selector component.
func NewSelector(pattern string, separator *Component) Component {
	return Component{Content: Content{Kind: ContentSelector, SelectorPattern: pattern, Separator: separator}}
}

// SetProtocol sets the ambient protocol number on c and propagates it to
// every descendant: extras, translation args, and the selector separator.
func (c *Component) SetProtocol(protocol int) {
	c.Protocol = protocol
	for i := range c.Extra {
		c.Extra[i].SetProtocol(protocol)
	}
	for i := range c.Content.Args {
		c.Content.Args[i].SetProtocol(protocol)
	}
	if c.Content.Separator != nil {
		c.Content.Separator.SetProtocol(protocol)
	}
}

// WithStyle returns a copy of c with Style set.
func (c Component) WithStyle(s Style) Component {
	c.Style = s
	return c
}

// AppendExtra appends children to c's extra list, returning c.
func (c Component) AppendExtra(children ...Component) Component {
	c.Extra = append(c.Extra, children...)
	return c
}

// Clone returns a deep copy of c so the caller can mutate it without
// aliasing shared trees.
func (c Component) Clone() Component {
	clone := c
	if len(c.Extra) > 0 {
		clone.Extra = make([]Component, len(c.Extra))
		for i, e := range c.Extra {
			clone.Extra[i] = e.Clone()
		}
	}
	if len(c.Content.Args) > 0 {
		clone.Content.Args = make([]Component, len(c.Content.Args))
		for i, a := range c.Content.Args {
			clone.Content.Args[i] = a.Clone()
		}
	}
	if c.Content.Separator != nil {
		sep := c.Content.Separator.Clone()
		clone.Content.Separator = &sep
	}
	return clone
}
