package text

import (
	"bytes"
	"encoding/json"
)

// HexColorProtocol is the lowest negotiated protocol number that supports
// hex ("#rrggbb") colors in text components. Below it, colors must be
// rendered as the nearest legacy palette name.
const HexColorProtocol = 735

// jsonComponent mirrors the wire JSON shape; omitempty keeps absent style
// fields and empty extras out of the payload per spec.
type jsonComponent struct {
	Text      string          `json:"text,omitempty"`
	Translate string          `json:"translate,omitempty"`
	With      []jsonComponent `json:"with,omitempty"`
	Selector  string          `json:"selector,omitempty"`
	Separator *jsonComponent  `json:"separator,omitempty"`

	Color         string `json:"color,omitempty"`
	Bold          *bool  `json:"bold,omitempty"`
	Italic        *bool  `json:"italic,omitempty"`
	Underlined    *bool  `json:"underlined,omitempty"`
	Strikethrough *bool  `json:"strikethrough,omitempty"`
	Obfuscated    *bool  `json:"obfuscated,omitempty"`
	Font          string `json:"font,omitempty"`

	Extra []jsonComponent `json:"extra,omitempty"`
}

func renderColor(c *Color, protocol int) string {
	if c == nil {
		return ""
	}
	if protocol >= HexColorProtocol {
		return c.Hex()
	}
	return c.NearestLegacyName()
}

func (c Component) toJSONComponent() jsonComponent {
	out := jsonComponent{
		Color:         renderColor(c.Style.Color, c.Protocol),
		Bold:          c.Style.Bold,
		Italic:        c.Style.Italic,
		Underlined:    c.Style.Underlined,
		Strikethrough: c.Style.Strikethrough,
		Obfuscated:    c.Style.Obfuscated,
	}
	if c.Style.Font != nil {
		out.Font = *c.Style.Font
	}

	switch c.Content.Kind {
	case ContentText:
		out.Text = c.Content.Text
	case ContentTranslatable:
		out.Translate = c.Content.TranslateKey
		for _, arg := range c.Content.Args {
			out.With = append(out.With, arg.toJSONComponent())
		}
	case ContentSelector:
		out.Selector = c.Content.SelectorPattern
		if c.Content.Separator != nil {
			sep := c.Content.Separator.toJSONComponent()
			out.Separator = &sep
		}
	}

	for _, extra := range c.Extra {
		out.Extra = append(out.Extra, extra.toJSONComponent())
	}

	return out
}

// MarshalJSON renders the component as the Minecraft status/chat JSON
// shape, gating color representation on the component's ambient protocol
// number (see HexColorProtocol).
func (c Component) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.toJSONComponent())
}

// Render returns the compact JSON encoding of c, matching the payload the
// protocol embeds in status and disconnect packets.
func (c Component) Render() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	// json.Encoder.Encode appends a trailing newline; the wire payload
	// should not carry one.
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
