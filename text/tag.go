package text

import "strings"

// ParseTag parses "<tag>"-delimited modern markup into a component tree.
// protocol gates gradient rendering (see HexColorProtocol): below it a
// gradient collapses to a single child colored by its first stop.
//
// A persistent style stack (seeded with the default empty style as its
// base, which closing tags never pop below) tracks active formatting.
// Unrecognized tag content is never consumed as a tag: the literal "<" is
// emitted and scanning resumes at the next byte, so an unmatched ">" later
// in the string is ordinary text.
func ParseTag(raw string, protocol int) Component {
	var root Component
	stack := []Style{{}}
	var textBuf []byte

	flush := func() {
		if len(textBuf) == 0 {
			return
		}
		root.Extra = append(root.Extra, Component{
			Style:   stack[len(stack)-1],
			Content: Content{Kind: ContentText, Text: string(textBuf)},
		})
		textBuf = nil
	}

	i, n := 0, len(raw)
	for i < n {
		if raw[i] != '<' {
			textBuf = append(textBuf, raw[i])
			i++
			continue
		}

		closeBracket := strings.IndexByte(raw[i+1:], '>')
		if closeBracket < 0 {
			// Unterminated tag: "<" is a literal character.
			textBuf = append(textBuf, '<')
			i++
			continue
		}
		inner := raw[i+1 : i+1+closeBracket]
		afterTag := i + 1 + closeBracket + 1

		if strings.HasPrefix(inner, "gradient:") {
			if children, consumed, ok := parseGradient(inner, raw[afterTag:], stack[len(stack)-1], protocol); ok {
				flush()
				root.Extra = append(root.Extra, children...)
				i = afterTag + consumed
				continue
			}
			// malformed gradient spec falls through to "unrecognized tag"
		} else if strings.HasPrefix(inner, "/") {
			flush()
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
			i = afterTag
			continue
		} else if inner == "reset" || inner == "r" {
			flush()
			stack = stack[:1]
			i = afterTag
			continue
		} else if style, ok := tagStyle(inner); ok {
			flush()
			stack = append(stack, MergeOver(stack[len(stack)-1], style))
			i = afterTag
			continue
		}

		// Unrecognized tag content: emit the literal "<" and resume
		// scanning from the very next byte, tags are never greedy.
		textBuf = append(textBuf, '<')
		i++
	}
	flush()

	return root
}

func tagStyle(tag string) (Style, bool) {
	switch tag {
	case "bold", "b":
		return Style{Bold: boolPtr(true)}, true
	case "italic", "i":
		return Style{Italic: boolPtr(true)}, true
	case "underlined", "underline", "u":
		return Style{Underlined: boolPtr(true)}, true
	case "strikethrough", "st", "strike", "s":
		return Style{Strikethrough: boolPtr(true)}, true
	case "obfuscated", "obf":
		return Style{Obfuscated: boolPtr(true)}, true
	}
	if c, err := ParseColor(tag); err == nil {
		return Style{Color: &c}, true
	}
	return Style{}, false
}

// parseGradient handles "gradient:COLOR_A:COLOR_B" whose open tag content
// is inner and whose remaining unscanned text is rest. It returns the
// child components for the gradient's inner text and how many bytes of
// rest were consumed (up to and including the matching "</gradient>").
func parseGradient(inner string, rest string, ambient Style, protocol int) ([]Component, int, bool) {
	parts := strings.SplitN(inner, ":", 3)
	if len(parts) != 3 {
		return nil, 0, false
	}
	colorA, errA := ParseColor(parts[1])
	colorB, errB := ParseColor(parts[2])
	if errA != nil || errB != nil {
		return nil, 0, false
	}

	const closeTag = "</gradient>"
	closeIdx := strings.Index(rest, closeTag)
	if closeIdx < 0 {
		return nil, 0, false
	}

	innerText := rest[:closeIdx]
	return gradientChildren(innerText, colorA, colorB, ambient, protocol), closeIdx + len(closeTag), true
}

func gradientChildren(innerText string, colorA, colorB Color, ambient Style, protocol int) []Component {
	if protocol < HexColorProtocol {
		st := ambient.WithColor(colorA)
		return []Component{{Style: st, Content: Content{Kind: ContentText, Text: innerText}}}
	}

	runes := []rune(innerText)
	n := len(runes)
	if n == 0 {
		return nil
	}

	children := make([]Component, 0, n)
	for i, r := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := Lerp(colorA, colorB, t)
		children = append(children, Component{
			Style:   ambient.WithColor(c),
			Content: Content{Kind: ContentText, Text: string(r)},
		})
	}
	return children
}
