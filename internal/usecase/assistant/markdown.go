package assistant

import (
	"regexp"
	"strings"
)

var (
	reBoldItalic = regexp.MustCompile(`\*\*\*([^*]+?)\*\*\*`)
	reBold       = regexp.MustCompile(`\*\*([^*]+?)\*\*`)
	reItalic     = regexp.MustCompile(`\*([^*]+?)\*`)
	reListMarker = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
)

// CleanMarkdown reduces a model answer to plain text: list markers, emphasis
// and stray asterisks are removed.
func CleanMarkdown(text string) string {
	text = reListMarker.ReplaceAllString(text, "")
	text = reBoldItalic.ReplaceAllString(text, "$1")
	text = reBold.ReplaceAllString(text, "$1")
	text = reItalic.ReplaceAllString(text, "$1")
	text = dropStrayAsterisks(text)
	return strings.TrimSpace(text)
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// dropStrayAsterisks removes '*' with no ASCII word character on either side.
func dropStrayAsterisks(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '*' {
			prevWord := i > 0 && isWordByte(s[i-1])
			nextWord := i+1 < len(s) && isWordByte(s[i+1])
			if !prevWord && !nextWord {
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
