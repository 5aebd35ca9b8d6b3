package utils

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// SanitizeHTML strips HTML tags, script/style content, and decodes entities
func SanitizeHTML(s string) string {
	// 1. Decode HTML entities first (e.g. &lt; -> <) so tags are recognized
	s = html.UnescapeString(s)

	// 2. Remove script and style blocks content
	reScript := regexp.MustCompile(`(?i)<script[^>]*>[\s\S]*?</script>`)
	s = reScript.ReplaceAllString(s, "")
	reStyle := regexp.MustCompile(`(?i)<style[^>]*>[\s\S]*?</style>`)
	s = reStyle.ReplaceAllString(s, "")

	// 3. Strip tags using bluemonday
	p := bluemonday.StripTagsPolicy()
	s = p.Sanitize(s)

	// 4. Decode HTML entities AGAIN (bluemonday might have escaped them, and we want plain text)
	s = html.UnescapeString(s)

	// 5. Collapse extra whitespace
	s = strings.Join(strings.Fields(s), " ")

	return s
}

// ToValidUTF8 cleans strings to ensure they are valid UTF-8
func ToValidUTF8(s string) string {
	return strings.ToValidUTF8(s, "")
}
