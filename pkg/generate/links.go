package generate

import (
	"fmt"
	"regexp"
	"strings"

	kdb "github.com/psmphuket/portal/pkg/db"
)

// WeaveLinks rewrites articleHTML so that the first plain-text occurrence
// of each active internal-link keyword becomes an anchor to its target.
// Matching is case-insensitive on word boundaries; text already inside an
// anchor or a tag is left alone.
func WeaveLinks(articleHTML string, links []kdb.InternalLink) string {
	for _, link := range links {
		if !link.Active || link.Keyword == "" {
			continue
		}
		articleHTML = linkFirstOccurrence(articleHTML, link.Keyword, link.TargetURL)
	}
	return articleHTML
}

func linkFirstOccurrence(html, keyword, target string) string {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	if err != nil {
		return html
	}

	for _, loc := range re.FindAllStringIndex(html, -1) {
		if insideMarkup(html, loc[0]) {
			continue
		}
		matched := html[loc[0]:loc[1]]
		return html[:loc[0]] +
			fmt.Sprintf(`<a href="%s">%s</a>`, target, matched) +
			html[loc[1]:]
	}
	return html
}

// insideMarkup reports whether pos sits inside a tag or an <a> element.
func insideMarkup(html string, pos int) bool {
	// inside a tag: the last angle bracket before pos is an opener
	if open := strings.LastIndex(html[:pos], "<"); open >= 0 {
		if close := strings.LastIndex(html[:pos], ">"); close < open {
			return true
		}
	}

	// inside an anchor: an unclosed <a ...> precedes pos
	lower := strings.ToLower(html[:pos])
	lastOpen := strings.LastIndex(lower, "<a ")
	if lastOpen < 0 {
		lastOpen = strings.LastIndex(lower, "<a>")
	}
	if lastOpen < 0 {
		return false
	}
	return strings.LastIndex(lower, "</a>") < lastOpen
}
