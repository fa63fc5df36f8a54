// Package scrape extracts property listings from external web pages and
// turns them into import drafts.
package scrape

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	kdb "github.com/psmphuket/portal/pkg/db"
)

const (
	userAgent = "Mozilla/5.0 (compatible; psm-portal-import/1.0)"
	maxImages = 20
)

// Page is the cleaned-up content of a fetched listing page.
type Page struct {
	SourceURL       string   `json:"sourceUrl"`
	Title           string   `json:"title"`
	MetaDescription string   `json:"metaDescription"`
	Text            string   `json:"text"`
	Images          []string `json:"images"`
}

// Fetch downloads a listing page and extracts its content.
func Fetch(ctx context.Context, pageURL string) (*Page, error) {
	base, err := url.Parse(pageURL)
	if err != nil || !base.IsAbs() {
		return nil, fmt.Errorf("not an absolute URL: %s", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can not fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", pageURL, resp.Status)
	}

	return Extract(resp.Body, base)
}

// Extract parses HTML into a Page. Script, style and chrome elements are
// dropped from the text; image URLs are resolved against base, filtered
// and capped at 20.
func Extract(r io.Reader, base *url.URL) (*Page, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("can not parse HTML: %w", err)
	}

	page := &Page{SourceURL: base.String()}
	var text strings.Builder
	seen := map[string]bool{}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "nav", "footer", "header", "form":
				return
			case "meta":
				meta(n, page)
			case "title":
				if page.Title == "" && n.FirstChild != nil {
					page.Title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "h1":
				if h := nodeText(n); h != "" {
					// h1 beats <title>, which carries site branding
					page.Title = h
				}
			case "img":
				collectImage(attr(n, "src"), base, seen, page)
				collectImage(attr(n, "data-src"), base, seen, page)
			case "a":
				if href := attr(n, "href"); looksLikeImage(href) {
					collectImage(href, base, seen, page)
				}
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				text.WriteString(t)
				text.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	page.Text = text.String()
	return page, nil
}

func meta(n *html.Node, page *Page) {
	prop := attr(n, "property")
	name := attr(n, "name")
	content := strings.TrimSpace(attr(n, "content"))
	if content == "" {
		return
	}
	switch {
	case prop == "og:title" && page.Title == "":
		page.Title = content
	case prop == "og:description" || name == "description":
		if page.MetaDescription == "" {
			page.MetaDescription = content
		}
	case prop == "og:image":
		// handled as a regular image candidate, og:image first
		page.Images = append([]string{content}, page.Images...)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

var junkImage = regexp.MustCompile(`(?i)logo|icon|avatar|placeholder|loading|favicon|sprite|qr-?code|captcha`)

func looksLikeImage(href string) bool {
	href = strings.ToLower(href)
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".webp"} {
		if strings.HasSuffix(href, ext) || strings.Contains(href, ext+"?") {
			return true
		}
	}
	return false
}

func collectImage(src string, base *url.URL, seen map[string]bool, page *Page) {
	src = strings.TrimSpace(src)
	if src == "" || strings.HasPrefix(src, "data:") || junkImage.MatchString(src) {
		return
	}
	ref, err := url.Parse(src)
	if err != nil {
		return
	}
	abs := base.ResolveReference(ref).String()
	if seen[abs] || len(page.Images) >= maxImages {
		return
	}
	seen[abs] = true
	page.Images = append(page.Images, abs)
}

var (
	priceTHB    = regexp.MustCompile(`(?i)(?:฿|THB)\s*([\d,.]+)\s*([kKmM])?`)
	priceLoose  = regexp.MustCompile(`(?i)price[:\s]*([\d,]+)`)
	bedsPattern = regexp.MustCompile(`(?i)(\d+)\s*bed(?:room)?s?\b`)
	bathPattern = regexp.MustCompile(`(?i)(\d+)(?:\.\d+)?\s*bath(?:room)?s?\b`)
	sqmPattern  = regexp.MustCompile(`(?i)([\d,]+(?:\.\d+)?)\s*(?:sqm|sq\.?\s*m\b|m²|m2\b)`)
	sqftPattern = regexp.MustCompile(`(?i)([\d,]+(?:\.\d+)?)\s*(?:sqft|sq\.?\s*ft)`)
)

// phuketAreas is used to guess the location line from free text.
var phuketAreas = []string{
	"Rawai", "Nai Harn", "Patong", "Kata", "Karon", "Kamala", "Surin",
	"Bang Tao", "Bangtao", "Laguna", "Cherngtalay", "Thalang", "Chalong",
	"Kathu", "Phuket Town", "Mai Khao", "Nai Yang", "Cape Yamu", "Layan",
}

// DraftProperty maps an extracted page onto a property draft. Fields the
// heuristics can not find stay zero; the importer shows the draft for
// review before registration.
func DraftProperty(page *Page) *kdb.Property {
	prop := &kdb.Property{
		Title:       page.Title,
		Description: page.MetaDescription,
		Images:      page.Images,
		Status:      kdb.PropertyActive,
		Type:        guessType(page.Text),
		Price:       ParsePrice(page.Text),
		Location:    guessLocation(page.Title + "\n" + page.Text),
	}

	if m := bedsPattern.FindStringSubmatch(page.Text); m != nil {
		prop.Bedrooms, _ = strconv.Atoi(m[1])
	}
	if m := bathPattern.FindStringSubmatch(page.Text); m != nil {
		prop.Bathrooms, _ = strconv.Atoi(m[1])
	}
	if m := sqmPattern.FindStringSubmatch(page.Text); m != nil {
		prop.AreaSqm, _ = strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	} else if m := sqftPattern.FindStringSubmatch(page.Text); m != nil {
		if sqft, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64); err == nil {
			prop.AreaSqm = sqft / 10.764
		}
	}
	return prop
}

// ParsePrice finds the first THB amount in text. "฿34,800,000", "THB 34.8M"
// and "THB 500k" all parse; returns 0 when nothing matches.
func ParsePrice(text string) int64 {
	if m := priceTHB.FindStringSubmatch(text); m != nil {
		return scalePrice(m[1], m[2])
	}
	if m := priceLoose.FindStringSubmatch(text); m != nil {
		return scalePrice(m[1], "")
	}
	return 0
}

func scalePrice(number, suffix string) int64 {
	multiplier := 1.0
	switch strings.ToLower(suffix) {
	case "k":
		multiplier = 1_000
	case "m":
		multiplier = 1_000_000
	}

	// with a scale suffix the dot is a decimal separator, otherwise
	// both comma and dot are thousand separators
	if multiplier == 1 {
		number = strings.ReplaceAll(number, ".", "")
	}
	number = strings.ReplaceAll(number, ",", "")
	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(value * multiplier))
}

func guessType(text string) kdb.PropertyType {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "for rent") || strings.Contains(lower, "per month") {
		return kdb.ForRent
	}
	return kdb.ForSale
}

func guessLocation(text string) string {
	lower := strings.ToLower(text)
	for _, area := range phuketAreas {
		if strings.Contains(lower, strings.ToLower(area)) {
			return area
		}
	}
	return ""
}
