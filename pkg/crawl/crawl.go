// Package crawl walks a legacy WordPress site and maps its URLs onto the
// routes of the new portal, for redirect configuration.
package crawl

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

type PageType string

const (
	TypeHome     PageType = "home"
	TypeProperty PageType = "property"
	TypeBlog     PageType = "blog"
	TypeArchive  PageType = "archive"
	TypePage     PageType = "page"
)

// PageInfo is one crawled URL with its classification and the route it
// should redirect to on the new site.
type PageInfo struct {
	URL               string
	Path              string
	Type              PageType
	Title             string
	StatusCode        int
	SuggestedRedirect string
}

type Crawler struct {
	base     *url.URL
	client   *http.Client
	delay    time.Duration
	maxPages int
}

// New builds a crawler rooted at baseURL. delay throttles between
// requests; maxPages caps the walk.
func New(baseURL string, delay time.Duration, maxPages int) (*Crawler, error) {
	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return nil, fmt.Errorf("not an absolute URL: %s", baseURL)
	}
	if maxPages <= 0 {
		maxPages = 500
	}
	return &Crawler{
		base:     base,
		client:   &http.Client{Timeout: 15 * time.Second},
		delay:    delay,
		maxPages: maxPages,
	}, nil
}

// Crawl walks same-origin links breadth-first from the base URL and
// returns every page it reached. Fetch errors on individual pages are
// recorded with a zero status code, not fatal.
func (c *Crawler) Crawl(ctx context.Context) ([]PageInfo, error) {
	queue := []string{c.normalize(c.base)}
	visited := map[string]bool{queue[0]: true}
	var pages []PageInfo

	for len(queue) > 0 && len(pages) < c.maxPages {
		if err := ctx.Err(); err != nil {
			return pages, err
		}
		current := queue[0]
		queue = queue[1:]

		info, links := c.fetch(ctx, current)
		pages = append(pages, info)

		for _, link := range links {
			if !visited[link] {
				visited[link] = true
				queue = append(queue, link)
			}
		}

		if c.delay > 0 && len(queue) > 0 {
			select {
			case <-time.After(c.delay):
			case <-ctx.Done():
				return pages, ctx.Err()
			}
		}
	}
	return pages, nil
}

func (c *Crawler) fetch(ctx context.Context, pageURL string) (PageInfo, []string) {
	info := PageInfo{URL: pageURL}
	if u, err := url.Parse(pageURL); err == nil {
		info.Path = u.Path
		info.Type = classify(u.Path)
		info.SuggestedRedirect = suggestRedirect(info.Type, u.Path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return info, nil
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; psm-portal-crawl/1.0)")

	resp, err := c.client.Do(req)
	if err != nil {
		return info, nil
	}
	defer resp.Body.Close()
	info.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK ||
		!strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return info, nil
	}

	root, err := html.Parse(resp.Body)
	if err != nil {
		return info, nil
	}
	info.Title = pageTitle(root)
	return info, c.links(root, resp.Request.URL)
}

func pageTitle(root *html.Node) string {
	var title string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return title
}

func (c *Crawler) links(root *html.Node, current *url.URL) []string {
	var found []string
	seen := map[string]bool{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, a := range n.Attr {
				if a.Key != "href" {
					continue
				}
				ref, err := url.Parse(strings.TrimSpace(a.Val))
				if err != nil {
					continue
				}
				abs := current.ResolveReference(ref)
				if !c.crawlable(abs) {
					continue
				}
				normalized := c.normalize(abs)
				if !seen[normalized] {
					seen[normalized] = true
					found = append(found, normalized)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return found
}

// skipPaths lists WordPress internals that never need a redirect.
var skipPaths = []string{
	"/wp-admin", "/wp-login", "/wp-includes", "/wp-content/uploads",
	"/feed", "/xmlrpc.php", "/wp-json",
}

func (c *Crawler) crawlable(u *url.URL) bool {
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if u.Host != c.base.Host {
		return false
	}
	for _, skip := range skipPaths {
		if strings.HasPrefix(u.Path, skip) {
			return false
		}
	}
	switch strings.ToLower(path.Ext(u.Path)) {
	case "", ".html", ".htm", ".php":
		return true
	}
	return false
}

func (c *Crawler) normalize(u *url.URL) string {
	clean := *u
	clean.Fragment = ""
	clean.RawQuery = ""
	// "/x/" and "/x" are the same WordPress page; so are "/" and ""
	clean.Path = strings.TrimSuffix(clean.Path, "/")
	return clean.String()
}

func classify(p string) PageType {
	p = strings.ToLower(p)
	switch {
	case p == "" || p == "/":
		return TypeHome
	case containsAny(p, "/property/", "/properties/", "/listing/", "/villa/", "/house/", "/condo/", "/apartment/"):
		return TypeProperty
	case containsAny(p, "/blog/", "/news/", "/article/"):
		return TypeBlog
	case containsAny(p, "/category/", "/tag/", "/author/", "/page/"):
		return TypeArchive
	}
	return TypePage
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func suggestRedirect(t PageType, p string) string {
	slug := path.Base(strings.TrimSuffix(p, "/"))
	switch t {
	case TypeHome:
		return "/"
	case TypeProperty:
		return "/properties/" + slug
	case TypeBlog:
		return "/blogs/" + slug
	case TypeArchive:
		return "/blogs"
	}

	switch strings.Trim(strings.ToLower(p), "/") {
	case "contact", "contact-us":
		return "/contact"
	case "about", "about-us", "our-team", "agents":
		return "/about"
	}
	return strings.TrimSuffix(p, "/")
}

// WriteCSV emits the redirect mapping, one row per crawled page.
func WriteCSV(w io.Writer, pages []PageInfo) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"url", "path", "type", "title", "status", "redirect"}); err != nil {
		return err
	}
	for _, page := range pages {
		record := []string{
			page.URL, page.Path, string(page.Type),
			page.Title, strconv.Itoa(page.StatusCode), page.SuggestedRedirect,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
