package websearch

import (
	"context"
	"regexp"
	"strings"

	"github.com/tmc/langchaingo/tools/duckduckgo"
	"github.com/tmc/langchaingo/tools/scraper"
	"mvdan.cc/xurls/v2"

	"github.com/mindling-ai/mindling/pkg/xlog"
)

const (
	userAgent = "mindling"
	maxChars  = 600

	noResultsReply   = "I searched the web but couldn't find anything useful."
	searchErrorReply = "Something went wrong during the web search. Shall we try phrasing the question differently?"
)

// allowedDomains filters which pages are worth fetching in full.
var allowedDomains = []string{
	"github.com",
	"stackoverflow.com",
	"arxiv.org",
	"researchgate.net",
	"developer.mozilla.org",
	"w3schools.com",
	"devdocs.io",
	"proofwiki.org",
	"mathworld.wolfram.com",
	"engineeringtoolbox.com",
	"allaboutcircuits.com",
	"wikipedia.org",
}

// Brain answers queries from the web. It never returns an error:
// every failure path degrades to a fixed apologetic string.
type Brain struct {
	results int
}

func New(results int) *Brain {
	if results <= 0 {
		results = 3
	}
	return &Brain{results: results}
}

func (b *Brain) Answer(ctx context.Context, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return "I need something to search for. Try phrasing a query."
	}

	snippets, urls, err := b.search(ctx, query)
	if err != nil {
		xlog.Warn("Web search failed", "error", err)
		return searchErrorReply
	}
	if snippets == "" && len(urls) == 0 {
		return noResultsReply
	}

	for _, u := range urls {
		if !allowedDomain(u) {
			continue
		}
		text, err := b.fetch(ctx, u)
		if err != nil || text == "" {
			xlog.Debug("Page fetch failed, falling back to snippets", "url", u, "error", err)
			break
		}
		return "Here's a short summary from the web:\n" + condense(text) + "\n\nSource: " + u
	}

	if snippets == "" {
		return noResultsReply
	}
	return "Here's what I found online:\n" + condense(snippets)
}

func (b *Brain) search(ctx context.Context, query string) (string, []string, error) {
	ddg, err := duckduckgo.New(b.results, userAgent)
	if err != nil {
		return "", nil, err
	}
	res, err := ddg.Call(ctx, query)
	if err != nil {
		return "", nil, err
	}

	rxStrict := xurls.Strict()
	var urls []string
	for _, u := range rxStrict.FindAllString(res, -1) {
		u = strings.ReplaceAll(u, "//duckduckgo.com/l/?uddg=", "")
		u = strings.Split(u, "&rut=")[0]
		urls = append(urls, u)
	}

	return res, urls, nil
}

func (b *Brain) fetch(ctx context.Context, url string) (string, error) {
	s, err := scraper.New()
	if err != nil {
		return "", err
	}
	return s.Call(ctx, url)
}

func allowedDomain(url string) bool {
	for _, domain := range allowedDomains {
		if strings.Contains(url, domain) {
			return true
		}
	}
	return false
}

var spaceRe = regexp.MustCompile(`\s+`)

func condense(text string) string {
	text = strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
	if len(text) > maxChars {
		text = text[:maxChars] + "..."
	}
	return text
}
