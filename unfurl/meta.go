package unfurl

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type pageMeta struct {
	title       string
	description string
	image       string
	siteName    string
}

var (
	titleTagRe = regexp.MustCompile(`(?is)<title[^>]*>([^<]+)`)
	entityFix  = strings.NewReplacer(
		"&amp;", "&", "&quot;", `"`, "&#39;", "'", "&apos;", "'",
		"&nbsp;", " ", "&#x27;", "'",
	)
)

// metaContent pulls one og/twitter/meta tag's content attribute.
func metaContent(html, name string) string {
	re := regexp.MustCompile(`(?i)<meta[^>]+(?:property|name)=["']` + regexp.QuoteMeta(name) + `["'][^>]*content=["']([^"']+)`)
	if m := re.FindStringSubmatch(html); m != nil {
		return entityFix.Replace(strings.TrimSpace(m[1]))
	}
	return ""
}

func parseMeta(html string) pageMeta {
	m := pageMeta{
		title:       metaContent(html, "og:title"),
		description: metaContent(html, "og:description"),
		image:       metaContent(html, "og:image"),
		siteName:    metaContent(html, "og:site_name"),
	}
	if m.title == "" {
		m.title = metaContent(html, "twitter:title")
	}
	if m.title == "" {
		if t := titleTagRe.FindStringSubmatch(html); t != nil {
			m.title = entityFix.Replace(strings.TrimSpace(t[1]))
		}
	}
	if m.description == "" {
		m.description = metaContent(html, "description")
	}
	if m.image == "" {
		m.image = metaContent(html, "twitter:image")
	}
	return m
}

// Site-name suffixes commonly glued onto page titles, plus filler titles
// that carry no venue name at all.
var knownSuffixes = []string{
	"yelp", "tripadvisor", "opentable", "resy", "booking.com", "airbnb",
	"vrbo", "expedia", "google maps", "official site", "official website",
}

var genericTitles = map[string]bool{
	"": true, "home": true, "homepage": true, "menu": true,
	"welcome": true, "untitled": true, "index": true,
}

var titleSepRe = regexp.MustCompile(`\s+[-|–—·]\s+`)

// CleanTitle strips site-name suffixes and replaces generic filler with a
// name derived from the URL. It always returns something non-empty.
func CleanTitle(raw, rawURL string) string {
	t := strings.TrimSpace(raw)

	if parts := titleSepRe.Split(t, -1); len(parts) > 1 {
		last := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
		for _, suffix := range knownSuffixes {
			if strings.Contains(last, suffix) {
				t = strings.TrimSpace(strings.Join(parts[:len(parts)-1], " - "))
				break
			}
		}
	}

	if genericTitles[strings.ToLower(t)] {
		t = slugTitle(rawURL)
	}
	if t == "" {
		t = hostName(rawURL)
	}
	if t == "" {
		t = rawURL
	}
	return t
}

var nonSlugRe = regexp.MustCompile(`[-_+]+`)
var digitsOnlyRe = regexp.MustCompile(`^\d+$`)

// slugTitle derives a readable name from the URL path ("/r/le-bernardin" ->
// "Le Bernardin"). Numeric id segments are skipped.
func slugTitle(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if dot := strings.LastIndex(seg, "."); dot > 0 {
			seg = seg[:dot]
		}
		if seg == "" || digitsOnlyRe.MatchString(seg) {
			continue
		}
		words := strings.Fields(nonSlugRe.ReplaceAllString(seg, " "))
		for j, w := range words {
			r, size := utf8.DecodeRuneInString(w)
			words[j] = string(unicode.ToUpper(r)) + w[size:]
		}
		return strings.Join(words, " ")
	}
	return hostName(rawURL)
}

func hostName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// resolveImage turns a page-relative image reference into an absolute URL.
func resolveImage(img, pageURL string) string {
	img = strings.TrimSpace(img)
	if img == "" {
		return ""
	}
	if strings.HasPrefix(img, "http://") || strings.HasPrefix(img, "https://") {
		return img
	}
	base, err := url.Parse(pageURL)
	if err != nil || base.Host == "" {
		return ""
	}
	ref, err := url.Parse(img)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
