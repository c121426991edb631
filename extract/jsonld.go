package extract

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var jsonldBlockRe = regexp.MustCompile(`(?is)<script[^>]+type=["']application/ld\+json["'][^>]*>(.*?)</script>`)

// fromJSONLD pulls rating signals out of every ld+json block on the page.
// Blocks that fail to parse are skipped individually; a page full of broken
// structured data simply yields empty signals.
func fromJSONLD(html string) Signals {
	var s Signals
	for _, m := range jsonldBlockRe.FindAllStringSubmatch(html, -1) {
		var doc interface{}
		if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), &doc); err != nil {
			continue
		}
		walkJSONLD(doc, &s)
		if s.Rating != nil && s.ReviewCount != nil && s.PriceRange != "" {
			break
		}
	}
	return s
}

// walkJSONLD traverses arbitrarily shaped ld+json (objects, arrays, @graph
// nesting) and fills any still-empty signal fields.
func walkJSONLD(node interface{}, s *Signals) {
	switch v := node.(type) {
	case []interface{}:
		for _, item := range v {
			walkJSONLD(item, s)
		}
	case map[string]interface{}:
		if agg, ok := v["aggregateRating"].(map[string]interface{}); ok {
			if s.Rating == nil {
				if r, ok := jsonNumber(agg["ratingValue"]); ok && r >= 1 && r <= 5 {
					s.Rating = &r
				}
			}
			if s.ReviewCount == nil {
				if c, ok := jsonNumber(agg["reviewCount"]); ok && c >= 0 {
					n := int(c)
					s.ReviewCount = &n
				} else if c, ok := jsonNumber(agg["ratingCount"]); ok && c >= 0 {
					n := int(c)
					s.ReviewCount = &n
				}
			}
		}
		if s.PriceRange == "" {
			if pr, ok := v["priceRange"].(string); ok {
				s.PriceRange = normalizePriceRange(pr)
			}
		}
		if graph, ok := v["@graph"]; ok {
			walkJSONLD(graph, s)
		}
	}
}

// jsonNumber accepts both JSON numbers and numeric strings, which review
// sites use interchangeably in their markup.
func jsonNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// normalizePriceRange reduces whatever a site put in priceRange ("$$",
// "$$ - $$$", "$31-50") to a bare dollar-sign token, or "" when there is no
// usable glyph run.
func normalizePriceRange(pr string) string {
	count := 0
	max := 0
	for _, r := range pr {
		if r == '$' {
			count++
			if count > max {
				max = count
			}
		} else {
			count = 0
		}
	}
	if max < 1 {
		return ""
	}
	if max > 4 {
		max = 4
	}
	return strings.Repeat("$", max)
}
