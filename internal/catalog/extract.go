package catalog

import (
	"net/url"
	"regexp"
	"strings"
)

var digitRun = regexp.MustCompile(`[0-9]{3,}`)

// knownCatalogHosts are storefront hosts whose URLs carry the cluster id
// as a bare numeric path segment.
var knownCatalogHosts = []string{"pardo.com"}

// ExtractClusterID turns free-form user input (a raw id, a storefront URL,
// a pasted share link) into the cluster identifier to query. It never
// fails: when no rule matches it returns the input unchanged and lets the
// fetch decide whether the value is usable.
func ExtractClusterID(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed != "" && isAllDigits(trimmed) {
		return trimmed
	}

	if u, err := url.Parse(trimmed); err == nil && u.Host != "" {
		if id, ok := clusterIDFromMapParam(u); ok {
			return id
		}
		if id, ok := numericPathSegment(u); ok {
			return id
		}
	}

	if m := digitRun.FindString(input); m != "" {
		return m
	}
	return input
}

// clusterIDFromMapParam resolves collection URLs of the form
// /<segment>?map=...,productClusterIds,... where the position of the
// productClusterIds token in the map list selects the matching path segment.
func clusterIDFromMapParam(u *url.URL) (string, bool) {
	m := u.Query().Get("map")
	if m == "" {
		return "", false
	}
	segs := pathSegments(u.Path)
	for k, tok := range strings.Split(m, ",") {
		if tok == "productClusterIds" && k < len(segs) {
			return segs[k], true
		}
	}
	return "", false
}

// numericPathSegment handles storefront links that embed the cluster id as
// a plain numeric segment, e.g. https://www.pardo.com.ar/coleccion/164.
func numericPathSegment(u *url.URL) (string, bool) {
	known := false
	for _, h := range knownCatalogHosts {
		if strings.Contains(u.Host, h) {
			known = true
			break
		}
	}
	if !known {
		return "", false
	}
	for _, seg := range pathSegments(u.Path) {
		if isAllDigits(seg) {
			return seg, true
		}
	}
	return "", false
}

func pathSegments(path string) []string {
	var out []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
