package rdf

import (
	"net/url"
	"strings"
)

// resolveIRI resolves a relative IRI against a base IRI per RFC 3986.
// When either side does not parse as a URL the relative part is joined
// onto the base's last path segment, so malformed but usable IRIs
// still round-trip.
func resolveIRI(base, relative string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return joinIRI(base, relative)
	}
	relURL, err := url.Parse(relative)
	if err != nil {
		return joinIRI(base, relative)
	}
	if relURL.Scheme != "" {
		return relative
	}
	return baseURL.ResolveReference(relURL).String()
}

func joinIRI(base, relative string) string {
	if strings.HasSuffix(base, "/") {
		return base + relative
	}
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		return base[:i+1] + relative
	}
	return base + "/" + relative
}
