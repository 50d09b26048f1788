package catalog

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Strategy is one concrete way of reaching the catalog endpoint: a request
// URL shape plus the matching response-unwrapping rule. The pass-through
// services used when the storefront refuses direct requests disagree on
// response shape, so both halves travel together.
type Strategy struct {
	Name   string
	Build  func(target string) string
	Unwrap func(body []byte) ([]RawProduct, error)
}

func unwrapDirect(body []byte) ([]RawProduct, error) {
	var out []RawProduct
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode product array: %w", err)
	}
	return out, nil
}

func unwrapEnvelope(body []byte) ([]RawProduct, error) {
	var env proxyEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode proxy envelope: %w", err)
	}
	return unwrapDirect([]byte(env.Contents))
}

// defaultStrategies is the ordered chain the fetcher walks: a direct
// request first, then the two pass-through services.
func defaultStrategies() []Strategy {
	return []Strategy{
		{
			Name:   "direct",
			Build:  func(target string) string { return target },
			Unwrap: unwrapDirect,
		},
		{
			Name: "corsproxy",
			Build: func(target string) string {
				return "https://corsproxy.io/?url=" + url.QueryEscape(target)
			},
			Unwrap: unwrapDirect,
		},
		{
			Name: "allorigins",
			Build: func(target string) string {
				return "https://api.allorigins.win/get?url=" + url.QueryEscape(target)
			},
			Unwrap: unwrapEnvelope,
		},
	}
}
