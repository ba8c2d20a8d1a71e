package ports

import "net/url"

// Contract for turning an option set into a finalized, authenticated query string.
type QuerySigner interface {
	// Return the encoded query to append to baseURL.
	Stringify(values url.Values, baseURL string) (string, error)
}
