package signing

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	clientParam    = "client"
	signatureParam = "signature"
)

// GoogleSigner builds query strings the way the Google-compatible distance
// matrix endpoints expect. With a client id and signing secret present, the
// secret is replaced by an HMAC-SHA1 signature of the request path and query;
// otherwise the values are only encoded.
type GoogleSigner struct{}

func NewGoogleSigner() *GoogleSigner {
	return &GoogleSigner{}
}

func (s *GoogleSigner) Stringify(values url.Values, baseURL string) (string, error) {
	secret := values.Get(signatureParam)
	if values.Get(clientParam) == "" || secret == "" {
		return values.Encode(), nil
	}

	params := make(url.Values, len(values))
	for k, v := range values {
		if k == signatureParam {
			continue
		}
		params[k] = v
	}
	encoded := params.Encode()

	sig, err := sign(baseURL+encoded, secret)
	if err != nil {
		return "", fmt.Errorf("sign query: %w", err)
	}

	return encoded + "&" + signatureParam + "=" + sig, nil
}

// sign returns the URL-safe base64 HMAC-SHA1 of rawURL's path and query,
// keyed with the URL-safe base64 decoded secret.
func sign(rawURL, secret string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha1.New, key)
	mac.Write([]byte(u.EscapedPath() + "?" + u.RawQuery))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil)), nil
}

// decodeSecret accepts the secret with or without base64 padding.
func decodeSecret(secret string) ([]byte, error) {
	secret = strings.TrimRight(secret, "=")
	key, err := base64.RawURLEncoding.DecodeString(secret)
	if err != nil {
		return nil, errors.New("signing secret is not url-safe base64")
	}
	return key, nil
}
