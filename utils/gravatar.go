package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
)

const (
	gravatarURL       = "http://www.gravatar.com/avatar"
	gravatarSecureURL = "https://secure.gravatar.com/avatar"
)

// EmailFingerprint is the md5 hex digest of the trimmed, lowercased address.
func EmailFingerprint(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

// GravatarURL builds the avatar image URL for a fingerprint. Query order is s, d, r.
func GravatarURL(fingerprint string, size int, defaultStyle, rating string, secure bool) string {
	base := gravatarURL
	if secure {
		base = gravatarSecureURL
	}
	return fmt.Sprintf("%s/%s?s=%d&d=%s&r=%s",
		base, fingerprint, size, url.QueryEscape(defaultStyle), url.QueryEscape(rating))
}
