package utils

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strings"
)

const (
	gravatarSize    = "40"
	gravatarDefault = "https://www.example.com/default.jpg"
)

// GravatarURL builds the avatar URL for an email address. Gravatar keys
// images by the md5 of the lowercased address.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(email)))

	query := url.Values{}
	query.Set("d", gravatarDefault)
	query.Set("s", gravatarSize)

	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?" + query.Encode()
}
