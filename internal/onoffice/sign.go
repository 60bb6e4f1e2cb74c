package onoffice

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"unicode/utf8"
)

// HMACVersion is the signature scheme version sent with every action.
const HMACVersion = 2

// Sign computes the request signature for a single action. The signed
// message is the decimal timestamp, the API key, the resource type and the
// action id concatenated without separators; the result is the base64
// encoded HMAC-SHA256 digest keyed by secret.
func Sign(timestamp int64, action, resourceType, apiKey string, secret []byte) (string, error) {
	for _, f := range []struct{ name, value string }{
		{"action", action},
		{"resource type", resourceType},
		{"api key", apiKey},
	} {
		if !utf8.ValidString(f.value) {
			return "", &EncodingError{Field: f.name}
		}
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte(apiKey))
	mac.Write([]byte(resourceType))
	mac.Write([]byte(action))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
