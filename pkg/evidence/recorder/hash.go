package recorder

import (
	"crypto/sha256"
	"encoding/hex"

	"adlint-hq/saturn/pkg/compliance"
)

// HashContent computes the hex-encoded SHA-256 of a creative. The hash
// covers headline, body, and CTA with a field separator so ("ab","c")
// and ("a","bc") hash differently. Returns "" for empty content.
func HashContent(content compliance.Content) string {
	if content.Headline == "" && content.Body == "" && content.CTA == "" {
		return ""
	}

	h := sha256.New()
	for _, field := range []string{content.Headline, content.Body, content.CTA} {
		h.Write([]byte(field))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
