package limiter

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// fingerprintHeaders are the request dimensions folded into the digest, in
// a fixed order so the digest is stable across requests.
var fingerprintHeaders = []string{
	"User-Agent",
	"Accept-Language",
	"Accept-Encoding",
	"Accept",
	"Sec-CH-UA",
	"Sec-CH-UA-Mobile",
	"Sec-CH-UA-Platform",
}

// Fingerprint derives a 16 hex character identity digest from the client
// address and a fixed set of headers. Missing values are replaced with
// "unknown" so absent data hashes predictably instead of erroring.
// Collisions bucket different clients together, which only makes the
// limiter coarser, never wrong the other way.
func Fingerprint(r Request) string {
	components := make([]string, 0, len(fingerprintHeaders)+1)

	components = append(components, orUnknown(r.IP))
	for _, h := range fingerprintHeaders {
		components = append(components, orUnknown(r.Header(h)))
	}

	sum := sha256.Sum256([]byte(strings.Join(components, "|")))
	return hex.EncodeToString(sum[:])[:16]
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
