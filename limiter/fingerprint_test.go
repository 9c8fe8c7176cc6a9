package limiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintDeterministic(t *testing.T) {
	headers := map[string]string{
		"User-Agent":      "Mozilla/5.0",
		"Accept-Language": "en-US",
		"Accept-Encoding": "gzip",
		"Accept":          "text/html",
	}

	a := Fingerprint(NewRequest("1.2.3.4", "", headers))
	b := Fingerprint(NewRequest("1.2.3.4", "", headers))

	assert.Equal(t, a, b)
	assert.Len(t, a, 16)
}

func TestFingerprintChangesWithInput(t *testing.T) {
	base := map[string]string{"User-Agent": "Mozilla/5.0"}

	a := Fingerprint(NewRequest("1.2.3.4", "", base))
	b := Fingerprint(NewRequest("1.2.3.5", "", base))
	c := Fingerprint(NewRequest("1.2.3.4", "", map[string]string{"User-Agent": "curl/8.0"}))

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestFingerprintMissingHeadersStable(t *testing.T) {
	// Absent headers hash as "unknown" rather than erroring, so two bare
	// requests from the same address collapse into the same bucket.
	a := Fingerprint(NewRequest("1.2.3.4", "", nil))
	b := Fingerprint(NewRequest("1.2.3.4", "", map[string]string{}))

	assert.Equal(t, a, b)
}

func TestFingerprintHeaderLookupCaseInsensitive(t *testing.T) {
	a := Fingerprint(NewRequest("1.2.3.4", "", map[string]string{"user-agent": "Mozilla/5.0"}))
	b := Fingerprint(NewRequest("1.2.3.4", "", map[string]string{"User-Agent": "Mozilla/5.0"}))

	assert.Equal(t, a, b)
}
