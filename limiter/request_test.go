package limiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingKeysFull(t *testing.T) {
	r := NewRequest("10.20.30.40", "someone@example.com", map[string]string{"User-Agent": "Mozilla/5.0"})

	keys := r.TrackingKeys()
	require.Len(t, keys, 4)

	assert.Equal(t, "ip_10.20.30.40", keys[0])
	assert.Equal(t, "email_someone@example.com", keys[1])
	assert.Equal(t, "fp_"+Fingerprint(r), keys[2])
	assert.Equal(t, "subnet_10.20.30", keys[3])
}

func TestTrackingKeysWithoutEmail(t *testing.T) {
	r := NewRequest("10.20.30.40", "", nil)

	keys := r.TrackingKeys()
	require.Len(t, keys, 3)
	assert.Equal(t, "ip_10.20.30.40", keys[0])
}

func TestTrackingKeysNonIPv4SkipsSubnet(t *testing.T) {
	r := NewRequest("2001:db8::1", "", nil)

	for _, key := range r.TrackingKeys() {
		assert.NotContains(t, key, "subnet_")
	}
}

func TestTrackingKeysNoIPStillFingerprinted(t *testing.T) {
	r := NewRequest("", "a@b.com", nil)

	keys := r.TrackingKeys()
	require.Len(t, keys, 2)
	assert.Equal(t, "email_a@b.com", keys[0])
}
