package limiter

import "strings"

// Request is the descriptor the gate consumes. The transport layer builds
// one per inbound request; header names are matched case-insensitively.
type Request struct {
	IP    string
	Email string
	// Location is optional best-effort enrichment, carried into block
	// metadata when strikes are applied.
	Location string

	headers map[string]string
}

func NewRequest(ip, email string, headers map[string]string) Request {
	normalized := make(map[string]string, len(headers))
	for k, v := range headers {
		normalized[strings.ToLower(k)] = v
	}
	return Request{IP: ip, Email: email, headers: normalized}
}

func (r Request) Header(name string) string {
	return r.headers[strings.ToLower(name)]
}

func (r Request) UserAgent() string {
	return r.Header("User-Agent")
}

// TrackingKeys derives every namespace a single request is tracked under.
// All keys are checked together: any blocked key blocks the request, and an
// allowed request is counted against all of them.
func (r Request) TrackingKeys() []string {
	keys := make([]string, 0, 4)

	if r.IP != "" {
		keys = append(keys, "ip_"+r.IP)
	}
	if r.Email != "" {
		keys = append(keys, "email_"+r.Email)
	}
	keys = append(keys, "fp_"+Fingerprint(r))
	if subnet := subnetOf(r.IP); subnet != "" {
		keys = append(keys, "subnet_"+subnet)
	}

	return keys
}

// subnetOf reduces an IPv4 address to its first three octets.
func subnetOf(ip string) string {
	if ip == "" {
		return ""
	}
	parts := strings.Split(ip, ".")
	if len(parts) < 4 {
		return ""
	}
	return strings.Join(parts[:3], ".")
}
