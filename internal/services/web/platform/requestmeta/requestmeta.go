// Package requestmeta normalizes request scheme and origin metadata.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls whether proxy headers decide the request scheme.
// X-Forwarded-Proto is only honoured when TrustForwardedProto is set.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPS reports whether r should be treated as HTTPS under policy.
func IsHTTPS(r *http.Request, policy SchemePolicy) bool {
	return scheme(r, policy) == "https"
}

// SameOrigin reports whether the Origin header, or the Referer when Origin is
// absent, names the host r was sent to. Requests carrying neither are not
// same-origin.
func SameOrigin(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	want := origin{scheme: scheme(r, policy)}
	want.host, want.port = splitHost(r.Host)
	if want.host == "" && r.URL != nil {
		want.host, want.port = splitHost(r.URL.Host)
	}
	if want.host == "" {
		return false
	}
	want = want.withDefaultPort()

	raw := strings.TrimSpace(r.Header.Get("Origin"))
	if raw == "" {
		raw = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if raw == "" {
		return false
	}
	got, ok := parseOrigin(raw)
	if !ok {
		return false
	}
	return got.withDefaultPort() == want
}

type origin struct {
	scheme string
	host   string
	port   string
}

func (o origin) withDefaultPort() origin {
	if o.port != "" {
		return o
	}
	switch o.scheme {
	case "https":
		o.port = "443"
	case "http":
		o.port = "80"
	}
	return o
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}, false
	}
	o := origin{
		scheme: strings.ToLower(parsed.Scheme),
		host:   strings.ToLower(parsed.Hostname()),
		port:   parsed.Port(),
	}
	if o.scheme == "" || o.host == "" {
		return origin{}, false
	}
	return o, true
}

func scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		switch forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded {
		case "http", "https":
			return forwarded
		}
	}
	if r.URL != nil {
		switch s := strings.ToLower(r.URL.Scheme); s {
		case "http", "https":
			return s
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func splitHost(raw string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(raw))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}
