// Package imagehost decides which image sources pages may reference and
// rewrites Cloudinary sources with delivery transforms.
package imagehost

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// Placeholder replaces sources outside the allow-list.
	Placeholder = "/static/img/placeholder.svg"

	cloudinaryHost   = "res.cloudinary.com"
	cloudinaryUpload = "/image/upload/"
)

// Policy resolves image sources for rendering.
type Policy struct {
	// Hosts lists remote hosts allowed over https in addition to Cloudinary.
	Hosts []string
}

// Allowed reports whether src is a local absolute path or an https URL on an
// allowed host.
func (p Policy) Allowed(src string) bool {
	src = strings.TrimSpace(src)
	if src == "" {
		return false
	}
	if strings.HasPrefix(src, "/") && !strings.HasPrefix(src, "//") {
		return true
	}
	parsed, err := url.Parse(src)
	if err != nil || parsed.Scheme != "https" {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	if host == cloudinaryHost {
		return true
	}
	for _, allowed := range p.Hosts {
		if host == strings.ToLower(strings.TrimSpace(allowed)) {
			return true
		}
	}
	return false
}

// Resolve returns src when allowed and the placeholder otherwise.
func (p Policy) Resolve(src string) string {
	if !p.Allowed(src) {
		return Placeholder
	}
	return strings.TrimSpace(src)
}

// Sized resolves src and, for Cloudinary uploads, asks the CDN for an
// automatic format and quality limited to widthPX. Other sources pass through.
func (p Policy) Sized(src string, widthPX int) string {
	resolved := p.Resolve(src)
	if widthPX <= 0 || !strings.HasPrefix(resolved, "https://"+cloudinaryHost+"/") {
		return resolved
	}
	idx := strings.Index(resolved, cloudinaryUpload)
	if idx < 0 {
		return resolved
	}
	head := resolved[:idx+len(cloudinaryUpload)]
	tail := resolved[idx+len(cloudinaryUpload):]
	if strings.HasPrefix(tail, "f_auto") {
		return resolved
	}
	return head + "f_auto,q_auto,dpr_auto,c_limit,w_" + strconv.Itoa(widthPX) + "/" + tail
}
