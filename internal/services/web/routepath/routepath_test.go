package routepath

import "testing"

func TestIsActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current string
		href    string
		want    bool
	}{
		{current: "/", href: "/", want: true},
		{current: "/events", href: "/", want: false},
		{current: "/events", href: "/events", want: true},
		{current: "/blogs/green-hydrogen", href: "/blogs", want: true},
		{current: "/blogsmith", href: "/blogs", want: false},
		{current: "/team", href: "", want: false},
	}
	for _, tc := range tests {
		if got := IsActive(tc.current, tc.href); got != tc.want {
			t.Fatalf("IsActive(%q, %q) = %v, want %v", tc.current, tc.href, got, tc.want)
		}
	}
}

func TestBlogPostEscapesSlug(t *testing.T) {
	t.Parallel()

	if got := BlogPost("chem e quiz"); got != "/blogs/chem%20e%20quiz" {
		t.Fatalf("BlogPost() = %q", got)
	}
}
