package content

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// AuthorKind tells which shape an Author was written in.
type AuthorKind int

const (
	// AuthorName is a bare display name.
	AuthorName AuthorKind = iota
	// AuthorProfile carries an avatar and bio alongside the name.
	AuthorProfile
)

// Author is a post byline. Content files may give either a plain string or a
// mapping with name, avatar, and bio; both decode into this one type.
type Author struct {
	Kind      AuthorKind
	Name      string
	AvatarURL string
	Bio       string
}

// NameAuthor builds a plain-name author.
func NameAuthor(name string) Author {
	return Author{Kind: AuthorName, Name: strings.TrimSpace(name)}
}

// DisplayName returns the byline text.
func (a Author) DisplayName() string {
	return a.Name
}

// WithDefaults fills a missing avatar and bio. Plain-name authors render with
// the site logo and the post read time underneath.
func (a Author) WithDefaults(avatarURL, bio string) Author {
	if strings.TrimSpace(a.AvatarURL) == "" {
		a.AvatarURL = avatarURL
	}
	if strings.TrimSpace(a.Bio) == "" {
		a.Bio = bio
	}
	return a
}

type authorProfile struct {
	Name   string `yaml:"name"`
	Avatar string `yaml:"avatar"`
	Bio    string `yaml:"bio"`
}

// UnmarshalYAML accepts a scalar name or a profile mapping.
func (a *Author) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*a = NameAuthor(node.Value)
	case yaml.MappingNode:
		var profile authorProfile
		if err := node.Decode(&profile); err != nil {
			return fmt.Errorf("decode author profile: %w", err)
		}
		*a = Author{
			Kind:      AuthorProfile,
			Name:      strings.TrimSpace(profile.Name),
			AvatarURL: strings.TrimSpace(profile.Avatar),
			Bio:       strings.TrimSpace(profile.Bio),
		}
	default:
		return fmt.Errorf("author at line %d must be a name or a mapping", node.Line)
	}
	if a.Name == "" {
		return fmt.Errorf("author at line %d has no name", node.Line)
	}
	return nil
}
