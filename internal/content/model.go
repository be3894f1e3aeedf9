// Package content loads the chapter's immutable site records: events, blog
// posts, team members, and page copy.
//
// Records come from an embedded data directory (or a directory on disk during
// development) and are never mutated after loading. A Catalog is a complete
// snapshot; callers that need live reloads go through Store.
package content

import (
	"html/template"
	"time"
)

// EventStatus is the lifecycle label shown on an event card.
type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusCompleted EventStatus = "completed"
)

// Testimonial is a quote attached to an event.
type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
}

// Event is one chapter event.
type Event struct {
	ID               int
	Title            string
	Description      string
	Story            string
	Impact           string
	Date             time.Time
	Time             string
	Location         string
	Category         string
	AcademicYear     string
	Attendees        int
	Image            string
	Status           EventStatus
	Highlights       []string
	RegistrationLink string
	Testimonial      *Testimonial
}

// IsUpcoming reports whether the event date is at or after now.
func (e Event) IsUpcoming(now time.Time) bool {
	return !e.Date.Before(now)
}

// Category is a filter option with its badge style.
type Category struct {
	Name  string `yaml:"name"`
	Style string `yaml:"style"`
}

// CardSize is the blog grid tile size.
type CardSize string

const (
	CardLarge  CardSize = "large"
	CardMedium CardSize = "medium"
	CardSmall  CardSize = "small"
)

// BlogPost is one article.
type BlogPost struct {
	ID       string
	Title    string
	Author   Author
	ReadTime string
	// ReadMinutes is parsed from ReadTime, or computed from the body when
	// ReadTime carries no number.
	ReadMinutes int
	Image       string
	Size        CardSize
	Link        string
	Excerpt     string
	Body        template.HTML
}

// Slug is the canonical route segment for the post.
func (p BlogPost) Slug() string {
	return LastSegment(p.Link)
}

// Path is the canonical route for the post.
func (p BlogPost) Path() string {
	return "/blogs/" + p.Slug()
}

// TeamMember is one member of the chapter team.
type TeamMember struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
	Image    string `yaml:"image"`
	Bio      string `yaml:"bio"`
	LinkedIn string `yaml:"linkedin"`
	Email    string `yaml:"email"`
	IsMentor bool   `yaml:"mentor"`
}

// Link is a labelled href.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Anchor is an in-page navigation target.
type Anchor struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Titled is a short title and description pair.
type Titled struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Achievement is a recognition listed on the about page.
type Achievement struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Year        string `yaml:"year"`
}

// FAQ is a question and answer pair.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Hero is the landing section copy and sprite pools.
type Hero struct {
	Title         string   `yaml:"title"`
	Subtitle      string   `yaml:"subtitle"`
	SpriteSources []string `yaml:"spriteSources"`
	EmojiPool     []string `yaml:"emojiPool"`
	SpriteCount   int      `yaml:"spriteCount"`
	EmojiCount    int      `yaml:"emojiCount"`
}

// Overlay is the transition overlay copy.
type Overlay struct {
	Lines []string `yaml:"lines"`
}

// About is the about page copy.
type About struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	Banner  struct {
		Title    string `yaml:"title"`
		Subtitle string `yaml:"subtitle"`
	} `yaml:"banner"`
	QuickNav     []Anchor      `yaml:"quickNav"`
	Paragraphs   []string      `yaml:"paragraphs"`
	Highlights   []string      `yaml:"highlights"`
	History      []string      `yaml:"history"`
	Mission      string        `yaml:"mission"`
	Pillars      []Titled      `yaml:"pillars"`
	Initiatives  []Titled      `yaml:"initiatives"`
	Achievements []Achievement `yaml:"achievements"`
	FAQ          []FAQ         `yaml:"faq"`
}

// Contact is the contact page copy.
type Contact struct {
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address"`
	Socials []Link `yaml:"socials"`
	FAQ     []FAQ  `yaml:"faq"`
}

// Site is the site-wide copy.
type Site struct {
	Name        string  `yaml:"name"`
	ShortName   string  `yaml:"shortName"`
	Tagline     string  `yaml:"tagline"`
	Logo        string  `yaml:"logo"`
	PresidentID string  `yaml:"presidentID"`
	Navigation  []Link  `yaml:"navigation"`
	Hero        Hero    `yaml:"hero"`
	Overlay     Overlay `yaml:"overlay"`
	About       About   `yaml:"about"`
	Contact     Contact `yaml:"contact"`
}

// Catalog is one complete content snapshot.
type Catalog struct {
	Site          Site
	Events        []Event
	AcademicYears []string
	Categories    []Category
	Posts         []BlogPost
	Team          []TeamMember
}

// CategoryStyle returns the badge style for a category, or "" when unknown.
func (c *Catalog) CategoryStyle(name string) string {
	for _, category := range c.Categories {
		if category.Name == name {
			return category.Style
		}
	}
	return ""
}

// CategoryNames lists the category filter options in content order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for _, category := range c.Categories {
		names = append(names, category.Name)
	}
	return names
}

// Authors lists distinct post author names in content order.
func (c *Catalog) Authors() []string {
	seen := make(map[string]bool, len(c.Posts))
	var names []string
	for _, post := range c.Posts {
		name := post.Author.DisplayName()
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// Mentors returns the faculty members.
func (c *Catalog) Mentors() []TeamMember {
	var out []TeamMember
	for _, member := range c.Team {
		if member.IsMentor {
			out = append(out, member)
		}
	}
	return out
}

// Executives returns the student members.
func (c *Catalog) Executives() []TeamMember {
	var out []TeamMember
	for _, member := range c.Team {
		if !member.IsMentor {
			out = append(out, member)
		}
	}
	return out
}

// Member finds a team member by id.
func (c *Catalog) Member(id string) (TeamMember, bool) {
	for _, member := range c.Team {
		if member.ID == id {
			return member, true
		}
	}
	return TeamMember{}, false
}
