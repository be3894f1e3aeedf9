package templates

import (
	"fmt"
	"html/template"
	"time"

	"github.com/a-h/templ"

	"github.com/aichenitrkl/chapterweb/internal/content"
	"github.com/aichenitrkl/chapterweb/internal/hero"
	"github.com/aichenitrkl/chapterweb/internal/listing"
)

// ImageResolver maps a content image source to the URL pages reference.
type ImageResolver func(src string, widthPX int) string

func (r ImageResolver) resolve(src string, widthPX int) string {
	if r == nil {
		return src
	}
	return r(src, widthPX)
}

// Card image widths requested from the image host.
const (
	cardWidth    = 640
	heroWidth    = 1280
	avatarWidth  = 160
	spriteWidth  = 240
	portraitSize = 400
)

const dateLayout = "2 January 2006"

// Option is a select option.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Select is a labelled select field.
type Select struct {
	Name    string
	Label   string
	Options []Option
}

// EventCard is an event as rendered in listings.
type EventCard struct {
	Copy
	ID               int
	Title            string
	Description      string
	Story            string
	Impact           string
	DateISO          string
	DateLabel        string
	Time             string
	Location         string
	Category         string
	CategoryStyle    string
	AttendeesLabel   string
	Image            string
	Status           content.EventStatus
	StatusLabel      string
	Upcoming         bool
	Highlights       []string
	RegistrationLink string
	Testimonial      *content.Testimonial
}

// NewEventCard builds the card for event.
func NewEventCard(loc Localizer, catalog *content.Catalog, event content.Event, now time.Time, images ImageResolver) EventCard {
	return EventCard{
		Copy:             Copy{Loc: loc},
		ID:               event.ID,
		Title:            event.Title,
		Description:      event.Description,
		Story:            event.Story,
		Impact:           event.Impact,
		DateISO:          event.Date.Format(time.DateOnly),
		DateLabel:        event.Date.Format(dateLayout),
		Time:             event.Time,
		Location:         event.Location,
		Category:         event.Category,
		CategoryStyle:    catalog.CategoryStyle(event.Category),
		AttendeesLabel:   T(loc, "events.card_attendees", event.Attendees),
		Image:            images.resolve(event.Image, cardWidth),
		Status:           event.Status,
		StatusLabel:      T(loc, "events.status_"+string(event.Status)),
		Upcoming:         event.IsUpcoming(now),
		Highlights:       event.Highlights,
		RegistrationLink: event.RegistrationLink,
		Testimonial:      event.Testimonial,
	}
}

// PostCard is a blog post as rendered in listings.
type PostCard struct {
	Copy
	Title      string
	Excerpt    string
	Href       string
	Image      string
	Size       content.CardSize
	AuthorName string
	ReadLabel  string
}

// NewPostCard builds the card for post.
func NewPostCard(loc Localizer, post content.BlogPost, images ImageResolver) PostCard {
	return PostCard{
		Copy:       Copy{Loc: loc},
		Title:      post.Title,
		Excerpt:    post.Excerpt,
		Href:       post.Path(),
		Image:      images.resolve(post.Image, cardWidth),
		Size:       post.Size,
		AuthorName: post.Author.DisplayName(),
		ReadLabel:  T(loc, "blogs.read_minutes", post.ReadMinutes),
	}
}

// SpriteView is a positioned hero sprite.
type SpriteView struct {
	Source string
	Emoji  string
	Style  template.CSS
}

// SpriteField is the hero decoration.
type SpriteField struct {
	Images []SpriteView
	Emojis []SpriteView
}

// NewSpriteField converts placed sprites into positioned views.
func NewSpriteField(field hero.Field, images ImageResolver) SpriteField {
	var out SpriteField
	for _, sprite := range field.Images {
		out.Images = append(out.Images, SpriteView{Source: images.resolve(sprite.Source, spriteWidth), Style: spriteStyle(sprite.Position)})
	}
	for _, sprite := range field.Emojis {
		out.Emojis = append(out.Emojis, SpriteView{Emoji: sprite.Emoji, Style: spriteStyle(sprite.Position)})
	}
	return out
}

// spriteStyle is built from numbers only, so it is safe CSS.
func spriteStyle(pos hero.Position) template.CSS {
	return template.CSS(fmt.Sprintf(
		"left: %.2f%%; top: %.2f%%; transform: translate(-50%%, -50%%) rotate(%.1fdeg) scale(%.2f);",
		pos.Left, pos.Top, pos.Rotate, pos.Scale,
	))
}

// HomeView is the landing page.
type HomeView struct {
	Copy
	Hero    content.Hero
	Sprites SpriteField
	Events  []EventCard
	Posts   []PostCard
}

// Home renders the landing page body.
func Home(v HomeView) templ.Component { return view("home", v) }

// AboutView is the about page.
type AboutView struct {
	Copy
	About content.About
}

// About renders the about page body.
func About(v AboutView) templ.Component { return view("about", v) }

// EventsView is the events listing.
type EventsView struct {
	Copy
	Query             string
	Filtered          bool
	YearSelect        Select
	CategorySelect    Select
	SortSelect        Select
	Stats             listing.EventStats
	YearStatLabel     string
	CategoryStatLabel string
	Events            []EventCard
}

// Events renders the events listing body.
func Events(v EventsView) templ.Component { return view("events", v) }

// BlogsView is the blog listing.
type BlogsView struct {
	Copy
	Query        string
	Filtered     bool
	AuthorSelect Select
	SortSelect   Select
	Posts        []PostCard
}

// Blogs renders the blog listing body.
func Blogs(v BlogsView) templ.Component { return view("blogs", v) }

// ArticleView is one blog post.
type ArticleView struct {
	Copy
	Title     string
	Href      string
	Image     string
	Author    content.Author
	ReadLabel string
	Body      template.HTML
}

// NewArticleView builds the article page for post. Plain-name authors get the
// site logo and the read time as their bio.
func NewArticleView(loc Localizer, post content.BlogPost, logo string, images ImageResolver) ArticleView {
	readLabel := T(loc, "blogs.read_minutes", post.ReadMinutes)
	author := post.Author.WithDefaults(logo, readLabel)
	author.AvatarURL = images.resolve(author.AvatarURL, avatarWidth)
	return ArticleView{
		Copy:      Copy{Loc: loc},
		Title:     post.Title,
		Href:      post.Path(),
		Image:     images.resolve(post.Image, heroWidth),
		Author:    author,
		ReadLabel: readLabel,
		Body:      post.Body,
	}
}

// Article renders the article body.
func Article(v ArticleView) templ.Component { return view("article", v) }

// MemberCard is a team member tile.
type MemberCard struct {
	Copy
	ID       string
	Name     string
	Position string
	Image    string
	Bio      string
	LinkedIn string
	Email    string
	Href     string
	Expanded bool
}

// NewMemberCard builds the tile for member. href toggles the member open or
// closed.
func NewMemberCard(loc Localizer, member content.TeamMember, href string, expanded bool, images ImageResolver) MemberCard {
	return MemberCard{
		Copy:     Copy{Loc: loc},
		ID:       member.ID,
		Name:     member.Name,
		Position: member.Position,
		Image:    images.resolve(member.Image, portraitSize),
		Bio:      member.Bio,
		LinkedIn: member.LinkedIn,
		Email:    member.Email,
		Href:     href,
		Expanded: expanded,
	}
}

// TeamView is the team page.
type TeamView struct {
	Copy
	Mentors    []MemberCard
	Executives []MemberCard
}

// Team renders the team page body.
func Team(v TeamView) templ.Component { return view("team", v) }

// FormField is one contact form input.
type FormField struct {
	Name      string
	Label     string
	Type      string
	Value     string
	Error     string
	Multiline bool
	Hidden    bool
}

// ContactView is the contact page.
type ContactView struct {
	Copy
	Fields    []FormField
	FormError string
	Receipt   string
	MaxLength int
	Remaining int
	MailtoURL string
	Info      content.Contact
}

// Contact renders the contact page body.
func Contact(v ContactView) templ.Component { return view("contact", v) }
