package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"
)

const (
	siteFile   = "site.yaml"
	eventsFile = "events.yaml"
	teamFile   = "team.yaml"
	blogGlob   = "blog/*.md"
	dateLayout = "2006-01-02"
)

//go:embed data
var embedded embed.FS

// Embedded returns the content shipped inside the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("content: embedded data directory: %v", err))
	}
	return sub
}

// ErrInvalid marks content that parsed but breaks a record rule.
var ErrInvalid = errors.New("invalid content")

var (
	yamlFrontMatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)
	markdown        = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
)

// Load reads a complete Catalog from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	if fsys == nil {
		return nil, errors.New("content filesystem is required")
	}
	catalog := &Catalog{}
	if err := decodeYAML(fsys, siteFile, &catalog.Site); err != nil {
		return nil, err
	}
	if err := loadEvents(fsys, catalog); err != nil {
		return nil, err
	}
	if err := loadTeam(fsys, catalog); err != nil {
		return nil, err
	}
	if err := loadPosts(fsys, catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

func decodeYAML(fsys fs.FS, name string, target any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

type eventRecord struct {
	ID               int          `yaml:"id"`
	Title            string       `yaml:"title"`
	Description      string       `yaml:"description"`
	Story            string       `yaml:"story"`
	Impact           string       `yaml:"impact"`
	Date             string       `yaml:"date"`
	Time             string       `yaml:"time"`
	Location         string       `yaml:"location"`
	Category         string       `yaml:"category"`
	AcademicYear     string       `yaml:"academicYear"`
	Attendees        int          `yaml:"attendees"`
	Image            string       `yaml:"image"`
	Status           EventStatus  `yaml:"status"`
	Highlights       []string     `yaml:"highlights"`
	RegistrationLink string       `yaml:"registrationLink"`
	Testimonial      *Testimonial `yaml:"testimonial"`
}

type eventsDocument struct {
	AcademicYears []string      `yaml:"academicYears"`
	Categories    []Category    `yaml:"categories"`
	Events        []eventRecord `yaml:"events"`
}

func loadEvents(fsys fs.FS, catalog *Catalog) error {
	var doc eventsDocument
	if err := decodeYAML(fsys, eventsFile, &doc); err != nil {
		return err
	}
	seen := make(map[int]bool, len(doc.Events))
	events := make([]Event, 0, len(doc.Events))
	for _, record := range doc.Events {
		if strings.TrimSpace(record.Title) == "" {
			return fmt.Errorf("%s: event %d: %w: title is required", eventsFile, record.ID, ErrInvalid)
		}
		if seen[record.ID] {
			return fmt.Errorf("%s: event %d: %w: duplicate id", eventsFile, record.ID, ErrInvalid)
		}
		seen[record.ID] = true
		date, err := time.Parse(dateLayout, strings.TrimSpace(record.Date))
		if err != nil {
			return fmt.Errorf("%s: event %d: %w: date %q: %v", eventsFile, record.ID, ErrInvalid, record.Date, err)
		}
		switch record.Status {
		case StatusUpcoming, StatusCompleted:
		default:
			return fmt.Errorf("%s: event %d: %w: status %q", eventsFile, record.ID, ErrInvalid, record.Status)
		}
		events = append(events, Event{
			ID:               record.ID,
			Title:            record.Title,
			Description:      record.Description,
			Story:            record.Story,
			Impact:           record.Impact,
			Date:             date,
			Time:             record.Time,
			Location:         record.Location,
			Category:         record.Category,
			AcademicYear:     record.AcademicYear,
			Attendees:        record.Attendees,
			Image:            record.Image,
			Status:           record.Status,
			Highlights:       record.Highlights,
			RegistrationLink: record.RegistrationLink,
			Testimonial:      record.Testimonial,
		})
	}
	catalog.Events = events
	catalog.AcademicYears = doc.AcademicYears
	catalog.Categories = doc.Categories
	return nil
}

func loadTeam(fsys fs.FS, catalog *Catalog) error {
	var doc struct {
		Members []TeamMember `yaml:"members"`
	}
	if err := decodeYAML(fsys, teamFile, &doc); err != nil {
		return err
	}
	seen := make(map[string]bool, len(doc.Members))
	for _, member := range doc.Members {
		if member.ID == "" || seen[member.ID] {
			return fmt.Errorf("%s: member %q: %w: id must be set and unique", teamFile, member.Name, ErrInvalid)
		}
		seen[member.ID] = true
	}
	catalog.Team = doc.Members
	return nil
}

type postMatter struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Author   Author   `yaml:"author"`
	ReadTime string   `yaml:"readTime"`
	Image    string   `yaml:"image"`
	Size     CardSize `yaml:"size"`
	Link     string   `yaml:"link"`
	Excerpt  string   `yaml:"excerpt"`
}

func loadPosts(fsys fs.FS, catalog *Catalog) error {
	names, err := fs.Glob(fsys, blogGlob)
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}
	slugs := make(map[string]string, len(names))
	posts := make([]BlogPost, 0, len(names))
	for _, name := range names {
		post, err := loadPost(fsys, name)
		if err != nil {
			return err
		}
		if other, ok := slugs[post.Slug()]; ok {
			return fmt.Errorf("%s: %w: link %q already used by %s", name, ErrInvalid, post.Link, other)
		}
		slugs[post.Slug()] = name
		posts = append(posts, post)
	}
	catalog.Posts = posts
	return nil
}

func loadPost(fsys fs.FS, name string) (BlogPost, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return BlogPost{}, fmt.Errorf("read %s: %w", name, err)
	}
	var matter postMatter
	body, err := frontmatter.MustParse(bytes.NewReader(raw), &matter, yamlFrontMatter)
	if err != nil {
		return BlogPost{}, fmt.Errorf("parse %s front matter: %w", name, err)
	}
	if strings.TrimSpace(matter.Title) == "" {
		return BlogPost{}, fmt.Errorf("%s: %w: title is required", name, ErrInvalid)
	}
	if !strings.HasPrefix(matter.Link, "/blogs/") || LastSegment(matter.Link) == "" {
		return BlogPost{}, fmt.Errorf("%s: %w: link %q must be /blogs/{segment}", name, ErrInvalid, matter.Link)
	}
	switch matter.Size {
	case "":
		matter.Size = CardMedium
	case CardLarge, CardMedium, CardSmall:
	default:
		return BlogPost{}, fmt.Errorf("%s: %w: size %q", name, ErrInvalid, matter.Size)
	}
	if matter.ID == "" {
		matter.ID = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}

	var rendered bytes.Buffer
	if err := markdown.Convert(body, &rendered); err != nil {
		return BlogPost{}, fmt.Errorf("render %s: %w", name, err)
	}
	html := rendered.String()

	minutes, ok := parseReadMinutes(matter.ReadTime)
	if !ok {
		minutes = ReadingMinutes(html)
		matter.ReadTime = fmt.Sprintf("%d min read", minutes)
	}

	return BlogPost{
		ID:          matter.ID,
		Title:       strings.TrimSpace(matter.Title),
		Author:      matter.Author,
		ReadTime:    matter.ReadTime,
		ReadMinutes: minutes,
		Image:       matter.Image,
		Size:        matter.Size,
		Link:        matter.Link,
		Excerpt:     strings.TrimSpace(matter.Excerpt),
		// Bodies are authored in this repository and rendered without raw HTML.
		Body: template.HTML(html),
	}, nil
}
