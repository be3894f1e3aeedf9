// Package hero scatters decorative sprites around the landing headline.
package hero

import "math/rand"

const (
	// MinRotate and MaxRotate bound sprite rotation in degrees.
	MinRotate = -14.0
	MaxRotate = 14.0
	// MinScale and MaxScale bound sprite scale.
	MinScale = 1.0
	MaxScale = 1.25
	// DefaultMaxTries is how many positions are tried per sprite.
	DefaultMaxTries = 50
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Expand grows r by pad on every side.
func (r Rect) Expand(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + pad*2, H: r.H + pad*2}
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Position is one placed sprite.
type Position struct {
	Left   float64
	Top    float64
	Rotate float64
	Scale  float64
}

// Layout describes where sprites may go.
type Layout struct {
	Container Rect
	// NoFly rectangles are kept clear of sprite anchors after padding.
	NoFly    []Rect
	Padding  float64
	MaxTries int
}

// Place picks up to count positions inside the container that avoid every
// padded no-fly zone. A sprite that finds no free spot within MaxTries is
// dropped, so fewer than count positions may come back.
func Place(rng *rand.Rand, count int, layout Layout) []Position {
	if rng == nil || count <= 0 {
		return nil
	}
	maxTries := layout.MaxTries
	if maxTries <= 0 {
		maxTries = DefaultMaxTries
	}
	avoid := make([]Rect, len(layout.NoFly))
	for i, zone := range layout.NoFly {
		avoid[i] = zone.Expand(layout.Padding)
	}

	c := layout.Container
	out := make([]Position, 0, count)
	for range count {
		for range maxTries {
			left := between(rng, c.X, c.X+c.W)
			top := between(rng, c.Y, c.Y+c.H)
			if hitsAny(avoid, left, top) {
				continue
			}
			out = append(out, Position{
				Left:   left,
				Top:    top,
				Rotate: between(rng, MinRotate, MaxRotate),
				Scale:  between(rng, MinScale, MaxScale),
			})
			break
		}
	}
	return out
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func hitsAny(zones []Rect, x, y float64) bool {
	for _, zone := range zones {
		if zone.Contains(x, y) {
			return true
		}
	}
	return false
}

// Sprite is a placed image or emoji.
type Sprite struct {
	Position
	Source string
	Emoji  string
}

// Field is the full sprite decoration for the landing section.
type Field struct {
	Images []Sprite
	Emojis []Sprite
}

// Landing layout in percent of the hero section.
var (
	landingContainer = Rect{X: 0, Y: 0, W: 100, H: 100}
	titleZone        = Rect{X: 18, Y: 28, W: 64, H: 20}
	subtitleZone     = Rect{X: 14, Y: 52, W: 72, H: 12}
)

const (
	titlePadding    = 4
	subtitlePadding = 3
)

// LandingField places image sprites around the title and emoji sprites
// around both title and subtitle. Image sources repeat in order when there are
// fewer sources than sprites; emojis are drawn from the pool at random.
func LandingField(rng *rand.Rand, sources []string, imageCount int, emojis []string, emojiCount int) Field {
	var field Field
	if len(sources) > 0 {
		positions := Place(rng, imageCount, Layout{
			Container: landingContainer,
			NoFly:     []Rect{titleZone},
			Padding:   titlePadding,
		})
		for i, pos := range positions {
			field.Images = append(field.Images, Sprite{Position: pos, Source: sources[i%len(sources)]})
		}
	}
	if len(emojis) > 0 {
		positions := Place(rng, emojiCount, Layout{
			Container: landingContainer,
			NoFly:     []Rect{titleZone, subtitleZone},
			Padding:   subtitlePadding,
		})
		for _, pos := range positions {
			field.Emojis = append(field.Emojis, Sprite{Position: pos, Emoji: emojis[rng.Intn(len(emojis))]})
		}
	}
	return field
}
