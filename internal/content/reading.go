package content

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// WordsPerMinute is the reading speed used for read-time estimates.
const WordsPerMinute = 225

// ReadingMinutes estimates reading time for an HTML fragment: the visible
// word count divided by WordsPerMinute, rounded up, never below one.
func ReadingMinutes(fragment string) int {
	words := CountWords(fragment)
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	return max(1, minutes)
}

// CountWords counts whitespace-separated words in the text nodes of an HTML
// fragment. Script and style contents are skipped.
func CountWords(fragment string) int {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	words := 0
	skip := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF at the end of the fragment; malformed input stops early.
			return words
		case html.StartTagToken:
			if name, _ := tokenizer.TagName(); isHiddenText(name) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := tokenizer.TagName(); isHiddenText(name) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				words += len(strings.Fields(string(tokenizer.Text())))
			}
		}
	}
}

func isHiddenText(tag []byte) bool {
	name := string(tag)
	return name == "script" || name == "style"
}

var leadingMinutes = regexp.MustCompile(`^\s*(\d+)`)

// parseReadMinutes reads the leading number of a label like "8 min read".
func parseReadMinutes(label string) (int, bool) {
	match := leadingMinutes.FindStringSubmatch(label)
	if match == nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(match[1])
	if err != nil || minutes <= 0 {
		return 0, false
	}
	return minutes, true
}
