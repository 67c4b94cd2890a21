package suggest

import (
	"regexp"
	"strings"
)

// Segment is a run of a suggestion name, either matching the query or not
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits name into segments, flagging every case-insensitive
// occurrence of query. The query is literal text, not a pattern.
func Highlight(name, query string) []Segment {
	query = strings.TrimSpace(query)
	if name == "" {
		return nil
	}
	if query == "" {
		return []Segment{{Text: name}}
	}

	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return []Segment{{Text: name}}
	}

	var segs []Segment
	last := 0
	for _, loc := range re.FindAllStringIndex(name, -1) {
		if loc[0] > last {
			segs = append(segs, Segment{Text: name[last:loc[0]]})
		}
		segs = append(segs, Segment{Text: name[loc[0]:loc[1]], Match: true})
		last = loc[1]
	}
	if last < len(name) {
		segs = append(segs, Segment{Text: name[last:]})
	}
	return segs
}

// Mark renders segments with matches wrapped in open and close
func Mark(segs []Segment, open, close string) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Match {
			b.WriteString(open)
			b.WriteString(s.Text)
			b.WriteString(close)
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}
