// Package specpage extracts structured specification records from a
// single parsed spec page. Pages render each field as a caption cell
// followed by a value cell, but the caption markup comes in two shapes:
// plain bold text, or bold text wrapped in a hyperlink. Location and
// value extraction are split so the shape branch stays explicit.
package specpage

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LabelShape tags which of the two observed caption renderings matched.
type LabelShape int

const (
	// ShapeEmphasis is a caption rendered as bold text inside its cell.
	ShapeEmphasis LabelShape = iota
	// ShapeLink is a caption whose text is additionally wrapped in a
	// hyperlink, which pushes the caption one level deeper in the row.
	ShapeLink
)

// LabelSpec names a field's caption: either a list of literal strings
// tried in priority order, or a single pattern.
type LabelSpec struct {
	Labels  []string
	Pattern *regexp.Regexp
}

// Label is a located caption element plus the shape it was found in.
type Label struct {
	sel   *goquery.Selection
	Shape LabelShape
}

// FindLabel searches the document for an element matching spec. Literal
// labels are tried in order; the first alias with a match wins. Only
// emphasis elements and hyperlinks are considered, since those are the
// two caption renderings the pages use.
func FindLabel(doc *goquery.Document, spec LabelSpec) (Label, bool) {
	if spec.Pattern != nil {
		return findLabel(doc, spec.Pattern.MatchString)
	}
	for _, alias := range spec.Labels {
		want := alias
		if label, ok := findLabel(doc, func(text string) bool { return text == want }); ok {
			return label, true
		}
	}
	return Label{}, false
}

func findLabel(doc *goquery.Document, match func(string) bool) (Label, bool) {
	var found Label
	var ok bool

	doc.Find("b, strong").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if !match(normalizeText(s.Text())) {
			return true
		}
		// A bold caption may wrap its text in an anchor; that shifts
		// the row layout, so classify by the inner element.
		if link := s.Find("a"); link.Length() > 0 && match(normalizeText(link.First().Text())) {
			found = Label{sel: link.First(), Shape: ShapeLink}
		} else {
			found = Label{sel: s, Shape: ShapeEmphasis}
		}
		ok = true
		return false
	})
	if ok {
		return found, true
	}

	doc.Find("a").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if !match(normalizeText(s.Text())) {
			return true
		}
		found = Label{sel: s, Shape: ShapeLink}
		ok = true
		return false
	})
	return found, ok
}

// Value returns the text of the value cell associated with the label.
// The traversal rule is a pure function of the shape tag: an emphasis
// caption's value is the next sibling cell, a linked caption's value is
// the second cell of the enclosing row.
func (l Label) Value() (string, bool) {
	switch l.Shape {
	case ShapeEmphasis:
		cell := l.sel.Closest("td")
		if cell.Length() == 0 {
			return "", false
		}
		value := cell.Next()
		if value.Length() == 0 {
			return "", false
		}
		return normalizeText(value.Text()), true

	case ShapeLink:
		row := l.sel.Closest("tr")
		if row.Length() == 0 {
			return "", false
		}
		value := row.Find("td").Eq(1)
		if value.Length() == 0 {
			return "", false
		}
		return normalizeText(value.Text()), true
	}
	return "", false
}

// LocateValue finds a field's caption and returns its value text.
func LocateValue(doc *goquery.Document, spec LabelSpec) (string, bool) {
	label, ok := FindLabel(doc, spec)
	if !ok {
		return "", false
	}
	return label.Value()
}

// normalizeText collapses runs of whitespace so cell text compares and
// parses consistently regardless of source formatting.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
