package specpage

import (
	"regexp"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}
	return doc
}

func TestFindLabelShapes(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		spec      LabelSpec
		wantShape LabelShape
		wantValue string
	}{
		{
			name:      "emphasis label",
			html:      `<table><tr><td><b>Year:</b></td><td>2007</td></tr></table>`,
			spec:      LabelSpec{Labels: []string{"Year:"}},
			wantShape: ShapeEmphasis,
			wantValue: "2007",
		},
		{
			name:      "linked label one level deeper",
			html:      `<table><tr><td><b><a href="/2007.php">Year:</a></b></td><td>2007</td></tr></table>`,
			spec:      LabelSpec{Labels: []string{"Year:"}},
			wantShape: ShapeLink,
			wantValue: "2007",
		},
		{
			name:      "bare link label",
			html:      `<table><tr><td><a href="/2007.php">Year:</a></td><td>2007</td></tr></table>`,
			spec:      LabelSpec{Labels: []string{"Year:"}},
			wantShape: ShapeLink,
			wantValue: "2007",
		},
		{
			name:      "strong counts as emphasis",
			html:      `<table><tr><td><strong>Year:</strong></td><td>2007</td></tr></table>`,
			spec:      LabelSpec{Labels: []string{"Year:"}},
			wantShape: ShapeEmphasis,
			wantValue: "2007",
		},
		{
			name:      "pattern spec",
			html:      `<table><tr><td><b>Model year:</b></td><td>2007</td></tr></table>`,
			spec:      LabelSpec{Pattern: regexp.MustCompile(`^Model year`)},
			wantShape: ShapeEmphasis,
			wantValue: "2007",
		},
		{
			name:      "whitespace in label is normalized",
			html:      "<table><tr><td><b>\n  Year:  </b></td><td>\n 2007 \n</td></tr></table>",
			spec:      LabelSpec{Labels: []string{"Year:"}},
			wantShape: ShapeEmphasis,
			wantValue: "2007",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseDoc(t, tt.html)

			label, ok := FindLabel(doc, tt.spec)
			if !ok {
				t.Fatal("FindLabel() found nothing")
			}
			if label.Shape != tt.wantShape {
				t.Errorf("FindLabel() shape = %v, want %v", label.Shape, tt.wantShape)
			}

			value, ok := label.Value()
			if !ok {
				t.Fatal("Value() found nothing")
			}
			if value != tt.wantValue {
				t.Errorf("Value() = %q, want %q", value, tt.wantValue)
			}
		})
	}
}

// Both caption shapes must resolve to the identical value string.
func TestFindLabelShapeEquivalence(t *testing.T) {
	emphasis := parseDoc(t, `<table><tr><td><b>Year:</b></td><td>2007</td></tr></table>`)
	linked := parseDoc(t, `<table><tr><td><b><a href="/y.php">Year:</a></b></td><td>2007</td></tr></table>`)
	spec := LabelSpec{Labels: []string{"Year:"}}

	emphasisValue, ok := LocateValue(emphasis, spec)
	if !ok {
		t.Fatal("emphasis document: value not located")
	}
	linkedValue, ok := LocateValue(linked, spec)
	if !ok {
		t.Fatal("linked document: value not located")
	}
	if emphasisValue != linkedValue {
		t.Errorf("shapes disagree: emphasis %q, linked %q", emphasisValue, linkedValue)
	}
}

func TestFindLabelAliasPriority(t *testing.T) {
	// Both aliases exist; the first one listed must win.
	doc := parseDoc(t, `<table>
		<tr><td><b>Year</b></td><td>1999</td></tr>
		<tr><td><b>Year:</b></td><td>2007</td></tr>
	</table>`)

	spec := LabelSpec{Labels: []string{"Year:", "Year"}}
	value, ok := LocateValue(doc, spec)
	if !ok {
		t.Fatal("value not located")
	}
	if value != "2007" {
		t.Errorf("LocateValue() = %q, want %q (first alias must win)", value, "2007")
	}
}

func TestFindLabelAbsent(t *testing.T) {
	doc := parseDoc(t, `<table><tr><td><b>Torque:</b></td><td>112 Nm</td></tr></table>`)

	if _, ok := FindLabel(doc, LabelSpec{Labels: []string{"Year:"}}); ok {
		t.Error("FindLabel() matched a label that is not in the document")
	}
	if _, ok := LocateValue(doc, LabelSpec{Labels: []string{"Year:"}}); ok {
		t.Error("LocateValue() returned a value for an absent label")
	}
}

func TestLabelValueMissingCell(t *testing.T) {
	// Label present but no value cell follows it.
	doc := parseDoc(t, `<table><tr><td><b>Year:</b></td></tr></table>`)

	label, ok := FindLabel(doc, LabelSpec{Labels: []string{"Year:"}})
	if !ok {
		t.Fatal("FindLabel() found nothing")
	}
	if _, ok := label.Value(); ok {
		t.Error("Value() returned a value with no sibling cell present")
	}
}
