package specpage

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Ziink4/Jerk/models"
)

// Field captions as they appear on the spec pages. Aliases cover page
// revisions: older pages drop the trailing colon, and the year caption
// has drifted across four spellings.
var (
	modelSpec        = LabelSpec{Labels: []string{"Model:", "Model"}}
	yearSpec         = LabelSpec{Labels: []string{"Year:", "Year", "Model year:", "Production period:"}}
	powerSpec        = LabelSpec{Labels: []string{"Power:", "Power"}}
	torqueSpec       = LabelSpec{Labels: []string{"Torque:", "Torque"}}
	displacementSpec = LabelSpec{Labels: []string{"Displacement:", "Displacement"}}
	wetWeightSpec    = LabelSpec{Labels: []string{"Weight incl. oil, gas, etc:", "Wet weight:"}}
	dryWeightSpec    = LabelSpec{Labels: []string{"Dry weight:"}}
	ratioSpec        = LabelSpec{Labels: []string{"Power/weight ratio:"}}
)

// Extractor turns one parsed page into one record. Field failures are
// independent: a caption that is missing or a value that does not parse
// leaves that field nil and the rest of the record intact.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract reads every known field from the document. The returned record
// always carries the originating URL, even when no field was found.
func (e *Extractor) Extract(url string, doc *goquery.Document) models.Record {
	logger := e.logger.With("url", url)
	record := models.Record{URL: url}

	if text, ok := LocateValue(doc, modelSpec); ok {
		record.Model = models.String(text)
	}

	if text, ok := LocateValue(doc, yearSpec); ok {
		if year, err := strconv.Atoi(strings.TrimSpace(text)); err != nil {
			logger.Warn("Failed to convert year", "text", text, "error", err)
		} else {
			record.Year = models.Int(year)
		}
	}

	if text, ok := LocateValue(doc, powerSpec); ok {
		record.PowerHP, record.PowerKW = ParsePower(logger, text)
	}

	if text, ok := LocateValue(doc, torqueSpec); ok {
		record.Torque = models.String(text)
	}

	if text, ok := LocateValue(doc, displacementSpec); ok {
		record.Displacement = models.String(text)
	}

	if text, ok := LocateValue(doc, wetWeightSpec); ok {
		record.WetWeightKG, record.WetWeightLB = ParseWeight(logger, "wet_weight", text)
	}

	if text, ok := LocateValue(doc, dryWeightSpec); ok {
		record.DryWeightKG, record.DryWeightLB = ParseWeight(logger, "dry_weight", text)
	}

	var explicitRatio *float64
	if text, ok := LocateValue(doc, ratioSpec); ok {
		explicitRatio = ParseRatio(logger, text)
	}
	record.PowerToWeight = ResolveRatio(explicitRatio, record.PowerHP, record.WetWeightKG, record.DryWeightKG)

	return record
}
