package specpage

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Value cells mix units in fixed phrasings: "100.5 HP (74.9 kW)",
// "199.0 kg (438.7 pounds)", "0.5 HP/kg". Numerals may carry comma
// thousands separators.
var (
	powerPattern  = regexp.MustCompile(`([\d.,]+)\s*HP\s*\(([\d.,]+)\s*kW`)
	weightPattern = regexp.MustCompile(`([\d.,]+)\s*kg\s*\(([\d.,]+)\s*pounds`)
	ratioPattern  = regexp.MustCompile(`([\d.,]+)\s*HP/kg`)
)

// ParsePower extracts the HP and kW figures from a power cell. Both
// values are returned together or not at all; a non-matching cell is
// logged and yields nil for both.
func ParsePower(logger *slog.Logger, text string) (*float64, *float64) {
	return parsePair(logger, powerPattern, "power", text)
}

// ParseWeight extracts the kg and pound figures from a weight cell. The
// same rule serves wet and dry weight; the field name only labels the
// diagnostic.
func ParseWeight(logger *slog.Logger, field, text string) (*float64, *float64) {
	return parsePair(logger, weightPattern, field, text)
}

// ParseRatio extracts an explicit power-to-weight figure in HP/kg.
func ParseRatio(logger *slog.Logger, text string) *float64 {
	m := ratioPattern.FindStringSubmatch(text)
	if m == nil {
		logger.Warn("Failed to parse value", "field", "power_weight_ratio", "text", text)
		return nil
	}
	value, err := parseNumber(m[1])
	if err != nil {
		logger.Warn("Failed to convert number", "field", "power_weight_ratio", "capture", m[1], "error", err)
		return nil
	}
	return &value
}

func parsePair(logger *slog.Logger, pattern *regexp.Regexp, field, text string) (*float64, *float64) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		logger.Warn("Failed to parse value", "field", field, "text", text)
		return nil, nil
	}

	primary, err := parseNumber(m[1])
	if err != nil {
		logger.Warn("Failed to convert number", "field", field, "capture", m[1], "error", err)
		return nil, nil
	}
	secondary, err := parseNumber(m[2])
	if err != nil {
		logger.Warn("Failed to convert number", "field", field, "capture", m[2], "error", err)
		return nil, nil
	}
	return &primary, &secondary
}

// parseNumber converts a captured numeral, stripping thousands
// separators first.
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
