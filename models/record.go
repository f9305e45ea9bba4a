package models

// Record holds the extracted specification fields for a single page.
// Every field except URL is optional: a nil pointer means the page did
// not carry a parseable value for it. Paired fields (HP/kW, kg/lb) are
// set together by the parsers and are never half-populated.
type Record struct {
	Model         *string
	Year          *int
	PowerHP       *float64
	PowerKW       *float64
	Torque        *string
	Displacement  *string
	WetWeightKG   *float64
	WetWeightLB   *float64
	DryWeightKG   *float64
	DryWeightLB   *float64
	PowerToWeight *float64 // HP per kg
	URL           string
}

// ColumnNames is the fixed export header, in column order. Row() below
// must stay aligned with it.
var ColumnNames = []string{
	"Model",
	"Year",
	"Power (HP)",
	"Power (kW)",
	"Torque",
	"Displacement",
	"Wet weight (kg)",
	"Wet weight (lb)",
	"Dry weight (kg)",
	"Dry weight (lb)",
	"Power/weight (HP/kg)",
	"URL",
}

// Row flattens the record into one cell value per column. Absent fields
// become nil cells so the exporter leaves them blank.
func (r *Record) Row() []interface{} {
	return []interface{}{
		strCell(r.Model),
		intCell(r.Year),
		floatCell(r.PowerHP),
		floatCell(r.PowerKW),
		strCell(r.Torque),
		strCell(r.Displacement),
		floatCell(r.WetWeightKG),
		floatCell(r.WetWeightLB),
		floatCell(r.DryWeightKG),
		floatCell(r.DryWeightLB),
		floatCell(r.PowerToWeight),
		r.URL,
	}
}

func strCell(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func intCell(i *int) interface{} {
	if i == nil {
		return nil
	}
	return *i
}

func floatCell(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

// String returns a pointer to s. Convenience for building records in tests.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }
