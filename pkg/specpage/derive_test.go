package specpage

import (
	"testing"

	"github.com/Ziink4/Jerk/models"
)

func TestResolveRatio(t *testing.T) {
	tests := []struct {
		name     string
		explicit *float64
		powerHP  *float64
		wetKG    *float64
		dryKG    *float64
		want     *float64
	}{
		{
			name:    "wet weight preferred over dry",
			powerHP: models.Float(100),
			wetKG:   models.Float(200),
			dryKG:   models.Float(180),
			want:    models.Float(0.5),
		},
		{
			name:    "dry weight fallback",
			powerHP: models.Float(100),
			dryKG:   models.Float(180),
			want:    models.Float(100.0 / 180.0),
		},
		{
			name:     "explicit value wins over derivation",
			explicit: models.Float(0.7),
			powerHP:  models.Float(100),
			wetKG:    models.Float(200),
			dryKG:    models.Float(180),
			want:     models.Float(0.7),
		},
		{
			name:  "no power means no ratio",
			wetKG: models.Float(200),
			dryKG: models.Float(180),
		},
		{
			name:    "no weight means no ratio",
			powerHP: models.Float(100),
		},
		{
			name: "everything absent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRatio(tt.explicit, tt.powerHP, tt.wetKG, tt.dryKG)

			if tt.want == nil {
				if got != nil {
					t.Fatalf("ResolveRatio() = %v, want nil", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ResolveRatio() = nil, want %v", *tt.want)
			}
			if !almostEqual(*got, *tt.want) {
				t.Errorf("ResolveRatio() = %v, want %v", *got, *tt.want)
			}
		})
	}
}
