package models

import (
	"encoding/json"
	"math"
	"testing"
)

func TestComputeROI(t *testing.T) {
	inv := Investment{Amount: 1000, ValueOnMaturity: 1050}
	if got := float64(inv.ComputeROI()); math.Abs(got-5) > 1e-9 {
		t.Errorf("expected ROI 5, got %f", got)
	}

	zero := Investment{Amount: 0, ValueOnMaturity: 0}
	if zero.ComputeROI().IsFinite() {
		t.Error("expected a non-finite ROI for a zero amount")
	}
}

func TestRatioMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   Ratio
		want string
	}{
		{"finite", Ratio(12.5), "12.5"},
		{"nan", Ratio(math.NaN()), "null"},
		{"inf", Ratio(math.Inf(1)), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(struct {
				ROI Ratio `json:"ROI"`
			}{tt.in})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want := `{"ROI":` + tt.want + `}`; string(data) != want {
				t.Errorf("expected %s, got %s", want, data)
			}
		})
	}
}
