package score

import (
	"math"
	"testing"

	"github.com/pacwatch/pacwatch/internal/model"
)

func TestComputeHHI_ZeroTotal(t *testing.T) {
	res := ComputeHHI(map[string]float64{})
	if res.HHI != 0 {
		t.Errorf("expected HHI 0 for empty input, got %v", res.HHI)
	}
	if res.Label != model.HHIUnconcentrated {
		t.Errorf("label: %q", res.Label)
	}

	res = ComputeHHI(map[string]float64{"banking": 0})
	if res.HHI != 0 {
		t.Errorf("expected HHI 0 for zero amounts, got %v", res.HHI)
	}
}

func TestComputeHHI_SingleSectorIsMaximal(t *testing.T) {
	res := ComputeHHI(map[string]float64{"investment": 5000})
	if math.Abs(res.HHI-10000) > 1e-9 {
		t.Errorf("expected HHI 10000, got %v", res.HHI)
	}
	if res.DominantSector != "investment" || math.Abs(res.DominantShare-100) > 1e-9 {
		t.Errorf("dominant: %s %.2f", res.DominantSector, res.DominantShare)
	}
	if res.Label != model.HHIConcentrated {
		t.Errorf("label: %q", res.Label)
	}
}

func TestComputeHHI_SharesSumTo100(t *testing.T) {
	inputs := []map[string]float64{
		{"banking": 300, "investment": 500, "insurance": 200},
		{"banking": 1, "investment": 1, "insurance": 1, "crypto": 1},
		{"banking": 12345.67, "real_estate": 0.01},
	}

	for _, amounts := range inputs {
		res := ComputeHHI(amounts)

		var sum float64
		for _, share := range res.Shares {
			sum += share
		}
		if math.Abs(sum-100) > 1e-9 {
			t.Errorf("shares sum to %v for %v", sum, amounts)
		}
		if res.HHI < 0 || res.HHI > 10000+1e-9 {
			t.Errorf("HHI out of range: %v", res.HHI)
		}
	}
}

func TestComputeHHI_KnownValue(t *testing.T) {
	// 50/30/20 split: 2500 + 900 + 400 = 3800.
	res := ComputeHHI(map[string]float64{"banking": 500, "investment": 300, "insurance": 200})
	if math.Abs(res.HHI-3800) > 1e-9 {
		t.Errorf("expected 3800, got %v", res.HHI)
	}
	if res.DominantSector != "banking" || math.Abs(res.DominantShare-50) > 1e-9 {
		t.Errorf("dominant: %s %.2f", res.DominantSector, res.DominantShare)
	}
}

func TestComputeHHI_NegativeAmountsIgnored(t *testing.T) {
	res := ComputeHHI(map[string]float64{"banking": 100, "investment": -50})
	if res.Total != 100 {
		t.Errorf("total: %v", res.Total)
	}
	if _, ok := res.Shares["investment"]; ok {
		t.Error("negative sector must not appear in shares")
	}
}

func TestHHILabels(t *testing.T) {
	tests := []struct {
		hhi  float64
		want string
	}{
		{100, model.HHIUnconcentrated},
		{1499, model.HHIUnconcentrated},
		{1500, model.HHIModerate},
		{2500, model.HHIModerate},
		{2501, model.HHIConcentrated},
	}
	for _, tt := range tests {
		if got := hhiLabel(tt.hhi); got != tt.want {
			t.Errorf("hhiLabel(%v) = %q, want %q", tt.hhi, got, tt.want)
		}
	}
}
