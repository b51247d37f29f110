package model

import "testing"

func TestClaim_Display(t *testing.T) {
	tests := []struct {
		name  string
		claim Claim
		want  string
	}{
		{"absent", AbsentClaim(CategorySeismicResistance), "N/A"},
		{"millimeters", Claim{Value: 45, Unit: "mm", Present: true}, "45mm"},
		{"g value", Claim{Value: 0.25, Unit: "g", Present: true}, "0.25g"},
		{"hours", Claim{Value: 96, Unit: "hours", Present: true}, "96 hours"},
		{"pumps", Claim{Value: 2, Unit: "pumps", Present: true}, "2 pumps"},
		{"token", Claim{Token: "300-series", Unit: "grade family", Present: true}, "300-series"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.claim.Display(); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategories_PriorityOrder(t *testing.T) {
	want := []Category{
		CategoryInsulationThickness,
		CategorySeismicResistance,
		CategoryEmergencyPower,
		CategoryPumpCount,
		CategoryMaterialGrade,
	}

	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("Expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestCategory_Registered(t *testing.T) {
	if !CategoryPumpCount.Registered() {
		t.Error("Expected pump count to be registered")
	}
	if CategoryUnknown.Registered() {
		t.Error("Expected unknown to be unregistered")
	}
}
