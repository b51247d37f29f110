package model

// Category identifies a fixed compliance topic. Each category owns an ordered
// list of extraction patterns and exactly one comparison rule.
type Category string

const (
	CategoryInsulationThickness Category = "insulation_thickness"
	CategorySeismicResistance   Category = "seismic_resistance"
	CategoryEmergencyPower      Category = "emergency_power_duration"
	CategoryPumpCount           Category = "containment_pump_count"
	CategoryMaterialGrade       Category = "material_grade"
	CategoryUnknown             Category = "unknown"
)

// Categories returns every registered category in priority order. The order is
// load-bearing: unit categorization, extraction, and query routing all resolve
// overlapping keyword matches by taking the first category in this list.
func Categories() []Category {
	return []Category{
		CategoryInsulationThickness,
		CategorySeismicResistance,
		CategoryEmergencyPower,
		CategoryPumpCount,
		CategoryMaterialGrade,
	}
}

// Registered reports whether the category has extraction patterns and a
// comparison rule.
func (c Category) Registered() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
