package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

// SaveUnits persists segmented requirement units as an ordered JSON list.
func SaveUnits(path string, units []model.RequirementUnit) error {
	data, err := json.MarshalIndent(units, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal units: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write units: %w", err)
	}
	return nil
}

// LoadUnits reloads previously segmented units, preserving order.
func LoadUnits(path string) ([]model.RequirementUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read units: %w", err)
	}
	var units []model.RequirementUnit
	if err := json.Unmarshal(data, &units); err != nil {
		return nil, fmt.Errorf("parse units: %w", err)
	}
	return units, nil
}
