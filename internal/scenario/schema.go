// Package scenario defines the JSON dataset format for schedule
// snapshots, converts it to and from the domain model, and generates
// seeded random scenarios for demos and stress tests.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
)

// timestampLayout is the wire format for instants: ISO-8601 UTC with
// millisecond precision and a trailing Z.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Schema is the top-level JSON structure for a scenario file.
type Schema struct {
	Name                string                   `json:"name"`
	WorkCenters         []WorkCenterJSON         `json:"work_centers"`
	WorkOrders          []WorkOrderJSON          `json:"work_orders"`
	ManufacturingOrders []ManufacturingOrderJSON `json:"manufacturing_orders,omitempty"`
}

// ShiftJSON is one weekly operating window. Weekday is 0=Sunday through
// 6=Saturday; hours are half-open [start_hour, end_hour).
type ShiftJSON struct {
	Weekday   int `json:"weekday"`
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// MaintenanceWindowJSON is an absolute blackout interval.
type MaintenanceWindowJSON struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Reason string `json:"reason,omitempty"`
}

// WorkCenterJSON defines a work center in the scenario file.
type WorkCenterJSON struct {
	ID                 string                  `json:"id"`
	Name               string                  `json:"name"`
	Shifts             []ShiftJSON             `json:"shifts,omitempty"`
	MaintenanceWindows []MaintenanceWindowJSON `json:"maintenance_windows,omitempty"`
}

// WorkOrderJSON defines a work order in the scenario file. SetupMin and
// Priority are optional; absent values resolve to the domain defaults.
type WorkOrderJSON struct {
	ID            string   `json:"id"`
	WorkCenterID  string   `json:"work_center_id"`
	Start         string   `json:"start"`
	End           string   `json:"end"`
	DurationMin   int      `json:"duration_min"`
	SetupMin      *int     `json:"setup_min,omitempty"`
	Priority      *int     `json:"priority,omitempty"`
	IsMaintenance bool     `json:"is_maintenance,omitempty"`
	Dependencies  []string `json:"dependencies,omitempty"`
}

// ManufacturingOrderJSON is pass-through context; the engine never reads it.
type ManufacturingOrderJSON struct {
	ID       string `json:"id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	DueDate  string `json:"due_date"`
}

// LoadFile reads and parses a scenario file.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	return Parse(data)
}

// Parse decodes scenario JSON, rejecting unknown fields is deliberately
// not done: forward-compatible files may carry extra keys.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario JSON: %w", err)
	}
	return &s, nil
}

// SaveFile writes the scenario as indented JSON.
func (s *Schema) SaveFile(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing scenario file: %w", err)
	}
	return nil
}

// Marshal encodes the scenario as indented JSON.
func (s *Schema) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding scenario JSON: %w", err)
	}
	return data, nil
}
