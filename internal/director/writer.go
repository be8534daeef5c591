package director

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteSchedule writes a schedule to a YAML file.
func WriteSchedule(schedule *Schedule, path string) error {
	data, err := yaml.Marshal(schedule)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadSchedule reads a schedule from a YAML file.
func ReadSchedule(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var schedule Schedule
	if err := yaml.Unmarshal(data, &schedule); err != nil {
		return nil, fmt.Errorf("parse schedule yaml: %w", err)
	}

	return &schedule, nil
}
