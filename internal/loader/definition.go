package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/legislature-tools/legistats/internal/common"
	"github.com/legislature-tools/legistats/internal/model"
)

// AttendanceDefinition loads and validates an attendance definition.
// Two JSON shapes are accepted: the full form with an event_types object
// and optional choice-option sets, and a shorthand where the whole file
// is the event-type map itself.
func AttendanceDefinition(path string) (*model.AttendanceDefinition, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	if format != formatJSON {
		return nil, fmt.Errorf("%w: definition file %s must be JSON", common.ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}

	var def model.AttendanceDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: definition file %s: %v", common.ErrConfiguration, path, err)
	}
	if def.EventTypes == nil {
		var shorthand map[string]*model.Category
		if err := json.Unmarshal(data, &shorthand); err != nil {
			return nil, fmt.Errorf("%w: definition file %s: %v", common.ErrConfiguration, path, err)
		}
		def = model.AttendanceDefinition{EventTypes: shorthand}
	}

	if err := validate.Struct(&def); err != nil {
		return nil, fmt.Errorf("%w: definition file %s: %v", common.ErrConfiguration, path, err)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("definition file %s: %w", path, err)
	}
	return &def, nil
}

// RebelityDefinition loads and validates a rebelity definition.
func RebelityDefinition(path string) (*model.RebelityDefinition, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	if format != formatJSON {
		return nil, fmt.Errorf("%w: definition file %s must be JSON", common.ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open definition file: %w", err)
	}
	defer f.Close()

	var def model.RebelityDefinition
	if err := json.NewDecoder(f).Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: definition file %s: %v", common.ErrConfiguration, path, err)
	}
	if err := validate.Struct(&def); err != nil {
		return nil, fmt.Errorf("%w: definition file %s: %v", common.ErrConfiguration, path, err)
	}
	return &def, nil
}

// GovityDefinition loads and validates a govity definition.
func GovityDefinition(path string) (*model.GovityDefinition, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	if format != formatJSON {
		return nil, fmt.Errorf("%w: definition file %s must be JSON", common.ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open definition file: %w", err)
	}
	defer f.Close()

	var def model.GovityDefinition
	if err := json.NewDecoder(f).Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: definition file %s: %v", common.ErrConfiguration, path, err)
	}
	if err := validate.Struct(&def); err != nil {
		return nil, fmt.Errorf("%w: definition file %s: %v", common.ErrConfiguration, path, err)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("definition file %s: %w", path, err)
	}
	return &def, nil
}
