package domain

import "fmt"

// ActionType names one of the four selection operations.
type ActionType string

const (
	// ActionSetProvince selects a province (or clears it) and clears regency and district.
	ActionSetProvince ActionType = "set_province"
	// ActionSetRegency selects a regency (or clears it) and clears district.
	ActionSetRegency ActionType = "set_regency"
	// ActionSetDistrict selects a district (or clears it).
	ActionSetDistrict ActionType = "set_district"
	// ActionReset clears every level.
	ActionReset ActionType = "reset"
)

// Action is a request from a presentation layer to change the Selection.
// ID is ignored for ActionReset.
type Action struct {
	Type ActionType `json:"action" mapstructure:"action"`
	ID   NullID     `json:"id" mapstructure:"-"`
}

// SetAction returns the action that sets the given level.
func SetAction(level Level, id NullID) (Action, error) {
	switch level {
	case LevelProvince:
		return Action{Type: ActionSetProvince, ID: id}, nil
	case LevelRegency:
		return Action{Type: ActionSetRegency, ID: id}, nil
	case LevelDistrict:
		return Action{Type: ActionSetDistrict, ID: id}, nil
	}
	return Action{}, fmt.Errorf("%w: level %q", ErrUnknownAction, level)
}

// Level returns the hierarchy level an action targets.
// Reset targets the root and returns LevelProvince.
func (a Action) Level() Level {
	switch a.Type {
	case ActionSetRegency:
		return LevelRegency
	case ActionSetDistrict:
		return LevelDistrict
	default:
		return LevelProvince
	}
}

// Validate checks the action type.
func (a Action) Validate() error {
	switch a.Type {
	case ActionSetProvince, ActionSetRegency, ActionSetDistrict, ActionReset:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
}
