package services

import (
	"encoding/json"
	"fmt"
	"time"
)

// Decode helpers for partial updates. Handlers bind PUT bodies into
// map[string]json.RawMessage so that an absent field is distinguishable from
// an explicit null: absent keys never reach these helpers, while a null value
// either clears a nullable column or is rejected for a required one.

func decodeString(field string, raw json.RawMessage) (string, error) {
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("field %q must be a string: %w", field, ErrValidation)
	}
	if v == nil {
		// Optional text columns are stored as plain strings; null clears them.
		return "", nil
	}
	return *v, nil
}

func decodeRequiredString(field string, raw json.RawMessage) (string, error) {
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return "", fmt.Errorf("field %q must be a non-null string: %w", field, ErrValidation)
	}
	return *v, nil
}

func decodeFloat(field string, raw json.RawMessage) (float64, error) {
	var v *float64
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return 0, fmt.Errorf("field %q must be a non-null number: %w", field, ErrValidation)
	}
	return *v, nil
}

func decodeInt(field string, raw json.RawMessage) (int, error) {
	var v *int
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return 0, fmt.Errorf("field %q must be a non-null integer: %w", field, ErrValidation)
	}
	return *v, nil
}

func decodeBool(field string, raw json.RawMessage) (bool, error) {
	var v *bool
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return false, fmt.Errorf("field %q must be a non-null boolean: %w", field, ErrValidation)
	}
	return *v, nil
}

func decodeNullableFloat(field string, raw json.RawMessage) (*float64, error) {
	var v *float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("field %q must be a number or null: %w", field, ErrValidation)
	}
	return v, nil
}

func decodeNullableInt(field string, raw json.RawMessage) (*int, error) {
	var v *int
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("field %q must be an integer or null: %w", field, ErrValidation)
	}
	return v, nil
}

func decodeNullableTime(field string, raw json.RawMessage) (*time.Time, error) {
	var v *time.Time
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("field %q must be an RFC 3339 timestamp or null: %w", field, ErrValidation)
	}
	return v, nil
}
