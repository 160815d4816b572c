package order

import (
	"bytes"
	"encoding/json"

	"ordertrack/internal/pkg/errs"
)

// Details is the semi-structured payload captured when an order is
// created: quantity, price, notes and the creator's email. The domain
// treats it as opaque. It is validated for presence and well-formedness
// only, never inspected, and returned byte-identical on every read.
type Details json.RawMessage

// NewDetails wraps a raw JSON payload as order details.
func NewDetails(raw []byte) (Details, error) {
	d := Details(raw)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the payload is present and is well-formed JSON.
func (d Details) Validate() error {
	if len(d) == 0 {
		return errs.NewValueIsRequiredError("details")
	}
	if !json.Valid(d) {
		return errs.NewValueIsInvalidError("details is not well-formed JSON")
	}
	return nil
}

// IsEqual compares two payloads byte for byte.
func (d Details) IsEqual(other Details) bool {
	return bytes.Equal(d, other)
}

// MarshalJSON returns the payload as-is so it round-trips unchanged.
func (d Details) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

// UnmarshalJSON stores the payload as-is.
func (d *Details) UnmarshalJSON(data []byte) error {
	*d = append((*d)[0:0], data...)
	return nil
}
