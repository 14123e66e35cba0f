package models

// PayType is the payment model of a posting.
type PayType int

const (
	PayUnknown PayType = iota
	PayHourly
	PayFixed
)

func (t PayType) String() string {
	switch t {
	case PayHourly:
		return "Hourly"
	case PayFixed:
		return "Fixed"
	default:
		return ""
	}
}

// MarshalCSV serializes the pay type for the cleaned export; Unknown stays
// blank like every other unextractable value.
func (t PayType) MarshalCSV() (string, error) {
	return t.String(), nil
}

// UnmarshalCSV parses a pay type from the cleaned export.
func (t *PayType) UnmarshalCSV(raw string) error {
	switch raw {
	case "Hourly":
		*t = PayHourly
	case "Fixed":
		*t = PayFixed
	default:
		*t = PayUnknown
	}
	return nil
}

// MarshalJSON mirrors the CSV representation.
func (t PayType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}
