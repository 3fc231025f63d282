package period

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

// Record is the serialized form of a Period used at API, query-string and
// storage boundaries. Start and End hold the accessor strings, with the UTC
// offset appended to precise boundaries outside UTC.
type Record struct {
	Start      string `json:"start" mapstructure:"start" validate:"required"`
	End        string `json:"end" mapstructure:"end" validate:"required"`
	IsFullDays bool   `json:"isFullDays" mapstructure:"isFullDays"`
}

// ToRecord returns the serialized form of p. Precise boundaries outside UTC
// carry their offset, e.g. "2024-01-01 10:00:00+02:00".
func (p Period) ToRecord() Record {
	if p.granularity == FullDays {
		return Record{Start: p.first.String(), End: p.last.String(), IsFullDays: true}
	}
	loc := p.Location()
	return Record{Start: serializeInstant(p.start, loc), End: serializeInstant(p.end, loc)}
}

// FromRecord rebuilds a Period from r. Schema and construction failures both
// wrap ErrDeserialization.
func FromRecord(r Record, opts ...Option) (Period, error) {
	if err := validate.Struct(r); err != nil {
		return Period{}, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	p, err := Parse(r.Start, r.End, r.IsFullDays, opts...)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	return p, nil
}

// From accepts a Period (returned as a copy), a Record, a loosely typed map
// or a JSON document in the record format.
func From(v any, opts ...Option) (Period, error) {
	switch in := v.(type) {
	case Period:
		return in, nil
	case *Period:
		if in == nil {
			return Period{}, fmt.Errorf("%w: nil period", ErrDeserialization)
		}
		return *in, nil
	case Record:
		return FromRecord(in, opts...)
	case *Record:
		if in == nil {
			return Period{}, fmt.Errorf("%w: nil record", ErrDeserialization)
		}
		return FromRecord(*in, opts...)
	case map[string]any:
		r, err := decodeRecord(in)
		if err != nil {
			return Period{}, err
		}
		return FromRecord(r, opts...)
	case map[string]string:
		m := make(map[string]any, len(in))
		for k, s := range in {
			m[k] = s
		}
		return From(m, opts...)
	case json.RawMessage:
		return fromJSON(in, opts...)
	case []byte:
		return fromJSON(in, opts...)
	}
	return Period{}, fmt.Errorf("%w: unsupported type %T", ErrDeserialization, v)
}

// TryFrom is From for untrusted input: any failure yields ok == false.
func TryFrom(v any, opts ...Option) (Period, bool) {
	p, err := From(v, opts...)
	if err != nil {
		return Period{}, false
	}
	return p, true
}

// MarshalJSON encodes p in the record format.
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToRecord())
}

// UnmarshalJSON decodes a record, reading boundaries in UTC.
func (p *Period) UnmarshalJSON(data []byte) error {
	decoded, err := fromJSON(data)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

func fromJSON(data []byte, opts ...Option) (Period, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Period{}, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	return FromRecord(r, opts...)
}

func decodeRecord(in map[string]any) (Record, error) {
	var r Record
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &r,
	})
	if err != nil {
		return Record{}, err
	}
	if err := dec.Decode(in); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrDeserialization, err)
	}
	return r, nil
}
