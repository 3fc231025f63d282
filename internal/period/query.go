package period

import "net/url"

// ToQueryParams projects p onto name[start] and name[end]. The granularity
// flag travels separately.
func (p Period) ToQueryParams(name string) url.Values {
	rec := p.ToRecord()
	v := url.Values{}
	v.Set(name+"[start]", rec.Start)
	v.Set(name+"[end]", rec.End)
	return v
}

// FromQuery reads the projection written by ToQueryParams.
func FromQuery(values url.Values, name string, fullDays bool, opts ...Option) (Period, error) {
	return FromRecord(Record{
		Start:      values.Get(name + "[start]"),
		End:        values.Get(name + "[end]"),
		IsFullDays: fullDays,
	}, opts...)
}

// TryFromQuery is FromQuery with failures reported as ok == false.
func TryFromQuery(values url.Values, name string, fullDays bool, opts ...Option) (Period, bool) {
	p, err := FromQuery(values, name, fullDays, opts...)
	if err != nil {
		return Period{}, false
	}
	return p, true
}
