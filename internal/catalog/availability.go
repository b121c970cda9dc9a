package catalog

import "encoding/json"

// Filter values accepted by the list endpoint.
const (
	FilterAvailable       = "available"
	FilterOutOfStock      = "out_of_stock"
	FilterNotInDatapacket = "not_in_datapacket"
)

// Availability is the derived stock signal computed at read time from a
// component's specs and datapacket_data. It is never persisted as
// authoritative state.
type Availability struct {
	StockCount          *int `json:"stock_count"`
	InStock             bool `json:"in_stock"`
	DatapacketAvailable bool `json:"datapacket_available"`
	IsAvailable         bool `json:"is_available"`
}

// Resolve computes availability from the two stored JSON blobs. A missing
// stockCount means unknown/infinite stock and counts as in stock; a missing
// datapacket available flag defaults to available.
func Resolve(specs, datapacket map[string]any) Availability {
	a := Availability{InStock: true, DatapacketAvailable: true}

	if n, ok := intValue(specs, "stockCount"); ok {
		a.StockCount = &n
		a.InStock = n > 0
	}
	if b, ok := boolValue(datapacket, "available"); ok {
		a.DatapacketAvailable = b
	}

	a.IsAvailable = a.InStock || a.DatapacketAvailable
	return a
}

// Matches reports whether this availability satisfies the given filter. The
// available filter is a conjunction while IsAvailable is a disjunction; the
// asymmetry is intentional product behavior and must not be unified.
func (a Availability) Matches(filter string) bool {
	switch filter {
	case FilterAvailable:
		return (a.StockCount == nil || *a.StockCount > 0) && a.DatapacketAvailable
	case FilterOutOfStock:
		return a.StockCount != nil && *a.StockCount == 0
	case FilterNotInDatapacket:
		return !a.DatapacketAvailable
	default:
		return true
	}
}

// ValidFilter reports whether the value is one of the accepted filter names.
func ValidFilter(filter string) bool {
	switch filter {
	case FilterAvailable, FilterOutOfStock, FilterNotInDatapacket:
		return true
	}
	return false
}

// intValue reads a numeric key from a decoded JSON map, tolerating the
// numeric types different decoders produce.
func intValue(m map[string]any, key string) (int, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	}
	return 0, false
}

func boolValue(m map[string]any, key string) (bool, bool) {
	if m == nil {
		return false, false
	}
	if v, ok := m[key].(bool); ok {
		return v, true
	}
	return false, false
}
