package catalog

import (
	"encoding/json"
	"strings"
	"time"

	"hostpanel/internal/model"

	"gorm.io/datatypes"
)

// DefaultPageSize is the list page size when the client sends none.
const DefaultPageSize = 50

// MaxPageSize caps the list page size.
const MaxPageSize = 200

// InvalidJSONMarker replaces a stored JSON field that fails to parse, so one
// corrupt row cannot fail a whole page.
var InvalidJSONMarker = map[string]string{"error": "Invalid JSON format"}

// ListParams are the list endpoint filters. Page and Limit are expected to be
// normalized by the caller.
type ListParams struct {
	Type         string
	Enabled      *bool
	Availability string
	Search       string
	Sort         string
	Page         int
	Limit        int
}

// ComponentItem is one catalog row enriched with derived availability.
type ComponentItem struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	BasePrice           float64    `json:"base_price"`
	Specs               any        `json:"specs"`
	DatapacketData      any        `json:"datapacket_data"`
	IsEnabled           bool       `json:"is_enabled"`
	CustomName          *string    `json:"custom_name"`
	CustomPrice         *float64   `json:"custom_price"`
	AdminNotes          string     `json:"admin_notes"`
	SortOrder           int        `json:"sort_order"`
	FirstSeenAt         time.Time  `json:"first_seen_at"`
	LastUpdatedAt       time.Time  `json:"last_updated_at"`
	DatapacketUpdatedAt *time.Time `json:"datapacket_updated_at"`
	StockCount          *int       `json:"stock_count"`
	InStock             bool       `json:"in_stock"`
	DatapacketAvailable bool       `json:"datapacket_available"`
	IsAvailable         bool       `json:"is_available"`
}

var sortColumns = map[string]string{
	"name":            "name",
	"type":            "type",
	"base_price":      "base_price",
	"sort_order":      "sort_order",
	"first_seen_at":   "first_seen_at",
	"last_updated_at": "last_updated_at",
}

// List serves filtered, sorted, paginated catalog reads. Type, enabled and
// search narrow the query in SQL; the availability predicate runs through the
// same resolver that computes the derived fields, then pagination applies.
func (s *Service) List(params ListParams) ([]ComponentItem, int64, error) {
	q := s.db.Model(&model.Component{})

	if params.Type != "" {
		q = q.Where("type = ?", params.Type)
	}
	if params.Enabled != nil {
		q = q.Where("is_enabled = ?", *params.Enabled)
	}
	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(IFNULL(custom_name, '')) LIKE ? OR LOWER(IFNULL(admin_notes, '')) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var comps []model.Component
	if err := q.Order(orderClause(params.Sort)).Find(&comps).Error; err != nil {
		return nil, 0, err
	}

	items := make([]ComponentItem, 0, len(comps))
	for _, comp := range comps {
		item := s.enrich(comp)
		if params.Availability != "" {
			avail := Availability{
				StockCount:          item.StockCount,
				InStock:             item.InStock,
				DatapacketAvailable: item.DatapacketAvailable,
				IsAvailable:         item.IsAvailable,
			}
			if !avail.Matches(params.Availability) {
				continue
			}
		}
		items = append(items, item)
	}

	total := int64(len(items))

	start := (params.Page - 1) * params.Limit
	if start >= len(items) {
		return []ComponentItem{}, total, nil
	}
	end := start + params.Limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], total, nil
}

// enrich parses the stored JSON blobs and attaches derived availability. A
// blob that fails to parse is replaced with InvalidJSONMarker and logged with
// the record id; the rest of the row survives.
func (s *Service) enrich(comp model.Component) ComponentItem {
	specsMap, specsView := s.parseJSONField(comp.ID, "specs", comp.Specs)
	dpMap, dpView := s.parseJSONField(comp.ID, "datapacket_data", comp.DatapacketData)

	avail := Resolve(specsMap, dpMap)

	return ComponentItem{
		ID:                  comp.ID,
		Name:                comp.Name,
		Type:                comp.Type,
		BasePrice:           comp.BasePrice,
		Specs:               specsView,
		DatapacketData:      dpView,
		IsEnabled:           comp.IsEnabled,
		CustomName:          comp.CustomName,
		CustomPrice:         comp.CustomPrice,
		AdminNotes:          comp.AdminNotes,
		SortOrder:           comp.SortOrder,
		FirstSeenAt:         comp.FirstSeenAt,
		LastUpdatedAt:       comp.LastUpdatedAt,
		DatapacketUpdatedAt: comp.DatapacketUpdatedAt,
		StockCount:          avail.StockCount,
		InStock:             avail.InStock,
		DatapacketAvailable: avail.DatapacketAvailable,
		IsAvailable:         avail.IsAvailable,
	}
}

func (s *Service) parseJSONField(id, field string, raw datatypes.JSON) (map[string]any, any) {
	if len(raw) == 0 {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		s.logger.WithField("component_id", id).WithField("field", field).
			WithError(err).Error("stored JSON failed to parse")
		return nil, InvalidJSONMarker
	}
	return m, m
}

func orderClause(sort string) string {
	if sort != "" {
		field := strings.TrimPrefix(sort, "-")
		if col, ok := sortColumns[field]; ok {
			dir := "ASC"
			if strings.HasPrefix(sort, "-") {
				dir = "DESC"
			}
			return col + " " + dir + ", name ASC"
		}
	}
	return "sort_order ASC, type ASC, name ASC"
}
