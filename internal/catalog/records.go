package catalog

import (
	"regexp"
	"strings"

	"hostpanel/internal/datapacket"
	"hostpanel/internal/model"
	"hostpanel/internal/osinfo"
)

// Record is a normalized provider record, the unit the merge engine works on.
// Specs holds classifier- and provider-derived attributes; Datapacket is the
// raw provider payload kept for availability re-derivation.
type Record struct {
	ID         string
	Name       string
	Type       string
	Price      float64
	Specs      map[string]any
	Datapacket map[string]any
}

func recordsFromDetailedPricing(p *datapacket.DetailedPricing) []Record {
	var out []Record
	out = append(out, hardwareRecords(model.ComponentTypeCPU, p.CPUs)...)
	out = append(out, hardwareRecords(model.ComponentTypeMemory, p.Memory)...)
	out = append(out, hardwareRecords(model.ComponentTypeStorage, p.Storage)...)
	return out
}

func hardwareRecords(typ string, items []datapacket.HardwareComponent) []Record {
	out := make([]Record, 0, len(items))
	for _, hc := range items {
		if hc.ID == "" {
			continue
		}

		specs := map[string]any{}
		if hc.Cores != nil {
			specs["cores"] = *hc.Cores
		}
		if hc.SizeGB != nil {
			specs["size"] = *hc.SizeGB
		}
		if hc.StockCount != nil {
			specs["stockCount"] = *hc.StockCount
		}

		dp := map[string]any{
			"id":    hc.ID,
			"name":  hc.Name,
			"price": hc.Price,
		}
		if hc.StockCount != nil {
			dp["stockCount"] = *hc.StockCount
		}
		if hc.Available != nil {
			dp["available"] = *hc.Available
		}

		out = append(out, Record{
			ID:         hc.ID,
			Name:       hc.Name,
			Type:       typ,
			Price:      hc.Price,
			Specs:      specs,
			Datapacket: dp,
		})
	}
	return out
}

// recordsFromConfigurations derives component records from provisioning
// bundles. Each bundle contributes its cpu, memory, storage and location; the
// bundle price lands on the cpu record, hardware records keep the highest
// stock seen across bundles and locations sum theirs. Ids are type-prefixed
// slugs so repeated syncs resolve to the same rows.
func recordsFromConfigurations(cfgs []datapacket.Configuration) []Record {
	type entry struct {
		rec       Record
		stock     int
		configIDs []string
	}

	var order []string
	index := map[string]*entry{}

	upsert := func(id, name, typ string, price float64, specs map[string]any, cfg datapacket.Configuration, sumStock bool) {
		e, ok := index[id]
		if !ok {
			e = &entry{rec: Record{ID: id, Name: name, Type: typ, Price: price, Specs: specs}}
			index[id] = e
			order = append(order, id)
		}
		if sumStock {
			e.stock += cfg.StockCount
		} else if cfg.StockCount > e.stock {
			e.stock = cfg.StockCount
		}
		e.configIDs = append(e.configIDs, cfg.ID)
	}

	for _, cfg := range cfgs {
		if cfg.CPU.Name != "" {
			specs := map[string]any{}
			if cfg.CPU.Cores != nil {
				specs["cores"] = *cfg.CPU.Cores
			}
			upsert("cpu-"+slugify(cfg.CPU.Name), cfg.CPU.Name, model.ComponentTypeCPU, cfg.Price, specs, cfg, false)
		}
		if cfg.Memory.Name != "" {
			specs := map[string]any{}
			if cfg.Memory.SizeGB != nil {
				specs["size"] = *cfg.Memory.SizeGB
			}
			upsert("memory-"+slugify(cfg.Memory.Name), cfg.Memory.Name, model.ComponentTypeMemory, 0, specs, cfg, false)
		}
		if cfg.Storage.Name != "" {
			specs := map[string]any{}
			if cfg.Storage.SizeGB != nil {
				specs["size"] = *cfg.Storage.SizeGB
			}
			upsert("storage-"+slugify(cfg.Storage.Name), cfg.Storage.Name, model.ComponentTypeStorage, 0, specs, cfg, false)
		}
		if cfg.Location.ShortName != "" {
			name := cfg.Location.Name
			if name == "" {
				name = cfg.Location.ShortName
			}
			upsert("location-"+slugify(cfg.Location.ShortName), name, model.ComponentTypeLocation, 0, map[string]any{}, cfg, true)
		}
	}

	out := make([]Record, 0, len(order))
	for _, id := range order {
		e := index[id]
		e.rec.Specs["stockCount"] = e.stock
		e.rec.Datapacket = map[string]any{
			"available":        e.stock > 0,
			"stockCount":       e.stock,
			"configurationIds": e.configIDs,
		}
		out = append(out, e.rec)
	}
	return out
}

func recordsFromOperatingSystems(list []datapacket.OperatingSystem) []Record {
	out := make([]Record, 0, len(list))
	for _, os := range list {
		if os.OSImageID == "" {
			continue
		}

		class := osinfo.Classify(os.Name)
		out = append(out, Record{
			ID:    "os-" + os.OSImageID,
			Name:  os.Name,
			Type:  model.ComponentTypeOS,
			Price: 0,
			Specs: map[string]any{
				"osImageId":  os.OSImageID,
				"icon":       class.Icon,
				"category":   class.Category,
				"brandColor": class.BrandColor,
				"arch":       osinfo.Arch(os.Name),
			},
			Datapacket: map[string]any{
				"osImageId": os.OSImageID,
				"name":      os.Name,
			},
		})
	}
	return out
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}
