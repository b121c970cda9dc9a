package datapacket

// HardwareComponent is one entry of the detailed pricing collections. Optional
// fields stay nil when the provider omits them; the catalog keeps the raw
// payload next to the normalized fields so later schema drift stays visible.
type HardwareComponent struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Cores      *int    `json:"cores,omitempty"`
	SizeGB     *int    `json:"sizeGb,omitempty"`
	StockCount *int    `json:"stockCount,omitempty"`
	Available  *bool   `json:"available,omitempty"`
}

// DetailedPricing is the payload of the detailed pricing query.
type DetailedPricing struct {
	CPUs    []HardwareComponent `json:"cpus"`
	Memory  []HardwareComponent `json:"memory"`
	Storage []HardwareComponent `json:"storage"`
}

// ConfigPart describes one hardware slot of a provisioning configuration.
type ConfigPart struct {
	Name   string `json:"name"`
	Cores  *int   `json:"cores,omitempty"`
	SizeGB *int   `json:"sizeGb,omitempty"`
}

// ConfigLocation describes the datacenter a configuration is stocked in.
type ConfigLocation struct {
	ShortName string `json:"shortName"`
	Name      string `json:"name"`
}

// Configuration is one provisioning bundle from the fallback query. A bundle
// implies availability, pricing and per-location stock for its parts.
type Configuration struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Price      float64        `json:"price"`
	StockCount int            `json:"stockCount"`
	Location   ConfigLocation `json:"location"`
	CPU        ConfigPart     `json:"cpu"`
	Memory     ConfigPart     `json:"memory"`
	Storage    ConfigPart     `json:"storage"`
}

// OperatingSystem is one entry of the OS catalog query.
type OperatingSystem struct {
	OSImageID string `json:"osImageId"`
	Name      string `json:"name"`
}
