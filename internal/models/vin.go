package models

// VehicleInfo is the decoded result for a VIN, as reported by the NHTSA vPIC
// service. Fields other than make/model/year may be empty.
type VehicleInfo struct {
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      string `json:"year"`
	Engine    string `json:"engine,omitempty"`
	BodyClass string `json:"body_class,omitempty"`
	FuelType  string `json:"fuel_type,omitempty"`
	DriveType string `json:"drive_type,omitempty"`
}

type VinLookupResponse struct {
	Vehicle         VehicleInfo `json:"vehicle"`
	CompatibleParts []Product   `json:"compatible_parts"`
}
