package models

// SubjectProfile is the minimal display read-model consumed from the
// external identity/profile provider. The core never writes it; it
// exists so delegated views can show who is being tracked without
// reaching into the provider's own storage.
type SubjectProfile struct {
	SubjectID    string `json:"subject_id" db:"subject_id"`
	DisplayName  string `json:"display_name" db:"display_name"`
	VehicleBrand string `json:"vehicle_brand" db:"vehicle_brand"`
	VehicleModel string `json:"vehicle_model" db:"vehicle_model"`
	VehiclePlate string `json:"vehicle_plate" db:"vehicle_plate"`
	VehicleColor string `json:"vehicle_color" db:"vehicle_color"`
}

// AlertSummary bundles an alert with its subject's display profile for
// internal service-to-service reads
type AlertSummary struct {
	Alert   Alert          `json:"alert"`
	Profile SubjectProfile `json:"profile"`
}
