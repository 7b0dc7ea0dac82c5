package car

// CreateRequest carries only the checks made before sending; everything else
// is left to the server's 422.
type CreateRequest struct {
	UserID       int     `json:"user_id" validate:"gt=0"`
	Make         string  `json:"make" validate:"notblank"`
	Model        string  `json:"model" validate:"notblank"`
	Year         int     `json:"year" validate:"caryear"`
	LicensePlate string  `json:"license_plate" validate:"notblank"`
	VIN          *string `json:"vin"`
	Color        *string `json:"color"`
}

type UpdateRequest struct {
	UserID       *int    `json:"user_id,omitempty"`
	Make         *string `json:"make,omitempty"`
	Model        *string `json:"model,omitempty"`
	Year         *int    `json:"year,omitempty"`
	LicensePlate *string `json:"license_plate,omitempty"`
	VIN          *string `json:"vin,omitempty"`
	Color        *string `json:"color,omitempty"`
}
