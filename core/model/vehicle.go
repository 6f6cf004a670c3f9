package model

// Vehicle represents one unit of the fleet.
type Vehicle struct {
	ID string `json:"id"`
	// Name holds the license plate. Uniqueness is not enforced.
	Name               string  `json:"name"`
	Make               string  `json:"make"`
	Model              string  `json:"model"`
	Year               int     `json:"year"`
	Mileage            int     `json:"mileage"`
	DailyOperationCost float64 `json:"dailyOperationCost"`
	IsActive           bool    `json:"isActive"`
}
