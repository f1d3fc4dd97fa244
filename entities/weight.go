package entities

// LatestWeight is the most recent weight reading for a user. When Found is
// false the remaining fields are absent regardless of their literal values.
type LatestWeight struct {
	Weight      *float64 `json:"weight"`
	WeightUnits *string  `json:"weight_units"`
	WeightKg    *float64 `json:"weight_kg"`
	Date        *string  `json:"date"`
	Notes       *string  `json:"notes"`
	Found       bool     `json:"found"`
}
