package entities

// Biometric is a per-day body measurement. The backend keeps at most one row
// per user per date; posting an existing date updates that row.
type Biometric struct {
	BiometricID int      `gorm:"primaryKey;autoIncrement" json:"biometric_id"`
	UserID      int      `gorm:"index" json:"user_id"`
	Date        string   `gorm:"index;not null" json:"date"`
	Weight      *float64 `json:"weight"`
	WeightUnits *string  `json:"weight_units"`
	AvgHr       *int     `json:"avg_hr"`
	HighHr      *int     `json:"high_hr"`
	LowHr       *int     `json:"low_hr"`
	Notes       *string  `json:"notes"`
}
