package entities

// Activity is a single logged workout. Unit fields are only meaningful when
// their paired value field is non-nil.
type Activity struct {
	ActivityID     int      `gorm:"primaryKey;autoIncrement" json:"activity_id"`
	UserID         int      `gorm:"index" json:"user_id"`
	ActivityType   string   `gorm:"not null" json:"activity_type"`
	Distance       *float64 `json:"distance"`
	DistanceUnits  *string  `json:"distance_units"`
	Time           *float64 `json:"time"`
	TimeUnits      *string  `json:"time_units"`
	Speed          *float64 `json:"speed"`
	SpeedUnits     *string  `json:"speed_units"`
	CaloriesBurned *int     `json:"calories_burned"`
	ActivityDate   string   `gorm:"index;not null" json:"activity_date"`
}
