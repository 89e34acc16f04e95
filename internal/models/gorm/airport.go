package gorm

import "time"

// Airport is a locally cached airport record with geographic coordinates,
// keyed by IATA code. Rows are written back from successful airport-detail
// lookups so repeated searches skip the upstream provider.
type Airport struct {
	IATA      string    `gorm:"column:iata;primaryKey;type:varchar(3)"`
	ICAO      string    `gorm:"column:icao;type:varchar(4);index"`
	Name      string    `gorm:"column:name;type:text"`
	Latitude  float64   `gorm:"column:latitude;not null"`
	Longitude float64   `gorm:"column:longitude;not null"`
	Timezone  string    `gorm:"column:timezone;type:varchar(50)"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
