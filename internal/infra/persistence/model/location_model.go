package model

import (
	"time"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID          string   `gorm:"type:varchar(64);primary_key"`
	Name        string   `gorm:"type:varchar(255);not null"`
	ShortName   string   `gorm:"type:varchar(100);not null;default:''"`
	Kind        string   `gorm:"type:varchar(16);not null;default:'store'"`
	Phone       string   `gorm:"type:varchar(32);not null;default:''"`
	City        string   `gorm:"type:varchar(100);not null;index:idx_locations_on_city"`
	Region      string   `gorm:"type:varchar(100);not null;default:''"`
	Street      string   `gorm:"type:varchar(255);not null;default:''"`
	House       string   `gorm:"type:varchar(32);not null;default:''"`
	Latitude    *float64 `gorm:"type:decimal(10,8)"`
	Longitude   *float64 `gorm:"type:decimal(11,8)"`
	IsPublished bool     `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	WeeklyHours   []LocationWeeklyHoursModel   `gorm:"foreignKey:LocationID"`
	ExceptionDays []LocationExceptionDayModel `gorm:"foreignKey:LocationID"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// LocationWeeklyHoursModel is one weekday row of a location's timetable.
type LocationWeeklyHoursModel struct {
	LocationID string `gorm:"type:varchar(64);primary_key"`
	DayOfWeek  int16  `gorm:"primary_key"` // 0=Sunday..6=Saturday
	OpenTime   string `gorm:"type:varchar(8);not null"`
	CloseTime  string `gorm:"type:varchar(8);not null"`
}

// TableName explicitly sets the table name for GORM.
func (LocationWeeklyHoursModel) TableName() string {
	return "location_weekly_hours"
}

// LocationExceptionDayModel overrides the weekly timetable for one date.
type LocationExceptionDayModel struct {
	LocationID string    `gorm:"type:varchar(64);primary_key"`
	Date       time.Time `gorm:"type:date;primary_key"`
	IsClosed   bool      `gorm:"not null;default:false"`
	OpenTime   *string   `gorm:"type:varchar(8)"`
	CloseTime  *string   `gorm:"type:varchar(8)"`
}

// TableName explicitly sets the table name for GORM.
func (LocationExceptionDayModel) TableName() string {
	return "location_exception_days"
}
