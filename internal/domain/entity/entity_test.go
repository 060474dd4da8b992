package entity

import (
	"math"
	"testing"
	"time"

	domainerrors "storelocator/internal/domain/errors"
	"storelocator/internal/errors"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestAddress_Validate(t *testing.T) {
	tests := []struct {
		name    string
		address Address
		wantErr error
	}{
		{name: "no coordinates", address: Address{City: "Moscow"}},
		{name: "full coordinates", address: Address{Latitude: ptr(55.7558), Longitude: ptr(37.6173)}},
		{name: "latitude only", address: Address{Latitude: ptr(55.7558)}, wantErr: ErrPartialCoordinates},
		{name: "longitude only", address: Address{Longitude: ptr(37.6173)}, wantErr: ErrPartialCoordinates},
		{name: "latitude out of range", address: Address{Latitude: ptr(91.0), Longitude: ptr(0.0)}, wantErr: ErrCoordinatesOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.address.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))
		})
	}
}

func TestCoordinates_Validate(t *testing.T) {
	assert.NoError(t, Coordinates{Latitude: -90, Longitude: 180}.Validate())
	assert.Error(t, Coordinates{Latitude: 0, Longitude: -180.5}.Validate())
	assert.Error(t, Coordinates{Latitude: math.NaN(), Longitude: 0}.Validate())
	assert.Error(t, Coordinates{Latitude: 0, Longitude: math.Inf(1)}.Validate())
}

func TestCoordinates_PointIsLongitudeFirst(t *testing.T) {
	point := Coordinates{Latitude: 55.75, Longitude: 37.61}.Point()

	assert.Equal(t, 37.61, point.Lon())
	assert.Equal(t, 55.75, point.Lat())
}

func TestAddress_StreetLine(t *testing.T) {
	assert.Equal(t, "Tverskaya 7", Address{Street: "Tverskaya", House: "7"}.StreetLine())
	assert.Equal(t, "Tverskaya", Address{Street: "Tverskaya"}.StreetLine())
}

func TestLocation_CloneIsDeep(t *testing.T) {
	original := &Location{
		ID:      "store-1",
		Address: Address{Latitude: ptr(1.0), Longitude: ptr(2.0)},
		Schedule: Schedule{
			Weekly:     []WeeklyHours{{Day: time.Monday, OpenTime: "09:00:00", CloseTime: "18:00:00"}},
			Exceptions: []ExceptionDay{{Date: civil.Date{Year: 2024, Month: time.January, Day: 1}, OpenTime: ptr("10:00:00")}},
		},
	}

	cloned := original.Clone()
	*cloned.Address.Latitude = 9
	cloned.Schedule.Weekly[0].OpenTime = "10:00:00"
	*cloned.Schedule.Exceptions[0].OpenTime = "11:00:00"

	assert.Equal(t, 1.0, *original.Address.Latitude)
	assert.Equal(t, "09:00:00", original.Schedule.Weekly[0].OpenTime)
	assert.Equal(t, "10:00:00", *original.Schedule.Exceptions[0].OpenTime)
	assert.Nil(t, (*Location)(nil).Clone())
}

func TestWeeklyHours_IsNonWorking(t *testing.T) {
	tests := []struct {
		open, closing string
		want          bool
	}{
		{Midnight, Midnight, true},
		{"00:00", "00:00", true},
		{"0:00:00", "0:00:00", true},
		{" 00:00:00", "00:00 ", true},
		{"00:00:00", "23:59:59", false},
		{"09:00:00", "09:00:00", false},
		{"??", Midnight, false},
		{"", "", false},
	}

	for _, tt := range tests {
		hours := WeeklyHours{Day: time.Monday, OpenTime: tt.open, CloseTime: tt.closing}
		assert.Equal(t, tt.want, hours.IsNonWorking(), "%q-%q", tt.open, tt.closing)
	}
}

func TestSchedule_Lookups(t *testing.T) {
	newYear := civil.Date{Year: 2024, Month: time.January, Day: 1}
	schedule := Schedule{
		Weekly:     []WeeklyHours{{Day: time.Sunday, OpenTime: Midnight, CloseTime: Midnight}},
		Exceptions: []ExceptionDay{{Date: newYear, IsClosed: true}},
	}

	sunday, ok := schedule.WeeklyFor(time.Sunday)
	require.True(t, ok)
	assert.True(t, sunday.IsNonWorking())

	_, ok = schedule.WeeklyFor(time.Monday)
	assert.False(t, ok)

	exception, ok := schedule.ExceptionFor(newYear)
	require.True(t, ok)
	assert.True(t, exception.IsClosed)

	assert.False(t, schedule.IsEmpty())
	assert.True(t, Schedule{}.IsEmpty())
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		raw     string
		want    civil.Time
		wantErr bool
	}{
		{raw: "09:00:00", want: civil.Time{Hour: 9}},
		{raw: "23:59:59", want: civil.Time{Hour: 23, Minute: 59, Second: 59}},
		{raw: "18:30", want: civil.Time{Hour: 18, Minute: 30}},
		{raw: " 07:05:00 ", want: civil.Time{Hour: 7, Minute: 5}},
		{raw: "", wantErr: true},
		{raw: "9am", wantErr: true},
		{raw: "25:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSecondsOfDay(t *testing.T) {
	assert.Equal(t, 0, SecondsOfDay(civil.Time{}))
	assert.Equal(t, 9*3600+30*60+15, SecondsOfDay(civil.Time{Hour: 9, Minute: 30, Second: 15}))
}
