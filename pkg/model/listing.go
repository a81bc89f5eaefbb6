package model

import (
	"fmt"
	"time"
)

// Listing is a rentable driveway parking space with a recurring weekly
// availability window. AvailableDays uses weekday indices 0=Sunday..6=Saturday.
type Listing struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	OwnerPhone    string    `json:"owner_phone" bson:"owner_phone" validate:"required,e164"`
	Street        string    `json:"street" bson:"street" validate:"required,min=2,max=200"`
	City          string    `json:"city" bson:"city" validate:"required,min=2,max=50"`
	Region        string    `json:"region" bson:"region" validate:"required,min=2,max=50"`
	PostalCode    string    `json:"postal_code" bson:"postal_code" validate:"required,min=3,max=10"`
	OpenTime      string    `json:"open_time" bson:"open_time" validate:"required,valid_clock_time"`
	CloseTime     string    `json:"close_time" bson:"close_time" validate:"required,valid_clock_time"`
	AvailableDays []int     `json:"available_days" bson:"available_days" validate:"required,valid_week_days"`
	HourlyRate    float64   `json:"hourly_rate" bson:"hourly_rate" validate:"gte=0"`
	PhotoURL      string    `json:"photo_url,omitempty" bson:"photo_url" validate:"omitempty,url"`
	Active        bool      `json:"active" bson:"active"`
	TimeZone      string    `json:"time_zone,omitempty" bson:"time_zone" validate:"omitempty,timezone"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

type ListingUpdate struct {
	OwnerPhone    string   `json:"owner_phone,omitempty" validate:"omitempty,e164"`
	Street        string   `json:"street,omitempty" validate:"omitempty,min=2,max=200"`
	City          string   `json:"city,omitempty" validate:"omitempty,min=2,max=50"`
	Region        string   `json:"region,omitempty" validate:"omitempty,min=2,max=50"`
	PostalCode    string   `json:"postal_code,omitempty" validate:"omitempty,min=3,max=10"`
	OpenTime      string   `json:"open_time,omitempty" validate:"omitempty,valid_clock_time"`
	CloseTime     string   `json:"close_time,omitempty" validate:"omitempty,valid_clock_time"`
	AvailableDays []int    `json:"available_days,omitempty" validate:"omitempty,valid_week_days"`
	HourlyRate    *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gte=0"`
	PhotoURL      *string  `json:"photo_url,omitempty" validate:"omitempty"`
	Active        *bool    `json:"active,omitempty"`
	TimeZone      string   `json:"time_zone,omitempty" validate:"omitempty,timezone"`
}

// FullAddress renders the address the way the assistant quotes it back to
// drivers: "1 Main St, Springfield, CA 90210".
func (l *Listing) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", l.Street, l.City, l.Region, l.PostalCode)
}

// AvailableOn reports whether the listing accepts parking on the given
// weekday (0=Sunday..6=Saturday).
func (l *Listing) AvailableOn(weekday int) bool {
	for _, d := range l.AvailableDays {
		if d == weekday {
			return true
		}
	}
	return false
}
