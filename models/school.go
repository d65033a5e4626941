package models

import (
	"strings"
	"time"
)

type School struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:255;not null" json:"name"`
	Address string  `gorm:"size:255;not null" json:"address"`
	City    string  `gorm:"size:100;not null" json:"city"`
	State   string  `gorm:"size:100;not null" json:"state"`
	Contact string  `gorm:"size:15;not null" json:"contact"`
	EmailID string  `gorm:"column:email_id;size:255;uniqueIndex;not null" json:"email_id"`
	Image   *string `json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DigitsOnly strips everything but ASCII digits from a contact number.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Filter returns the schools whose name, city, state or address contains
// query as a case-insensitive substring. An empty or whitespace-only query
// returns the input unchanged.
func Filter(schools []School, query string) []School {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return schools
	}
	out := make([]School, 0, len(schools))
	for _, s := range schools {
		for _, v := range []string{s.Name, s.City, s.State, s.Address} {
			if strings.Contains(strings.ToLower(v), q) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
