package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the calendar-day format used for directory dates.
const DateLayout = time.DateOnly

// Date is a calendar day serialized as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate parses a "YYYY-MM-DD" string.
func NewDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}

	return Date{Time: t}, nil
}

// MustDate is like [NewDate] but panics on malformed input.
// Use it only for static seed data.
func MustDate(s string) Date {
	d, err := NewDate(s)
	if err != nil {
		panic(err)
	}

	return d
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := NewDate(s)
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

// Profile is an entry of the user directory served under /api/users.
// It is independent of the credential store.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt Date   `json:"createdAt"`
}

// ProfileView is a [Profile] decorated with derived presentation fields.
type ProfileView struct {
	Profile

	// DisplayName is the name in title case.
	DisplayName string `json:"displayName"`

	// MemberSince is the relative age of the profile, e.g. "2 years ago".
	MemberSince string `json:"memberSince"`

	// IsActive is a simulated activity flag. Only set in listings.
	IsActive *bool `json:"isActive,omitempty"`
}

// ProfileDetails is the single-profile read model.
type ProfileDetails struct {
	ProfileView

	// ExternalProfile is the raw document fetched from the external profile
	// API, or null when the fetch failed.
	ExternalProfile json.RawMessage `json:"externalProfile"`
}

// ProfileUpdate is a partial update; empty fields are left unchanged.
type ProfileUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == "" && u.Email == ""
}

// ProfileStats summarizes the user directory.
type ProfileStats struct {
	TotalUsers           int                  `json:"totalUsers"`
	RecentUsers          int                  `json:"recentUsers"`
	UsersByMonth         map[string][]Profile `json:"usersByMonth"`
	AverageUsersPerMonth float64              `json:"averageUsersPerMonth"`
}
