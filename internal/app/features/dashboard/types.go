// internal/app/features/dashboard/types.go

package dashboard

import (
	"encoding/json"
	"time"
)

// Summary holds the dashboard counters. Admin responses use the
// total_events / total_organizations keys; scoped responses rename them
// my_events / my_organizations while keeping the rest of the shape.
type Summary struct {
	Events         int64
	Published      int64
	Organizations  int64
	Participants   int64
	Sessions       int64
	ActiveSponsors int64
	Upcoming       int64
	Ongoing        int64
	Scoped         bool
}

func (s Summary) MarshalJSON() ([]byte, error) {
	m := map[string]int64{
		"published_events":   s.Published,
		"total_participants": s.Participants,
		"total_sessions":     s.Sessions,
		"active_sponsors":    s.ActiveSponsors,
		"upcoming_events":    s.Upcoming,
		"ongoing_events":     s.Ongoing,
	}
	if s.Scoped {
		m["my_events"] = s.Events
		m["my_organizations"] = s.Organizations
	} else {
		m["total_events"] = s.Events
		m["total_organizations"] = s.Organizations
	}
	return json.Marshal(m)
}

// OrgRef is the embedded organization summary on recent-event rows.
type OrgRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecentEvent is one row of the newest-first events list.
type RecentEvent struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Status        string    `json:"status"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	DateRange     string    `json:"date_range"`
	Organization  OrgRef    `json:"organization"`
	Published     bool      `json:"published"`
	Sessions      int64     `json:"session_count"`
	Presentations int64     `json:"presentation_count"`
}

// UpcomingEvent is one row of the soonest-first published events list.
type UpcomingEvent struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	DateRange      string    `json:"date_range"`
	Location       string    `json:"location,omitempty"`
	Organization   string    `json:"organization"`
	DaysUntilStart int       `json:"days_until_start"`
}

// Activity kinds.
const (
	KindEventCreated     = "event_created"
	KindSessionModerated = "session_moderated"
)

// Activity is one row of the merged recent-activity feed.
type Activity struct {
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Link    string    `json:"link"`
}

// Notification priorities.
const (
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Notification kinds.
const (
	KindStartingSoon      = "event_starting_soon"
	KindIncompleteProgram = "incomplete_program"
)

// Notification is one row of the merged notification feed.
type Notification struct {
	Kind     string    `json:"kind"`
	Priority string    `json:"priority"`
	Message  string    `json:"message"`
	Date     time.Time `json:"date"`
	Link     string    `json:"link"`
}

// NotificationFeed is the /dashboard/notifications payload. UnreadCount
// reflects every matched notification, not just the capped list.
type NotificationFeed struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// QuickStats is the windowed-creation counters payload. Organizations is
// present for admins; Memberships is the organizer's lifetime membership
// count, never windowed.
type QuickStats struct {
	TimeframeDays int    `json:"timeframe_days"`
	Events        int64  `json:"events"`
	Sessions      int64  `json:"sessions"`
	Participants  int64  `json:"participants"`
	Organizations *int64 `json:"organizations,omitempty"`
	Memberships   *int64 `json:"my_memberships,omitempty"`
}

// Dashboard is the GET /dashboard payload.
type Dashboard struct {
	Summary          Summary         `json:"summary"`
	RecentEvents     []RecentEvent   `json:"recent_events"`
	UpcomingEvents   []UpcomingEvent `json:"upcoming_events"`
	RecentActivities []Activity      `json:"recent_activities"`
}
