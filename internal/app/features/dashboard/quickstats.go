// internal/app/features/dashboard/quickstats.go

package dashboard

import (
	"context"
	"strconv"

	"github.com/confhub/confhub/internal/app/system/authz"
)

const defaultTimeframeDays = 30

// ParseTimeframeDays parses the caller-supplied window size. Anything
// that is not a positive integer falls back to the 30-day default.
func ParseTimeframeDays(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultTimeframeDays
	}
	return n
}

// QuickStats counts entities created inside the trailing window. Admins
// additionally get windowed organization creations; organizers instead
// get their lifetime membership count, which is never windowed.
func (a *Aggregator) QuickStats(ctx context.Context, p authz.Principal, timeframeDays int) (*QuickStats, error) {
	if timeframeDays <= 0 {
		timeframeDays = defaultTimeframeDays
	}

	sc, err := a.resolveScope(ctx, p)
	if err != nil {
		return nil, err
	}
	now := a.now().UTC()
	from := now.AddDate(0, 0, -timeframeDays)

	out := &QuickStats{TimeframeDays: timeframeDays}
	if out.Events, err = a.store.CountEventsCreatedSince(ctx, sc, from); err != nil {
		return nil, err
	}
	if out.Sessions, err = a.store.CountSessionsCreatedSince(ctx, sc, from); err != nil {
		return nil, err
	}
	if out.Participants, err = a.store.CountParticipantsCreatedSince(ctx, sc, from); err != nil {
		return nil, err
	}

	if p.IsAdmin() {
		orgs, err := a.store.CountOrganizationsCreatedSince(ctx, sc, from)
		if err != nil {
			return nil, err
		}
		out.Organizations = &orgs
		return out, nil
	}

	memberships, err := a.store.MembershipCount(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	out.Memberships = &memberships
	return out, nil
}
