package auction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mikemacmadeit/wildlife-auction-sub007/internal/models"
)

func TestIsBiddable(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		auction    models.Auction
		wantOK     bool
		wantReason Reason
	}{
		{
			name:       "active_before_explicit_end",
			auction:    models.Auction{Status: models.StatusActive, EndAt: now.Add(time.Hour)},
			wantOK:     true,
			wantReason: ReasonBiddable,
		},
		{
			name:       "active_past_explicit_end",
			auction:    models.Auction{Status: models.StatusActive, EndAt: now.Add(-time.Second)},
			wantOK:     false,
			wantReason: ReasonEnded,
		},
		{
			name:       "active_exactly_at_end",
			auction:    models.Auction{Status: models.StatusActive, EndAt: now},
			wantOK:     false,
			wantReason: ReasonEnded,
		},
		{
			name: "active_virtual_schedule_still_running",
			auction: models.Auction{
				Status:   models.StatusActive,
				StartAt:  now.Add(-time.Hour),
				Duration: 2 * time.Hour,
			},
			wantOK:     true,
			wantReason: ReasonBiddable,
		},
		{
			name: "active_virtual_schedule_elapsed",
			auction: models.Auction{
				Status:   models.StatusActive,
				StartAt:  now.Add(-3 * time.Hour),
				Duration: 2 * time.Hour,
			},
			wantOK:     false,
			wantReason: ReasonEnded,
		},
		{
			name:       "active_no_end_time_computed_yet",
			auction:    models.Auction{Status: models.StatusActive},
			wantOK:     true,
			wantReason: ReasonBiddable,
		},
		{
			name:       "draft",
			auction:    models.Auction{Status: models.StatusDraft},
			wantOK:     false,
			wantReason: ReasonDraft,
		},
		{
			name:       "cancelled_is_terminal",
			auction:    models.Auction{Status: models.StatusCancelled, EndAt: now.Add(time.Hour)},
			wantOK:     false,
			wantReason: ReasonCancelled,
		},
		{
			name:       "ended_is_terminal",
			auction:    models.Auction{Status: models.StatusEnded, EndAt: now.Add(time.Hour)},
			wantOK:     false,
			wantReason: ReasonEnded,
		},
		{
			name:       "unknown_status",
			auction:    models.Auction{Status: models.AuctionStatus("archived")},
			wantOK:     false,
			wantReason: ReasonNotActive,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ok, reason := IsBiddable(tc.auction, now)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.wantReason, reason)
		})
	}
}

func TestEffectiveEndAt(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	explicit := start.Add(48 * time.Hour)

	// Explicit end time wins over the virtual schedule.
	a := models.Auction{StartAt: start, Duration: 24 * time.Hour, EndAt: explicit}
	require.Equal(t, explicit, EffectiveEndAt(a))

	// Derived from start + duration when no explicit end is set.
	a = models.Auction{StartAt: start, Duration: 24 * time.Hour}
	require.Equal(t, start.Add(24*time.Hour), EffectiveEndAt(a))

	// Nothing to derive from: zero means no authoritative end yet.
	require.True(t, EffectiveEndAt(models.Auction{StartAt: start}).IsZero())
	require.True(t, EffectiveEndAt(models.Auction{}).IsZero())
}
