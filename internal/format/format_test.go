package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_ClassNames_Drops_Empty_And_Duplicate_Classes(t *testing.T) {
	require.Equal(t, "px-4 py-2 text-sm", ClassNames("px-4 py-2", "", "  text-sm px-4 "))
	require.Equal(t, "", ClassNames())
}

func Test_Currency(t *testing.T) {
	cases := map[string]struct {
		amount float64
		code   string
	}{
		"$1,234.50":     {1234.5, "USD"},
		"-€0.99":        {-0.99, "eur"},
		"¥1,500":        {1500, "JPY"},
		"12.00 CHF":     {12, "CHF"},
		"$1,000,000.00": {1000000, "USD"},
	}

	for want, c := range cases {
		require.Equal(t, want, Currency(c.amount, c.code))
	}
}

func Test_Number_And_Percent(t *testing.T) {
	require.Equal(t, "1,234,567", Number(1234567))
	require.Equal(t, "25.0%", Percent(0.25))
}

func Test_Dates(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)

	require.Equal(t, "Mar 5, 2024", Date(ts))
	require.Equal(t, "Mar 5, 2024 2:07 PM", DateTime(ts))
}

func Test_RelativeTime(t *testing.T) {
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

	require.Equal(t, "just now", RelativeTime(now.Add(-10*time.Second), now))
	require.Equal(t, "1 minute ago", RelativeTime(now.Add(-time.Minute), now))
	require.Equal(t, "5 hours ago", RelativeTime(now.Add(-5*time.Hour), now))
	require.Equal(t, "in 2 days", RelativeTime(now.Add(48*time.Hour), now))
	require.Equal(t, "Jan 1, 2024", RelativeTime(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), now))
}

func Test_Head_And_Truncate(t *testing.T) {
	require.Equal(t, "héll", Head("héllo", 4))
	require.Equal(t, "héllo", Head("héllo", 10))
	require.Equal(t, "", Head("héllo", 0))
	require.Equal(t, "a\xffb", Head("a\xffbc", 3))

	require.Equal(t, "short", Truncate("short", 10))
	require.Equal(t, "a long…", Truncate("a long sentence", 8))
}

func Test_Slugify_And_Initials(t *testing.T) {
	require.Equal(t, "summer-sale-2024", Slugify("  Summer Sale: 2024! "))
	require.Equal(t, "AL", Initials("ada lovelace byron"))
	require.Equal(t, "", Initials("   "))
}
