// Package phh converts played hands to the Poker Hand History format and
// reads and writes sectioned .phhs files.
package phh

import "time"

// HandHistory represents a single poker hand encoded in PHH format.
type HandHistory struct {
	Variant           string   `toml:"variant"`
	Table             string   `toml:"table,omitempty"`
	SeatCount         int      `toml:"seat_count,omitempty"`
	Seats             []int    `toml:"seats,omitempty"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles"`
	MinBet            int      `toml:"min_bet"`
	StartingStacks    []int    `toml:"starting_stacks"`
	FinishingStacks   []int    `toml:"finishing_stacks,omitempty"`
	Winnings          []int    `toml:"winnings,omitempty"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	HandID            string   `toml:"hand"`
	Time              string   `toml:"time,omitempty"`
	TimeZone          string   `toml:"time_zone,omitempty"`
	Day               int      `toml:"day,omitempty"`
	Month             int      `toml:"month,omitempty"`
	Year              int      `toml:"year,omitempty"`

	Board     []string  `toml:"-"`
	Timestamp time.Time `toml:"-"`
}

// Variant is the PHH code for No-Limit Texas Hold'em.
const Variant = "NT"

func populateTimeFields(hist *HandHistory) {
	t := hist.Timestamp
	if t.IsZero() {
		return
	}
	utc := t.UTC()
	hist.Time = utc.Format("15:04:05")
	hist.TimeZone = "UTC"
	hist.Day = utc.Day()
	hist.Month = int(utc.Month())
	hist.Year = utc.Year()
}
