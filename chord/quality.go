package chord

import "github.com/jsphweid/harmonia/interval"

// GetDegree returns the first interval of the chord on scale degree n,
// counting compound intervals with their simple degree (9 is 2).
func (c *Chord) GetDegree(n int) (interval.Interval, bool) {
	degree := (n - 1) % 7
	for _, i := range c.intervals {
		if (i.Number()-1)%7 == degree {
			return i, true
		}
	}
	return interval.Interval{}, false
}

func (c *Chord) degreeQuality(n int) string {
	if i, ok := c.GetDegree(n); ok {
		return i.Quality()
	}
	return ""
}

func (c *Chord) IsMajor() bool {
	return c.degreeQuality(3) == "M"
}

func (c *Chord) IsMinor() bool {
	return c.degreeQuality(3) == "m"
}

// Quality names the chord from the qualities of its degrees. Branch order
// matters: several branches can match one degree set and the first wins.
// Anything unmatched is "other".
func (c *Chord) Quality() string {
	second := c.degreeQuality(2)
	third := c.degreeQuality(3)
	fourth := c.degreeQuality(4)
	fifth := c.degreeQuality(5)
	sixth := c.degreeQuality(6)
	seventh := c.degreeQuality(7)

	// eleventh and thirteenth voicings
	if third == "" && seventh == "m" && second == "M" && fourth == "P" {
		return "dominant-11th"
	}
	if seventh == "m" && third == "M" && sixth == "M" {
		return "dominant-13th"
	}

	switch third {
	case "M":
		if fifth == "A" {
			if seventh == "m" {
				return "augmented-seventh"
			}
			return "augmented"
		}
		if seventh == "m" {
			if second == "M" {
				return "dominant-ninth"
			}
			return "dominant"
		}
		if seventh == "M" {
			if sixth == "M" {
				return "major-13th"
			}
			if second == "M" {
				return "major-ninth"
			}
			return "major-seventh"
		}
		if sixth == "M" {
			return "major-sixth"
		}
		return "major"

	case "m":
		if fifth == "d" {
			if seventh == "d" {
				return "diminished-seventh"
			}
			if seventh == "m" {
				return "half-diminished"
			}
			return "diminished"
		}
		if seventh == "m" {
			if second == "M" {
				return "minor-ninth"
			}
			return "minor-seventh"
		}
		if sixth == "M" {
			return "minor-sixth"
		}
		if seventh == "M" {
			return "major-minor"
		}
		return "minor"
	}

	if fifth == "P" || fifth == "" {
		if second == "M" {
			return "suspended-second"
		}
		if fourth == "P" {
			return "suspended-fourth"
		}
	}
	return "other"
}

// slots a chord of each size has to cover to count as a tertian chord.
var slots = map[int][]string{
	3: {"first", "third", "fifth"},
	4: {"first", "third", "fifth", "seventh"},
}

// slotName is the chord-member name of an interval's diatonic class.
func slotName(i interval.Interval) string {
	if base := i.Base(); base != "unison" {
		return base
	}
	return "first"
}

// ChordType classifies the chord by size and coverage: "dyad", "triad" or
// "trichord", "tetrad", or "unknown". An interval fills its own slot or,
// failing that, the slot of its inversion.
func (c *Chord) ChordType() string {
	n := len(c.intervals)
	if n == 2 {
		return "dyad"
	}
	want, ok := slots[n]
	if !ok {
		return "unknown"
	}

	has := make(map[string]bool, len(want))
	for _, name := range want {
		has[name] = false
	}
	for _, i := range c.intervals {
		if name := slotName(i); isSlot(has, name) {
			has[name] = true
		} else if name := slotName(i.Invert()); isSlot(has, name) {
			has[name] = true
		}
	}

	for _, filled := range has {
		if !filled {
			if n == 3 {
				return "trichord"
			}
			return "unknown"
		}
	}
	if n == 3 {
		return "triad"
	}
	return "tetrad"
}

func isSlot(has map[string]bool, name string) bool {
	_, ok := has[name]
	return ok
}
