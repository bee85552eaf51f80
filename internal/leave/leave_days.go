package leave

import "time"

// RequestedDays turns a date range with half-day markers into a day count.
// A single day is 0.5 when both halves name the same half, otherwise 1.
// Across multiple days the first day contributes 0.5 when it starts in the
// afternoon, the last day 0.5 when it ends in the morning, and every day in
// between counts in full.
func RequestedDays(startDate, endDate time.Time, startHalf, endHalf string) float64 {
	if startDate.Equal(endDate) {
		if startHalf == endHalf {
			return 0.5
		}
		return 1
	}

	days := 0.0
	if startHalf == HalfAfternoon {
		days += 0.5
	} else {
		days += 1
	}
	if endHalf == HalfMorning {
		days += 0.5
	} else {
		days += 1
	}

	interior := int(endDate.Sub(startDate).Hours()/24) - 1
	if interior > 0 {
		days += float64(interior)
	}
	return days
}

// dayPortion reports how much of one day inside the range is taken: 0.5 for
// a half-day edge, 1 otherwise.
func dayPortion(day, startDate, endDate time.Time, startHalf, endHalf string) float64 {
	if startDate.Equal(endDate) {
		if startHalf == endHalf {
			return 0.5
		}
		return 1
	}
	if day.Equal(startDate) && startHalf == HalfAfternoon {
		return 0.5
	}
	if day.Equal(endDate) && endHalf == HalfMorning {
		return 0.5
	}
	return 1
}
