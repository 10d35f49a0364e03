package profile

// NextStreakMilestone returns the next streak milestone above the current
// streak length.
func NextStreakMilestone(current int) int {
	thresholds := []int{5, 10, 15, 20}
	for _, t := range thresholds {
		if t > current {
			return t
		}
	}
	// Beyond 20, every 5 days.
	return ((current / 5) + 1) * 5
}
