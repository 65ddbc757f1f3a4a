package store

// HabitCount is one bar of the stats chart.
type HabitCount struct {
	HabitID     string
	Name        string
	Color       string
	Completions int
}

// Summary aggregates the numbers the stats view shows.
type Summary struct {
	ActiveHabits     int
	TotalCompletions int
	PerHabit         []HabitCount
}

// Stats computes the aggregate view over the habit collection. Pure
// query; per-habit entries follow insertion order.
func (s *Store) Stats() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary := Summary{
		ActiveHabits: len(s.habits),
		PerHabit:     make([]HabitCount, 0, len(s.habits)),
	}
	for _, h := range s.habits {
		count := len(h.CompletedDates)
		summary.TotalCompletions += count
		summary.PerHabit = append(summary.PerHabit, HabitCount{
			HabitID:     h.ID,
			Name:        h.Name,
			Color:       h.Color,
			Completions: count,
		})
	}
	return summary
}
