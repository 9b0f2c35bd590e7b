package combat

// Stats is one side's combat tally.
type Stats struct {
	Strikes     int
	DamageDealt float64
	DamageTaken float64
}

// Add accumulates another tally into s.
func (s *Stats) Add(o Stats) {
	s.Strikes += o.Strikes
	s.DamageDealt += o.DamageDealt
	s.DamageTaken += o.DamageTaken
}
