package domain

type SummaryStatus string

const (
	SummaryStatusAvailable   SummaryStatus = "available"
	SummaryStatusMaybe       SummaryStatus = "maybe"
	SummaryStatusUnavailable SummaryStatus = "unavailable"
	SummaryStatusBooked      SummaryStatus = "booked"
	SummaryStatusNotSet      SummaryStatus = "not_set"
)

// Разбиение всех запрошенных инженеров на пять непересекающихся списков
type AvailabilitySummary struct {
	Available   []string `json:"available"`
	Maybe       []string `json:"maybe"`
	Unavailable []string `json:"unavailable"`
	Booked      []string `json:"booked"`
	NotSet      []string `json:"not_set"`
}

func NewAvailabilitySummary() AvailabilitySummary {
	return AvailabilitySummary{
		Available:   make([]string, 0),
		Maybe:       make([]string, 0),
		Unavailable: make([]string, 0),
		Booked:      make([]string, 0),
		NotSet:      make([]string, 0),
	}
}

// Add помещает инженера в список, соответствующий статусу
func (s *AvailabilitySummary) Add(engineer string, status SummaryStatus) {
	switch status {
	case SummaryStatusAvailable:
		s.Available = append(s.Available, engineer)
	case SummaryStatusMaybe:
		s.Maybe = append(s.Maybe, engineer)
	case SummaryStatusUnavailable:
		s.Unavailable = append(s.Unavailable, engineer)
	case SummaryStatusBooked:
		s.Booked = append(s.Booked, engineer)
	default:
		s.NotSet = append(s.NotSet, engineer)
	}
}
