package event

// Policy carries the display-convention exclusions. Both rules vary by
// product surface, so they stay configurable instead of hardwired.
type Policy struct {
	ExcludeThrowIns  bool
	ExcludePenalties bool
}

// DefaultPolicy returns the usual display conventions: throw-ins out
// of pass views, penalties kept in shot views.
func DefaultPolicy() Policy {
	return Policy{
		ExcludeThrowIns:  true,
		ExcludePenalties: false,
	}
}

// PassCriteria narrows pass collection. MatchID is required; Team and
// Player are optional restrictions.
type PassCriteria struct {
	MatchID         int64
	Team            string
	Player          string
	ExcludeThrowIns bool
}

// ShotCriteria narrows shot collection. MatchID is required; Team and
// Player are optional restrictions.
type ShotCriteria struct {
	MatchID          int64
	Team             string
	Player           string
	ExcludePenalties bool
}
