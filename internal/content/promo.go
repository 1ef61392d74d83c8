package content

import "time"

// Countdown is the time remaining until an offer expires.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// CurrentSpecialOffer picks the first offer that has not expired, falling
// back to the first offer. ok is false only when offers is empty.
func CurrentSpecialOffer(offers []SpecialOffer, now time.Time) (SpecialOffer, bool) {
	if len(offers) == 0 {
		return SpecialOffer{}, false
	}
	for _, o := range offers {
		if o.ValidUntil == nil || o.ValidUntil.After(now) {
			return o, true
		}
	}
	return offers[0], true
}

func TimeLeft(offer SpecialOffer, now time.Time) Countdown {
	if offer.ValidUntil == nil {
		return Countdown{}
	}
	d := offer.ValidUntil.Sub(now)
	if d <= 0 {
		return Countdown{}
	}

	total := int(d / time.Second)
	return Countdown{
		Days:    total / 86400,
		Hours:   total % 86400 / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}
