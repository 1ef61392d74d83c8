package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentSpecialOffer(t *testing.T) {
	now := time.Date(2026, 11, 20, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(72 * time.Hour)

	t.Run("empty", func(t *testing.T) {
		_, ok := CurrentSpecialOffer(nil, now)
		assert.False(t, ok)
	})

	t.Run("first unexpired", func(t *testing.T) {
		offers := []SpecialOffer{
			{Name: "Summer", ValidUntil: &past},
			{Name: "Black Friday", ValidUntil: &future},
			{Name: "Always"},
		}
		o, ok := CurrentSpecialOffer(offers, now)
		assert.True(t, ok)
		assert.Equal(t, "Black Friday", o.Name)
	})

	t.Run("open ended", func(t *testing.T) {
		offers := []SpecialOffer{{Name: "Summer", ValidUntil: &past}, {Name: "Always"}}
		o, _ := CurrentSpecialOffer(offers, now)
		assert.Equal(t, "Always", o.Name)
	})

	t.Run("all expired falls back to first", func(t *testing.T) {
		offers := []SpecialOffer{{Name: "Summer", ValidUntil: &past}, {Name: "Spring", ValidUntil: &past}}
		o, ok := CurrentSpecialOffer(offers, now)
		assert.True(t, ok)
		assert.Equal(t, "Summer", o.Name)
	})
}

func TestTimeLeft(t *testing.T) {
	now := time.Date(2026, 11, 20, 12, 0, 0, 0, time.UTC)
	until := now.Add(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second)

	assert.Equal(t, Countdown{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}, TimeLeft(SpecialOffer{ValidUntil: &until}, now))

	expired := now.Add(-time.Second)
	assert.Equal(t, Countdown{}, TimeLeft(SpecialOffer{ValidUntil: &expired}, now))
	assert.Equal(t, Countdown{}, TimeLeft(SpecialOffer{}, now))
}
