package fx

import (
	"math/rand"
	"time"
)

const (
	typeStartDelay = 500 * time.Millisecond
	typeMinDelay   = 80 * time.Millisecond
	typeDelaySpan  = 70 * time.Millisecond
	blinkPeriod    = time.Second
)

// Typewriter reveals a string one rune at a time and then blinks a cursor
type Typewriter struct {
	text  []rune
	shown int
	wait  time.Duration
	rng   *rand.Rand

	blinking bool
	blinkAge time.Duration
}

// NewTypewriter starts typing text after a short initial delay
func NewTypewriter(text string, rng *rand.Rand) *Typewriter {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Typewriter{
		text: []rune(text),
		wait: typeStartDelay,
		rng:  rng,
	}
}

// Update advances the animation by dt
func (t *Typewriter) Update(dt time.Duration) {
	if t.blinking {
		t.blinkAge = (t.blinkAge + dt) % blinkPeriod
		return
	}

	t.wait -= dt
	for t.wait <= 0 && !t.blinking {
		if t.shown < len(t.text) {
			t.shown++
			t.wait += t.nextDelay()
			continue
		}
		// One extra delay passes after the last rune before the cursor blinks
		t.blinking = true
		t.blinkAge = (-t.wait) % blinkPeriod
	}
}

func (t *Typewriter) nextDelay() time.Duration {
	return typeMinDelay + time.Duration(t.rng.Float64()*float64(typeDelaySpan))
}

// Text returns the portion typed so far
func (t *Typewriter) Text() string {
	return string(t.text[:t.shown])
}

// Done reports whether typing finished and the cursor is blinking
func (t *Typewriter) Done() bool {
	return t.blinking
}

// CursorVisible is always true while typing; afterwards the cursor is shown
// for the first half of each blink period.
func (t *Typewriter) CursorVisible() bool {
	if !t.blinking {
		return true
	}
	return t.blinkAge < blinkPeriod/2
}
