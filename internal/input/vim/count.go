package vim

import "math"

// CountState tracks count prefix accumulation during parsing.
type CountState struct {
	// Value is the accumulated count value.
	Value int

	// Active indicates if a count is being accumulated.
	Active bool
}

// NewCountState creates a new count state.
func NewCountState() *CountState {
	return &CountState{}
}

// Reset clears the count state.
func (c *CountState) Reset() {
	c.Value = 0
	c.Active = false
}

// AccumulateDigit adds a digit to the count.
// Returns true if the digit was accepted.
// Only accepts ASCII digits 0-9.
func (c *CountState) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}

	digit := int(r - '0')

	// Special case: '0' at the start is not a count, it's a motion
	if !c.Active && digit == 0 {
		return false
	}

	c.Active = true

	// Guard against integer overflow
	if c.Value > (math.MaxInt-digit)/10 {
		c.Value = math.MaxInt / 10
		return true
	}

	c.Value = c.Value*10 + digit
	return true
}

// Get returns the effective count (1 if no count was specified).
func (c *CountState) Get() int {
	if c.Value <= 0 {
		return 1
	}
	return c.Value
}

// IsCountStart returns true if the character could start a count.
// Note: '0' cannot start a count.
func IsCountStart(r rune) bool {
	return r >= '1' && r <= '9'
}

// CombineCounts multiplies two counts together with overflow protection.
// Used when both a pre-operator and post-operator count exist,
// e.g. "2d3aw" acts on 2*3=6 words.
func CombineCounts(count1, count2 int) int {
	if count1 <= 0 {
		count1 = 1
	}
	if count2 <= 0 {
		count2 = 1
	}

	if count1 > math.MaxInt/count2 {
		return math.MaxInt / 10
	}

	return count1 * count2
}
