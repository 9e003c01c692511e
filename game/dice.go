package game

import "golang.org/x/exp/rand"

// Dice rolls two six-sided dice and tracks consecutive doubles. Three doubles
// in a row trigger the speeding rule, which is the engine's call to make.
type Dice struct {
	rng     *rand.Rand
	Die1    int
	Die2    int
	doubles int
}

// NewDice returns dice drawing from the given seeded source.
func NewDice(rng *rand.Rand) *Dice {
	return &Dice{rng: rng}
}

// Roll draws both dice and returns the total and whether they matched.
// A double increments the consecutive-doubles counter; anything else resets it.
func (d *Dice) Roll() (int, bool) {
	d.Die1 = d.rng.Intn(6) + 1
	d.Die2 = d.rng.Intn(6) + 1

	isDouble := d.Die1 == d.Die2
	if isDouble {
		d.doubles++
	} else {
		d.doubles = 0
	}
	return d.Die1 + d.Die2, isDouble
}

// DoublesCount returns the current run of consecutive doubles.
func (d *Dice) DoublesCount() int {
	return d.doubles
}

// ResetDoubles forces the counter to zero. Called on turn handoff and on
// jail entry.
func (d *Dice) ResetDoubles() {
	d.doubles = 0
}
