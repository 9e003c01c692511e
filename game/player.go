package game

import "fmt"

// StartingCash is each player's cash at game start.
const StartingCash = 1500

// Player holds per-player game state. Players are created at game start and
// never destroyed; a bankrupt player stays in the roster and is skipped.
type Player struct {
	ID         int
	Name       string
	Cash       int // may go negative between insolvency and bankruptcy resolution
	Position   int
	Properties []int // owned space indices
	InJail     bool
	JailTurns  int
	Bankrupt   bool

	// JailCard is a withheld get-out-of-jail-free card; JailCardDeck records
	// which deck to return it to when played.
	HasJailCard  bool
	JailCard     Card
	JailCardDeck DeckKind
}

// NewPlayer returns a player on GO with starting cash.
func NewPlayer(id int) *Player {
	return &Player{
		ID:         id,
		Name:       fmt.Sprintf("Player%d", id),
		Cash:       StartingCash,
		Properties: []int{},
	}
}

// Move advances the position modulo the board size and reports whether GO was
// passed. Crediting the salary is the engine's job, keeping movement and
// money separate.
func (p *Player) Move(steps int) bool {
	if steps <= 0 {
		return false
	}
	newPosition := (p.Position + steps) % BoardSize
	passedGo := newPosition < p.Position
	p.Position = newPosition
	return passedGo
}

// Pay debits cash and returns whether the player could fully cover it. The
// debit happens even when it cannot, driving cash negative: a deliberate
// soft-fail signal for the engine's bankruptcy handling, not an error.
func (p *Player) Pay(amount int) bool {
	p.Cash -= amount
	return p.Cash >= 0
}

// Receive credits cash unconditionally.
func (p *Player) Receive(amount int) {
	p.Cash += amount
}

// GoToJail teleports the player to the jail slot and starts the in-jail
// counter.
func (p *Player) GoToJail() {
	p.Position = JailIndex
	p.InJail = true
	p.JailTurns = 0
}

// ReleaseFromJail clears the jail state.
func (p *Player) ReleaseFromJail() {
	p.InJail = false
	p.JailTurns = 0
}

// OwnsSpace reports whether index is in the player's property set.
func (p *Player) OwnsSpace(index int) bool {
	for _, idx := range p.Properties {
		if idx == index {
			return true
		}
	}
	return false
}

// AddProperty appends a space index to the property set.
func (p *Player) AddProperty(index int) {
	p.Properties = append(p.Properties, index)
}

// RemoveProperty drops a space index from the property set.
func (p *Player) RemoveProperty(index int) {
	for i, idx := range p.Properties {
		if idx == index {
			p.Properties = append(p.Properties[:i], p.Properties[i+1:]...)
			return
		}
	}
}

// NetWorth is cash plus face value plus building value of owned properties,
// read from the board for current house counts.
func (p *Player) NetWorth(b *Board) int {
	assets := 0
	for _, idx := range p.Properties {
		space := b.GetSpace(idx)
		assets += space.Price
		assets += space.Houses * space.HouseCost
	}
	return p.Cash + assets
}

// NetWorthRaw is cash plus face value only. It ignores buildings, an
// approximation kept cheap for high-frequency use such as per-decision
// reward shaping.
func (p *Player) NetWorthRaw(b *Board) int {
	assets := 0
	for _, idx := range p.Properties {
		assets += b.GetSpace(idx).Price
	}
	return p.Cash + assets
}
