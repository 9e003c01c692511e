package game

import "fmt"

// BoardSize is the number of slots on the board.
const BoardSize = 40

// JailIndex is the board slot a jailed player sits on.
const JailIndex = 10

// Board holds the 40 ordered spaces plus a color-group index. Created once
// per game; dynamic property state is cleared by Reset, the table itself is
// never rebuilt during a game.
type Board struct {
	Spaces [BoardSize]*Space
	groups map[string][]int
}

// NewBoard builds the standard London board from the embedded tables.
func NewBoard() *Board {
	b := &Board{groups: make(map[string][]int)}

	for i := range boardData {
		entry := &boardData[i]
		space := &Space{
			Index:     entry.index,
			Name:      entry.name,
			Type:      entry.spaceType,
			Group:     entry.group,
			Price:     entry.price,
			Rents:     entry.rents,
			HouseCost: entry.houseCost,
			Amount:    entry.amount,
			Owner:     NoOwner,
		}
		if b.Spaces[entry.index] != nil {
			panic(fmt.Sprintf("duplicate board entry at index %d", entry.index))
		}
		b.Spaces[entry.index] = space
		if space.Ownable() {
			b.groups[space.Group] = append(b.groups[space.Group], space.Index)
		}
	}

	for i, s := range b.Spaces {
		if s == nil {
			panic(fmt.Sprintf("board table missing index %d", i))
		}
	}
	return b
}

// GetSpace returns the space at index. An out-of-range index is a programming
// error and panics.
func (b *Board) GetSpace(index int) *Space {
	if index < 0 || index >= BoardSize {
		panic(fmt.Sprintf("board index %d out of bounds (0-%d)", index, BoardSize-1))
	}
	return b.Spaces[index]
}

// PropertyGroup returns the spaces sharing a color group, used for monopoly
// detection and rent computation. Unknown groups return nil.
func (b *Board) PropertyGroup(group string) []*Space {
	indices, ok := b.groups[group]
	if !ok {
		return nil
	}
	spaces := make([]*Space, len(indices))
	for i, idx := range indices {
		spaces[i] = b.Spaces[idx]
	}
	return spaces
}

// GroupSize returns how many spaces belong to a color group.
func (b *Board) GroupSize(group string) int {
	return len(b.groups[group])
}

// Reset clears owner, houses and mortgage flags on every ownable space.
// Static metadata is untouched.
func (b *Board) Reset() {
	for _, s := range b.Spaces {
		if s.Ownable() {
			s.resetState()
		}
	}
}
