package encoder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BriScanlon/monopoly-digital-twin/game"
)

func buildSnapshot() *game.Snapshot {
	board := game.NewBoard()
	players := []*game.Player{game.NewPlayer(0), game.NewPlayer(1)}

	players[0].AddProperty(1)
	board.GetSpace(1).Owner = 0
	board.GetSpace(1).Houses = 5

	players[1].AddProperty(3)
	board.GetSpace(3).Owner = 1
	board.GetSpace(3).Mortgaged = true

	return game.TakeSnapshot(board, players, game.StartingReserve, 0, 0)
}

func TestEncodeLength(t *testing.T) {
	vec := Encode(0, buildSnapshot())
	require.Len(t, vec, ObservationSize)
	require.Equal(t, 205, ObservationSize, "2 player + 40x5 property + 3 context floats")
}

func TestEncodeOwnershipChannels(t *testing.T) {
	vec := Encode(0, buildSnapshot())

	// Each space contributes [mine, opponent, unowned, houses, mortgaged]
	// starting after the two player floats.
	offset := func(index int) int { return 2 + index*5 }

	mine := vec[offset(1):]
	require.Equal(t, float32(1), mine[0], "Space 1 is mine")
	require.Equal(t, float32(0), mine[1])
	require.Equal(t, float32(1), mine[3], "A hotel encodes as full house level")

	theirs := vec[offset(3):]
	require.Equal(t, float32(0), theirs[0])
	require.Equal(t, float32(1), theirs[1], "Space 3 belongs to the opponent")
	require.Equal(t, float32(1), theirs[4], "Mortgage flag set")

	unowned := vec[offset(6):]
	require.Equal(t, float32(1), unowned[2], "Space 6 is unowned")

	station := vec[offset(5):]
	require.Equal(t, []float32{0, 0, 0, 0, 0}, station[:5], "Non-street slots are padding")
}

func TestEncodeContext(t *testing.T) {
	snap := buildSnapshot()
	snap.Players[0].InJail = true
	snap.Players[1].Bankrupt = true

	vec := Encode(0, snap)
	context := vec[len(vec)-3:]
	require.Equal(t, float32(1), context[0], "Jail flag")
	require.InDelta(t, 2.0/6.0, context[1], 1e-6, "Normalized player count")
	require.Equal(t, float32(1), context[2], "Any-bankrupt flag")
}

func TestEncodeCashIsClamped(t *testing.T) {
	snap := buildSnapshot()
	snap.Players[0].Cash = 100000

	vec := Encode(0, snap)
	require.Equal(t, float32(1), vec[0], "Cash feature saturates at 1")
}
