// Package encoder turns a game snapshot into the fixed-length feature vector
// consumed by learned policies. The layout is a contract owned by the policy
// side, not by the engine.
package encoder

import "github.com/BriScanlon/monopoly-digital-twin/game"

const (
	playerFeatures  = 2
	perSpace        = 5
	contextFeatures = 3

	cashScale    = 3000.0
	maxPlayers   = 6.0
	houseLevels  = 5.0
	positionNorm = float64(game.BoardSize)
)

// ObservationSize is the encoded vector length: 2 player floats, 5 per board
// slot, 3 context floats.
const ObservationSize = playerFeatures + game.BoardSize*perSpace + contextFeatures

// Encode builds the feature vector for one player's perspective. All
// opponents collapse into a single "opponent" channel so the vector length
// stays fixed regardless of roster size.
func Encode(playerID int, snap *game.Snapshot) []float32 {
	vector := make([]float32, 0, ObservationSize)
	me := snap.Players[playerID]

	cash := float64(me.Cash) / cashScale
	if cash > 1.0 {
		cash = 1.0
	}
	vector = append(vector,
		float32(cash),
		float32(float64(me.Position)/positionNorm),
	)

	for i := range snap.Spaces {
		space := &snap.Spaces[i]
		if space.Type != game.PropertySpace {
			// Padding keeps the vector aligned across non-property slots.
			vector = append(vector, 0, 0, 0, 0, 0)
			continue
		}
		var mine, opponent, unowned, mortgaged float32
		switch {
		case space.Owner == playerID:
			mine = 1
		case space.Owner != game.NoOwner:
			opponent = 1
		default:
			unowned = 1
		}
		if space.Mortgaged {
			mortgaged = 1
		}
		vector = append(vector, mine, opponent, unowned,
			float32(float64(space.Houses)/houseLevels), mortgaged)
	}

	anyBankrupt := float32(0)
	for _, p := range snap.Players {
		if p.Bankrupt {
			anyBankrupt = 1
			break
		}
	}
	inJail := float32(0)
	if me.InJail {
		inJail = 1
	}
	vector = append(vector, inJail,
		float32(float64(len(snap.Players))/maxPlayers), anyBankrupt)

	return vector
}
