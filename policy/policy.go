// Package policy defines the decision capabilities the engine consults during
// a turn. Implementations may be heuristic, scripted, or backed by a trained
// model; the engine never inspects how a decision was made.
package policy

import "github.com/BriScanlon/monopoly-digital-twin/game"

// BuyPolicy decides whether a player landing on an unowned ownable space
// should buy it. A returned error makes the engine fall back to its default
// heuristic.
type BuyPolicy interface {
	DecideBuy(player game.PlayerView, space game.SpaceView, view *game.Snapshot) (bool, error)
}

// TradePolicy decides whether a player wants to attempt a trade before
// rolling. A returned error makes the engine fall back to never trading.
type TradePolicy interface {
	DecideTradeIntent(player game.PlayerView, view *game.Snapshot) (bool, error)
}

// BuyMargin is the cash cushion the default heuristic keeps above the
// purchase price.
const BuyMargin = 50

// Heuristic is the default policy: buy when affordable with a margin, never
// initiate trades.
type Heuristic struct{}

func NewHeuristic() Heuristic {
	return Heuristic{}
}

func (Heuristic) DecideBuy(player game.PlayerView, space game.SpaceView, _ *game.Snapshot) (bool, error) {
	return player.Cash > space.Price+BuyMargin, nil
}

func (Heuristic) DecideTradeIntent(game.PlayerView, *game.Snapshot) (bool, error) {
	return false, nil
}
