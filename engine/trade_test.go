package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BriScanlon/monopoly-digital-twin/game"
)

func newTradeEngine(t *testing.T) *Engine {
	t.Helper()
	return New(3, WithSeed(1))
}

func give(e *Engine, playerID int, indices ...int) {
	for _, idx := range indices {
		e.Board.GetSpace(idx).Owner = playerID
		e.Players[playerID].AddProperty(idx)
	}
}

func TestFindSetCompleter(t *testing.T) {
	t.Run("finds the missing member held by an opponent", func(t *testing.T) {
		e := newTradeEngine(t)
		give(e, 0, 16, 18) // two of three Orange
		give(e, 1, 19)     // Vine Street completes the set

		target := e.findSetCompleter(e.Players[0])

		require.NotNil(t, target)
		require.Equal(t, 19, target.Index)
	})

	t.Run("ignores unowned missing members", func(t *testing.T) {
		e := newTradeEngine(t)
		give(e, 0, 16, 18)

		require.Nil(t, e.findSetCompleter(e.Players[0]))
	})

	t.Run("ignores completed monopolies", func(t *testing.T) {
		e := newTradeEngine(t)
		give(e, 0, 1, 3) // full Brown set

		require.Nil(t, e.findSetCompleter(e.Players[0]))
	})

	t.Run("skips bankrupt owners", func(t *testing.T) {
		e := newTradeEngine(t)
		give(e, 0, 16, 18)
		give(e, 1, 19)
		e.Players[1].Bankrupt = true

		require.Nil(t, e.findSetCompleter(e.Players[0]))
	})

	t.Run("empty portfolio has no target", func(t *testing.T) {
		e := newTradeEngine(t)
		require.Nil(t, e.findSetCompleter(e.Players[0]))
	})
}

func TestFormulateOffer(t *testing.T) {
	e := newTradeEngine(t)
	target := e.Board.GetSpace(19) // Vine Street, price 200

	t.Run("base offer is 2.5x face price", func(t *testing.T) {
		e.Players[0].Cash = 600
		require.Equal(t, 500, e.formulateOffer(e.Players[0], target))
	})

	t.Run("a wealthy buyer escalates to 4x", func(t *testing.T) {
		e.Players[0].Cash = 1500
		require.Equal(t, 800, e.formulateOffer(e.Players[0], target))
	})
}

func TestAcceptTrade(t *testing.T) {
	e := newTradeEngine(t)
	give(e, 0, 16, 18) // buyer owns 2 of 3 Orange
	give(e, 1, 19)     // seller holds the completer, price 200
	buyer, seller := e.Players[0], e.Players[1]
	target := e.Board.GetSpace(19)

	t.Run("secure seller never kingmakes", func(t *testing.T) {
		seller.Cash = 300
		require.False(t, e.acceptTrade(buyer, seller, target, 5000),
			"A seller at the wealth threshold refuses regardless of offer")
	})

	t.Run("struggling seller demands the kingmaker premium", func(t *testing.T) {
		seller.Cash = 200
		require.True(t, e.acceptTrade(buyer, seller, target, 1000), "5x face satisfies the premium")
		require.False(t, e.acceptTrade(buyer, seller, target, 999))
	})
}

func TestAcceptTradeNonThreatening(t *testing.T) {
	e := newTradeEngine(t)
	give(e, 0, 11) // buyer owns 1 of 3 Pink, no monopoly at stake
	give(e, 1, 13) // Whitehall, price 140
	buyer, seller := e.Players[0], e.Players[1]
	target := e.Board.GetSpace(13)

	t.Run("cash-poor seller takes anything above face", func(t *testing.T) {
		seller.Cash = 50
		require.True(t, e.acceptTrade(buyer, seller, target, 141))
		require.False(t, e.acceptTrade(buyer, seller, target, 140))
	})

	t.Run("comfortable seller requires the greed threshold", func(t *testing.T) {
		seller.Cash = 500
		require.True(t, e.acceptTrade(buyer, seller, target, 350))
		require.False(t, e.acceptTrade(buyer, seller, target, 349))
	})
}

func TestAttemptTrade(t *testing.T) {
	t.Run("no strategic target", func(t *testing.T) {
		e := newTradeEngine(t)
		require.Equal(t, TradeNoTarget, e.attemptTrade(e.Players[0]))
	})

	t.Run("too poor to trade", func(t *testing.T) {
		e := newTradeEngine(t)
		give(e, 0, 11)
		give(e, 1, 13)
		e.Players[0].Cash = 400 // offer 350 plus buffer is out of reach

		require.Equal(t, TradeTooPoor, e.attemptTrade(e.Players[0]))
	})

	t.Run("rejected offer mutates nothing", func(t *testing.T) {
		e := newTradeEngine(t)
		give(e, 0, 16, 18)
		give(e, 1, 19)
		e.Players[0].Cash = 5000 // escalated offer 800, premium needs 1000
		e.Players[1].Cash = 200

		require.Equal(t, TradeRejected, e.attemptTrade(e.Players[0]))
		require.Equal(t, 1, e.Board.GetSpace(19).Owner)
		require.Equal(t, 5000, e.Players[0].Cash)
	})

	t.Run("successful deal transfers cash and the deed", func(t *testing.T) {
		e := newTradeEngine(t)
		give(e, 0, 11) // 1 of 3 Pink: non-threatening
		give(e, 1, 13)
		e.Players[0].Cash = 1500 // escalated offer 560
		e.Players[1].Cash = 50   // poor seller takes it

		event := e.attemptTrade(e.Players[0])

		require.Equal(t, "trade_success_Whitehall", event)
		require.Equal(t, 0, e.Board.GetSpace(13).Owner)
		require.True(t, e.Players[0].OwnsSpace(13))
		require.False(t, e.Players[1].OwnsSpace(13))
		require.Equal(t, 1500-560, e.Players[0].Cash)
		require.Equal(t, 50+560, e.Players[1].Cash)
	})
}

func TestTradeIntentDuringTurn(t *testing.T) {
	dice := &scriptedDice{rolls: []scriptRoll{{total: 2}}}
	e := New(3, WithDice(dice), WithSeed(1),
		WithTradePolicy(&tradeAlways{}))
	give(e, 0, 11)
	give(e, 1, 13)
	e.Players[1].Cash = 50

	report := e.RunTurn()

	require.Equal(t, "trade_success_Whitehall", report.TradeEvent)
	require.NotZero(t, report.Roll, "The turn proceeds to a roll after the trade")
}

type tradeAlways struct{}

func (tradeAlways) DecideTradeIntent(game.PlayerView, *game.Snapshot) (bool, error) {
	return true, nil
}
