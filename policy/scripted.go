package policy

import "github.com/BriScanlon/monopoly-digital-twin/game"

// Scripted replays a fixed sequence of decisions, one per consultation. Once
// the script runs out it keeps answering with its final default. Useful for
// tests and replaying recorded games.
type Scripted struct {
	BuyDecisions   []bool
	TradeDecisions []bool
	DefaultBuy     bool
	DefaultTrade   bool

	Err error // when set, every decision fails with this error
}

func (s *Scripted) DecideBuy(game.PlayerView, game.SpaceView, *game.Snapshot) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	if len(s.BuyDecisions) == 0 {
		return s.DefaultBuy, nil
	}
	decision := s.BuyDecisions[0]
	s.BuyDecisions = s.BuyDecisions[1:]
	return decision, nil
}

func (s *Scripted) DecideTradeIntent(game.PlayerView, *game.Snapshot) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	if len(s.TradeDecisions) == 0 {
		return s.DefaultTrade, nil
	}
	decision := s.TradeDecisions[0]
	s.TradeDecisions = s.TradeDecisions[1:]
	return decision, nil
}
