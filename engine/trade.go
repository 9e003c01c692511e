package engine

import (
	"github.com/rs/zerolog/log"

	"github.com/BriScanlon/monopoly-digital-twin/game"
)

// Negotiation constants. Offers anchor on the target's face price; acceptance
// weighs how dangerous the deal is for the seller.
const (
	offerMultiplier     = 2.5 // base offer as a multiple of face price
	escalatedMultiplier = 4.0 // a wealthy buyer overpays for a missing piece
	offerCashBuffer     = 100 // cash the buyer must keep after the deal

	kingmakerPremium      = 5.0 // minimum multiple to hand over a monopoly
	sellerWealthThreshold = 300 // a seller this rich never kingmakes
	sellerPoorThreshold   = 100 // a seller this poor takes anything above face
	greedMultiplier       = 2.5 // ordinary acceptance threshold
)

// attemptTrade runs the set-completer search for the buyer and, when a target
// exists and the offer is acceptable, executes a property-for-cash deal. The
// returned tag records the outcome; only a successful deal mutates state.
func (e *Engine) attemptTrade(buyer *game.Player) string {
	target := e.findSetCompleter(buyer)
	if target == nil {
		return TradeNoTarget
	}

	offer := e.formulateOffer(buyer, target)
	if buyer.Cash < offer+offerCashBuffer {
		return TradeTooPoor
	}

	seller := e.Players[target.Owner]
	if !e.acceptTrade(buyer, seller, target, offer) {
		log.Debug().Int("buyer", buyer.ID).Int("seller", seller.ID).
			Str("space", target.Name).Int("offer", offer).Msg("trade rejected")
		return TradeRejected
	}

	buyer.Pay(offer)
	seller.Receive(offer)
	seller.RemoveProperty(target.Index)
	buyer.AddProperty(target.Index)
	target.Owner = buyer.ID

	log.Info().Int("buyer", buyer.ID).Int("seller", seller.ID).
		Str("space", target.Name).Int("offer", offer).Msg("trade executed")
	return "trade_success_" + target.Name
}

// findSetCompleter walks the buyer's groups in portfolio order and returns
// the first missing member held by a different, non-bankrupt player. The
// search is read-only.
func (e *Engine) findSetCompleter(buyer *game.Player) *game.Space {
	seen := map[string]bool{}
	for _, idx := range buyer.Properties {
		group := e.Board.GetSpace(idx).Group
		if seen[group] {
			continue
		}
		seen[group] = true

		members := e.Board.PropertyGroup(group)
		owned := 0
		for _, member := range members {
			if member.Owner == buyer.ID {
				owned++
			}
		}
		if owned == len(members) {
			continue // monopoly already held
		}
		for _, member := range members {
			if member.Owner == game.NoOwner || member.Owner == buyer.ID {
				continue
			}
			if e.Players[member.Owner].Bankrupt {
				continue
			}
			return member
		}
	}
	return nil
}

// formulateOffer anchors on face price and escalates when the buyer has the
// cash headroom of a wealthy buyer.
func (e *Engine) formulateOffer(buyer *game.Player, target *game.Space) int {
	offer := int(offerMultiplier * float64(target.Price))
	if buyer.Cash > 2*offer {
		offer = int(escalatedMultiplier * float64(target.Price))
	}
	return offer
}

// acceptTrade is the seller's decision. Handing the buyer a completed
// monopoly is a kingmaker move: a financially secure seller refuses outright
// and anyone else demands a steep premium. Non-threatening deals come down
// to how much the seller needs the cash.
func (e *Engine) acceptTrade(buyer, seller *game.Player, target *game.Space, offer int) bool {
	members := e.Board.PropertyGroup(target.Group)
	ownedByBuyer := 0
	for _, member := range members {
		if member.Owner == buyer.ID {
			ownedByBuyer++
		}
	}
	completesMonopoly := ownedByBuyer == len(members)-1

	if completesMonopoly {
		if seller.Cash >= sellerWealthThreshold {
			return false
		}
		return offer >= int(kingmakerPremium*float64(target.Price))
	}

	if seller.Cash < sellerPoorThreshold {
		return offer > target.Price
	}
	return offer >= int(greedMultiplier*float64(target.Price))
}
