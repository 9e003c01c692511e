package engine

// Result tags emitted in turn reports. Rent, tax, card and successful-trade
// tags are built inline with a dynamic suffix.
const (
	ResultBought       = "bought_property"
	ResultPassed       = "passed_property"
	ResultSentToJail   = "sent_to_jail"
	ResultJailEscape   = "jail_escape_doubles"
	ResultJailForced   = "jail_forced_exit"
	ResultJailStay     = "jail_stay"
	ResultJailCardUsed = "jail_card_used"
	ResultSafe         = "safe"
	ResultSkip         = "skip"
	ResultGameOver     = "game_over"
	ResultNoCard       = "no_card"

	TradeRejected = "trade_rejected"
	TradeNoTarget = "trade_no_target"
	TradeTooPoor  = "trade_too_poor"
)

// TurnReport is the structured outcome of one RunTurn call, consumed by
// logging and training collaborators.
type TurnReport struct {
	Player     int
	Roll       int
	IsDouble   bool
	Position   int
	Space      string
	Cash       int
	BankCash   int
	Result     string
	TradeEvent string // empty when no trade was attempted
}
