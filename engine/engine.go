// Package engine drives one Monopoly game as a synchronous turn state
// machine. RunTurn is the single entry point; decision policies are injected
// capabilities consulted at the trade-intent and buy points of a turn.
package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/BriScanlon/monopoly-digital-twin/game"
	"github.com/BriScanlon/monopoly-digital-twin/policy"
)

const (
	// GoSalary is credited by the bank when a player passes GO.
	GoSalary = 200
	// JailFine is the forced payment after three failed escape rolls.
	JailFine = 50
	// DefaultMaxTurns caps a game; training harnesses set a stricter cap.
	DefaultMaxTurns = 1000
)

// Roller is the dice contract the engine depends on. game.Dice satisfies it;
// tests substitute scripted rolls.
type Roller interface {
	Roll() (total int, isDouble bool)
	DoublesCount() int
	ResetDoubles()
}

// Engine owns all game state and advances it one turn per RunTurn call. It is
// single-threaded; run independent instances for parallel simulation.
type Engine struct {
	Board   *game.Board
	Bank    *game.Bank
	Cards   *game.CardManager
	Dice    Roller
	Players []*game.Player

	CurrentPlayer int
	TurnCount     int
	MaxTurns      int
	GameOver      bool

	buy   policy.BuyPolicy
	trade policy.TradePolicy
	rng   *rand.Rand
}

type Option func(e *Engine)

// WithSeed fixes the random stream, making the whole game deterministic for a
// fixed decision policy.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMaxTurns(maxTurns int) Option {
	return func(e *Engine) {
		if maxTurns > 0 {
			e.MaxTurns = maxTurns
		}
	}
}

func WithBuyPolicy(p policy.BuyPolicy) Option {
	return func(e *Engine) {
		if p != nil {
			e.buy = p
		}
	}
}

func WithTradePolicy(p policy.TradePolicy) Option {
	return func(e *Engine) {
		if p != nil {
			e.trade = p
		}
	}
}

// WithDice substitutes the dice, typically with scripted rolls in tests.
func WithDice(d Roller) Option {
	return func(e *Engine) {
		if d != nil {
			e.Dice = d
		}
	}
}

// New sets up a fresh game for numPlayers. Defaults: time-seeded randomness,
// infinite-mode bank, heuristic buy policy, no trading.
func New(numPlayers int, options ...Option) *Engine {
	if numPlayers < 2 {
		panic("need at least two players")
	}

	e := &Engine{
		MaxTurns: DefaultMaxTurns,
		buy:      policy.NewHeuristic(),
		trade:    policy.NewHeuristic(),
	}
	for _, option := range options {
		option(e)
	}

	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	e.Board = game.NewBoard()
	e.Bank = game.NewBank(game.StartingReserve, true)
	e.Cards = game.NewCardManager(e.rng)
	if e.Dice == nil {
		e.Dice = game.NewDice(e.rng)
	}
	e.Players = makePlayers(numPlayers)
	return e
}

// Reset reinitializes all owned state for a new game without reallocating
// the engine. The random stream continues, so consecutive games differ.
func (e *Engine) Reset(numPlayers int) {
	e.Board.Reset()
	e.Bank.Reset()
	e.Dice.ResetDoubles()
	e.Cards = game.NewCardManager(e.rng)
	e.Players = makePlayers(numPlayers)
	e.CurrentPlayer = 0
	e.TurnCount = 0
	e.GameOver = false
}

func makePlayers(n int) []*game.Player {
	players := make([]*game.Player, n)
	for i := range players {
		players[i] = game.NewPlayer(i)
	}
	return players
}

// Snapshot returns a read-only copy of the current state for policies and
// encoders.
func (e *Engine) Snapshot() *game.Snapshot {
	return game.TakeSnapshot(e.Board, e.Players, e.Bank.CashReserves, e.CurrentPlayer, e.TurnCount)
}

// RunTurn executes one full turn for the current player and returns its
// report. Doubles do not recurse: a non-bankrupt double leaves the same
// player current and the caller invokes RunTurn again.
func (e *Engine) RunTurn() TurnReport {
	if e.GameOver {
		return TurnReport{Result: ResultGameOver}
	}

	player := e.Players[e.CurrentPlayer]

	if player.Bankrupt {
		e.nextPlayer()
		return TurnReport{Player: player.ID, Result: ResultSkip}
	}

	if player.InJail {
		return e.runJailTurn(player)
	}

	var tradeEvent string
	if e.decideTradeIntent(player) {
		tradeEvent = e.attemptTrade(player)
	}

	roll, isDouble := e.Dice.Roll()

	// Speeding rule: the third consecutive double goes straight to jail,
	// no movement or landing this turn.
	if e.Dice.DoublesCount() >= 3 {
		player.GoToJail()
		e.Dice.ResetDoubles()
		log.Debug().Int("player", player.ID).Msg("sent to jail for speeding")
		e.nextPlayer()
		return TurnReport{
			Player:     player.ID,
			Roll:       roll,
			IsDouble:   true,
			Position:   player.Position,
			Space:      e.Board.GetSpace(player.Position).Name,
			Cash:       player.Cash,
			BankCash:   e.Bank.CashReserves,
			Result:     ResultSentToJail,
			TradeEvent: tradeEvent,
		}
	}

	if player.Move(roll) {
		player.Receive(e.Bank.Withdraw(GoSalary))
	}

	landedOn := e.Board.GetSpace(player.Position)
	result := e.resolveLanding(player, landedOn)

	if !isDouble || player.Bankrupt {
		e.nextPlayer()
	}

	e.TurnCount++
	if e.TurnCount >= e.MaxTurns || e.solventPlayers() <= 1 {
		e.GameOver = true
		log.Info().Int("turns", e.TurnCount).Msg("game over")
	}

	return TurnReport{
		Player:     player.ID,
		Roll:       roll,
		IsDouble:   isDouble,
		Position:   player.Position,
		Space:      landedOn.Name,
		Cash:       player.Cash,
		BankCash:   e.Bank.CashReserves,
		Result:     result,
		TradeEvent: tradeEvent,
	}
}

// runJailTurn resolves a jailed player's turn. It never resolves the landing
// of the square an escape roll ends on; escaping consumes the turn.
func (e *Engine) runJailTurn(player *game.Player) TurnReport {
	if player.HasJailCard {
		e.Cards.ReturnJailCard(player.JailCard, player.JailCardDeck)
		player.HasJailCard = false
		player.ReleaseFromJail()

		roll, _ := e.Dice.Roll()
		e.Dice.ResetDoubles()
		if player.Move(roll) {
			player.Receive(e.Bank.Withdraw(GoSalary))
		}
		e.nextPlayer()
		return e.jailReport(player, roll, ResultJailCardUsed)
	}

	roll, isDouble := e.Dice.Roll()
	if isDouble {
		player.ReleaseFromJail()
		e.Dice.ResetDoubles()
		player.Move(roll)
		return e.jailReport(player, roll, ResultJailEscape)
	}

	player.JailTurns++
	if player.JailTurns >= 3 {
		// Fails open: the fine is forced even when the player cannot fully
		// cover it, and release happens regardless.
		if !player.Pay(JailFine) {
			e.markBankrupt(player)
		}
		e.Bank.Deposit(JailFine)
		player.ReleaseFromJail()
		player.Move(roll)
		e.nextPlayer()
		return e.jailReport(player, roll, ResultJailForced)
	}

	e.nextPlayer()
	return e.jailReport(player, roll, ResultJailStay)
}

func (e *Engine) jailReport(player *game.Player, roll int, result string) TurnReport {
	return TurnReport{
		Player:   player.ID,
		Roll:     roll,
		Position: player.Position,
		Space:    e.Board.GetSpace(player.Position).Name,
		Cash:     player.Cash,
		BankCash: e.Bank.CashReserves,
		Result:   result,
	}
}

// resolveLanding dispatches on the landed-on space type.
func (e *Engine) resolveLanding(player *game.Player, space *game.Space) string {
	switch space.Type {
	case game.PropertySpace, game.RailroadSpace, game.UtilitySpace:
		return e.resolveOwnable(player, space)
	case game.TaxSpace:
		if !player.Pay(space.Amount) {
			e.markBankrupt(player)
		}
		e.Bank.Deposit(space.Amount)
		return fmt.Sprintf("paid_tax_%d", space.Amount)
	case game.GoToJailSpace:
		player.GoToJail()
		e.Dice.ResetDoubles()
		return ResultSentToJail
	case game.ChanceSpace:
		card, ok := e.Cards.Draw(game.ChanceDeck)
		if !ok {
			return ResultNoCard
		}
		return e.applyCard(player, card, game.ChanceDeck)
	case game.CommunityChestSpace:
		card, ok := e.Cards.Draw(game.CommunityChestDeck)
		if !ok {
			return ResultNoCard
		}
		return e.applyCard(player, card, game.CommunityChestDeck)
	}
	return ResultSafe
}

func (e *Engine) resolveOwnable(player *game.Player, space *game.Space) string {
	if space.Owner == game.NoOwner {
		if e.decideBuy(player, space) && player.Cash >= space.Price {
			player.Pay(space.Price)
			e.Bank.Deposit(space.Price)
			space.Owner = player.ID
			player.AddProperty(space.Index)
			log.Debug().Int("player", player.ID).Str("space", space.Name).Msg("bought property")
			return ResultBought
		}
		return ResultPassed
	}

	if space.Owner != player.ID && !space.Mortgaged {
		rent := e.rentFor(space)
		if !player.Pay(rent) {
			e.markBankrupt(player)
		}
		// Rent is wealth redistribution, the bank is not involved.
		e.Players[space.Owner].Receive(rent)
		return fmt.Sprintf("paid_rent_%d", rent)
	}

	return ResultSafe
}

// UtilityRent is the flat utility rent. A dice-roll-multiplier variant exists
// in the wild; this implementation uses the flat constant.
const UtilityRent = 28

var railroadRents = [5]int{0, 25, 50, 100, 200}

func (e *Engine) rentFor(space *game.Space) int {
	switch space.Type {
	case game.UtilitySpace:
		return UtilityRent
	case game.RailroadSpace:
		count := 0
		for _, idx := range e.Players[space.Owner].Properties {
			if e.Board.GetSpace(idx).Type == game.RailroadSpace {
				count++
			}
		}
		if count > 4 {
			count = 4
		}
		return railroadRents[count]
	}
	return space.Rents[space.Houses]
}

func (e *Engine) applyCard(player *game.Player, card game.Card, deck game.DeckKind) string {
	switch card.Action {
	case game.MoveAbs:
		player.Position = card.Value
	case game.Earn:
		player.Receive(e.Bank.Withdraw(card.Value))
	case game.Pay:
		if !player.Pay(card.Value) {
			e.markBankrupt(player)
		}
		e.Bank.Deposit(card.Value)
	case game.CardGoToJail:
		player.GoToJail()
		e.Dice.ResetDoubles()
	case game.JailFree:
		player.HasJailCard = true
		player.JailCard = card
		player.JailCardDeck = deck
	}
	return "card_" + card.Action.String()
}

func (e *Engine) decideBuy(player *game.Player, space *game.Space) bool {
	snap := e.Snapshot()
	decision, err := e.buy.DecideBuy(snap.Players[player.ID], snap.Spaces[space.Index], snap)
	if err != nil {
		log.Warn().Err(err).Int("player", player.ID).Msg("buy policy failed, using heuristic")
		decision, _ = policy.NewHeuristic().DecideBuy(snap.Players[player.ID], snap.Spaces[space.Index], snap)
	}
	return decision
}

func (e *Engine) decideTradeIntent(player *game.Player) bool {
	snap := e.Snapshot()
	intent, err := e.trade.DecideTradeIntent(snap.Players[player.ID], snap)
	if err != nil {
		log.Warn().Err(err).Int("player", player.ID).Msg("trade policy failed, skipping trade")
		return false
	}
	return intent
}

func (e *Engine) markBankrupt(player *game.Player) {
	player.Bankrupt = true
	log.Info().Int("player", player.ID).Int("cash", player.Cash).Msg("player is bankrupt")
}

func (e *Engine) solventPlayers() int {
	count := 0
	for _, p := range e.Players {
		if !p.Bankrupt {
			count++
		}
	}
	return count
}

func (e *Engine) nextPlayer() {
	e.CurrentPlayer = (e.CurrentPlayer + 1) % len(e.Players)
	e.Dice.ResetDoubles()
}
