package game

import "golang.org/x/exp/rand"

// CardAction is what a drawn card does to the player who drew it.
type CardAction int

const (
	MoveAbs CardAction = iota // teleport to an absolute board index
	Earn                      // bank pays the player
	Pay                       // player pays the bank
	CardGoToJail
	JailFree // kept by the player until played or sold
)

func (a CardAction) String() string {
	switch a {
	case MoveAbs:
		return "move_abs"
	case Earn:
		return "earn"
	case Pay:
		return "pay"
	case CardGoToJail:
		return "go_jail"
	case JailFree:
		return "jail_free"
	}
	return "unknown"
}

// Card is immutable once loaded from the deck tables.
type Card struct {
	Name   string
	Action CardAction
	Value  int
}

// DeckKind names the two circulating decks.
type DeckKind int

const (
	ChanceDeck DeckKind = iota
	CommunityChestDeck
)

// CardDeck is a FIFO circulating sequence. Ordinary cards go straight back to
// the bottom on draw, so the deck composition is stable turn to turn. A drawn
// jail-free card is withheld until ReturnJailCard puts it back.
type CardDeck struct {
	cards []Card
}

// NewCardDeck copies the source cards and shuffles them once.
func NewCardDeck(source []Card, rng *rand.Rand) *CardDeck {
	d := &CardDeck{cards: make([]Card, len(source))}
	copy(d.cards, source)
	d.shuffle(rng)
	return d
}

func (d *CardDeck) shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw pops the top card. Any card that is not jail-free is re-enqueued at
// the bottom before being returned. An empty deck returns false and the
// caller treats it as a no-op card.
func (d *CardDeck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	if card.Action != JailFree {
		d.cards = append(d.cards, card)
	}
	return card, true
}

// ReturnJailCard re-enqueues a withheld jail-free card after it is played or
// sold.
func (d *CardDeck) ReturnJailCard(card Card) {
	d.cards = append(d.cards, card)
}

// Len returns the number of cards currently circulating.
func (d *CardDeck) Len() int {
	return len(d.cards)
}

// CardManager owns the two independent decks.
type CardManager struct {
	Chance         *CardDeck
	CommunityChest *CardDeck
}

// NewCardManager builds and shuffles both decks from the embedded tables.
func NewCardManager(rng *rand.Rand) *CardManager {
	return &CardManager{
		Chance:         NewCardDeck(chanceCards, rng),
		CommunityChest: NewCardDeck(communityChestCards, rng),
	}
}

// Draw pops from the named deck.
func (m *CardManager) Draw(kind DeckKind) (Card, bool) {
	if kind == ChanceDeck {
		return m.Chance.Draw()
	}
	return m.CommunityChest.Draw()
}

// ReturnJailCard puts a played or sold jail-free card back on the named deck.
func (m *CardManager) ReturnJailCard(card Card, kind DeckKind) {
	if kind == ChanceDeck {
		m.Chance.ReturnJailCard(card)
		return
	}
	m.CommunityChest.ReturnJailCard(card)
}
