package game

// SpaceType identifies what kind of board slot a space is.
type SpaceType int

const (
	GoSpace SpaceType = iota
	PropertySpace
	RailroadSpace
	UtilitySpace
	TaxSpace
	ChanceSpace
	CommunityChestSpace
	JailSpace
	GoToJailSpace
	FreeParkingSpace
)

// NoOwner marks an ownable space nobody has bought yet.
const NoOwner = -1

// HotelHouses is the house count that denotes a hotel on a property.
const HotelHouses = 5

// Space is one of the 40 ordered board slots. Static fields (name, group,
// price, rents) are fixed at construction; Owner, Houses and Mortgaged are
// the per-game dynamic state.
type Space struct {
	Index     int
	Name      string
	Type      SpaceType
	Group     string // color group; "Station" for railroads, "Utility" for utilities
	Price     int
	Rents     [6]int // rent by house count, index 5 = hotel
	HouseCost int
	Amount    int // tax spaces only

	Owner     int
	Houses    int
	Mortgaged bool
}

// Ownable reports whether the space can be bought and held by a player.
func (s *Space) Ownable() bool {
	switch s.Type {
	case PropertySpace, RailroadSpace, UtilitySpace:
		return true
	}
	return false
}

func (s *Space) resetState() {
	s.Owner = NoOwner
	s.Houses = 0
	s.Mortgaged = false
}
