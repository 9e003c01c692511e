package game

// Snapshot is a read-only copy of game state handed to decision policies and
// state encoders. Mutating it never touches engine-owned state.
type Snapshot struct {
	CurrentPlayer int
	TurnCount     int
	BankCash      int
	Players       []PlayerView
	Spaces        []SpaceView
}

// PlayerView is the per-player slice of a snapshot.
type PlayerView struct {
	ID          int
	Cash        int
	Position    int
	Properties  []int
	InJail      bool
	Bankrupt    bool
	NetWorthRaw int
}

// SpaceView is the per-space slice of a snapshot.
type SpaceView struct {
	Index     int
	Name      string
	Type      SpaceType
	Group     string
	Price     int
	Owner     int
	Houses    int
	Mortgaged bool
}

// TakeSnapshot copies the dynamic state of a board and roster.
func TakeSnapshot(board *Board, players []*Player, bankCash, current, turn int) *Snapshot {
	snap := &Snapshot{
		CurrentPlayer: current,
		TurnCount:     turn,
		BankCash:      bankCash,
		Players:       make([]PlayerView, len(players)),
		Spaces:        make([]SpaceView, BoardSize),
	}
	for i, p := range players {
		props := make([]int, len(p.Properties))
		copy(props, p.Properties)
		snap.Players[i] = PlayerView{
			ID:          p.ID,
			Cash:        p.Cash,
			Position:    p.Position,
			Properties:  props,
			InJail:      p.InJail,
			Bankrupt:    p.Bankrupt,
			NetWorthRaw: p.NetWorthRaw(board),
		}
	}
	for i, s := range board.Spaces {
		snap.Spaces[i] = SpaceView{
			Index:     s.Index,
			Name:      s.Name,
			Type:      s.Type,
			Group:     s.Group,
			Price:     s.Price,
			Owner:     s.Owner,
			Houses:    s.Houses,
			Mortgaged: s.Mortgaged,
		}
	}
	return snap
}
