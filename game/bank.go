package game

// Standard box component limits.
const (
	TotalHouses = 32
	TotalHotels = 12

	// StartingReserve is the cash in the standard London box.
	StartingReserve = 20580
)

// Bank holds the cash reserve and the house/hotel inventory. It is the only
// place money is created or destroyed; player-to-player transfers never touch
// it. In infinite (IOU) mode the reserve may go negative, representing
// printed money.
type Bank struct {
	CashReserves  int
	AllowInfinite bool

	HousesAvailable int
	HotelsAvailable int

	initialCash int
}

// NewBank returns a stocked bank. With allowInfinite the bank prints money
// once the reserve runs dry; otherwise withdrawals are capped at whatever
// remains.
func NewBank(initialCash int, allowInfinite bool) *Bank {
	return &Bank{
		CashReserves:    initialCash,
		AllowInfinite:   allowInfinite,
		HousesAvailable: TotalHouses,
		HotelsAvailable: TotalHotels,
		initialCash:     initialCash,
	}
}

// Withdraw pays out up to amount from the reserve and returns what was
// actually given. Infinite mode always pays in full, driving the reserve
// negative when empty; hard-limit mode pays out the remainder and zeroes it.
func (b *Bank) Withdraw(amount int) int {
	if b.CashReserves >= amount {
		b.CashReserves -= amount
		return amount
	}
	if b.AllowInfinite {
		b.CashReserves -= amount
		return amount
	}
	remaining := b.CashReserves
	b.CashReserves = 0
	return remaining
}

// Deposit credits the reserve unconditionally.
func (b *Bank) Deposit(amount int) {
	b.CashReserves += amount
}

func (b *Bank) CanBuildHouse() bool {
	return b.HousesAvailable > 0
}

func (b *Bank) CanBuildHotel() bool {
	return b.HotelsAvailable > 0
}

// ReleaseHouse takes one house out of stock. Returns false when none remain.
func (b *Bank) ReleaseHouse() bool {
	if b.HousesAvailable == 0 {
		return false
	}
	b.HousesAvailable--
	return true
}

// ReturnHouse puts a house back, capped at the box total.
func (b *Bank) ReturnHouse() {
	if b.HousesAvailable < TotalHouses {
		b.HousesAvailable++
	}
}

// ReleaseHotel takes one hotel out of stock. Returns false when none remain.
func (b *Bank) ReleaseHotel() bool {
	if b.HotelsAvailable == 0 {
		return false
	}
	b.HotelsAvailable--
	return true
}

// ReturnHotel puts a hotel back, capped at the box total.
func (b *Bank) ReturnHotel() {
	if b.HotelsAvailable < TotalHotels {
		b.HotelsAvailable++
	}
}

// Reset restores the starting reserve and restocks the buildings.
func (b *Bank) Reset() {
	b.CashReserves = b.initialCash
	b.HousesAvailable = TotalHouses
	b.HotelsAvailable = TotalHotels
}
