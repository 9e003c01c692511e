package game

type boardEntry struct {
	index     int
	name      string
	spaceType SpaceType
	group     string
	price     int
	rents     [6]int
	houseCost int
	amount    int
}

// Standard London board layout. Rent tables are indexed by house count, with
// index 5 the hotel tier.
var boardData = []boardEntry{
	{index: 0, name: "GO", spaceType: GoSpace},
	{index: 1, name: "Old Kent Road", spaceType: PropertySpace, group: "Brown", price: 60, rents: [6]int{2, 10, 30, 90, 160, 250}, houseCost: 50},
	{index: 2, name: "Community Chest", spaceType: CommunityChestSpace},
	{index: 3, name: "Whitechapel Road", spaceType: PropertySpace, group: "Brown", price: 60, rents: [6]int{4, 20, 60, 180, 320, 450}, houseCost: 50},
	{index: 4, name: "Income Tax", spaceType: TaxSpace, amount: 200},
	{index: 5, name: "Kings Cross Station", spaceType: RailroadSpace, group: "Station", price: 200},
	{index: 6, name: "The Angel Islington", spaceType: PropertySpace, group: "LightBlue", price: 100, rents: [6]int{6, 30, 90, 270, 400, 550}, houseCost: 50},
	{index: 7, name: "Chance", spaceType: ChanceSpace},
	{index: 8, name: "Euston Road", spaceType: PropertySpace, group: "LightBlue", price: 100, rents: [6]int{6, 30, 90, 270, 400, 550}, houseCost: 50},
	{index: 9, name: "Pentonville Road", spaceType: PropertySpace, group: "LightBlue", price: 120, rents: [6]int{8, 40, 100, 300, 450, 600}, houseCost: 50},
	{index: 10, name: "Jail", spaceType: JailSpace},
	{index: 11, name: "Pall Mall", spaceType: PropertySpace, group: "Pink", price: 140, rents: [6]int{10, 50, 150, 450, 625, 750}, houseCost: 100},
	{index: 12, name: "Electric Company", spaceType: UtilitySpace, group: "Utility", price: 150},
	{index: 13, name: "Whitehall", spaceType: PropertySpace, group: "Pink", price: 140, rents: [6]int{10, 50, 150, 450, 625, 750}, houseCost: 100},
	{index: 14, name: "Northumberland Avenue", spaceType: PropertySpace, group: "Pink", price: 160, rents: [6]int{12, 60, 180, 500, 700, 900}, houseCost: 100},
	{index: 15, name: "Marylebone Station", spaceType: RailroadSpace, group: "Station", price: 200},
	{index: 16, name: "Bow Street", spaceType: PropertySpace, group: "Orange", price: 180, rents: [6]int{14, 70, 200, 550, 750, 950}, houseCost: 100},
	{index: 17, name: "Community Chest", spaceType: CommunityChestSpace},
	{index: 18, name: "Marlborough Street", spaceType: PropertySpace, group: "Orange", price: 180, rents: [6]int{14, 70, 200, 550, 750, 950}, houseCost: 100},
	{index: 19, name: "Vine Street", spaceType: PropertySpace, group: "Orange", price: 200, rents: [6]int{16, 80, 220, 600, 800, 1000}, houseCost: 100},
	{index: 20, name: "Free Parking", spaceType: FreeParkingSpace},
	{index: 21, name: "Strand", spaceType: PropertySpace, group: "Red", price: 220, rents: [6]int{18, 90, 250, 700, 875, 1050}, houseCost: 150},
	{index: 22, name: "Chance", spaceType: ChanceSpace},
	{index: 23, name: "Fleet Street", spaceType: PropertySpace, group: "Red", price: 220, rents: [6]int{18, 90, 250, 700, 875, 1050}, houseCost: 150},
	{index: 24, name: "Trafalgar Square", spaceType: PropertySpace, group: "Red", price: 240, rents: [6]int{20, 100, 300, 750, 925, 1100}, houseCost: 150},
	{index: 25, name: "Fenchurch St Station", spaceType: RailroadSpace, group: "Station", price: 200},
	{index: 26, name: "Leicester Square", spaceType: PropertySpace, group: "Yellow", price: 260, rents: [6]int{22, 110, 330, 800, 975, 1150}, houseCost: 150},
	{index: 27, name: "Coventry Street", spaceType: PropertySpace, group: "Yellow", price: 260, rents: [6]int{22, 110, 330, 800, 975, 1150}, houseCost: 150},
	{index: 28, name: "Water Works", spaceType: UtilitySpace, group: "Utility", price: 150},
	{index: 29, name: "Piccadilly", spaceType: PropertySpace, group: "Yellow", price: 280, rents: [6]int{24, 120, 360, 850, 1025, 1200}, houseCost: 150},
	{index: 30, name: "Go To Jail", spaceType: GoToJailSpace},
	{index: 31, name: "Regent Street", spaceType: PropertySpace, group: "Green", price: 300, rents: [6]int{26, 130, 390, 900, 1100, 1275}, houseCost: 200},
	{index: 32, name: "Oxford Street", spaceType: PropertySpace, group: "Green", price: 300, rents: [6]int{26, 130, 390, 900, 1100, 1275}, houseCost: 200},
	{index: 33, name: "Community Chest", spaceType: CommunityChestSpace},
	{index: 34, name: "Bond Street", spaceType: PropertySpace, group: "Green", price: 320, rents: [6]int{28, 150, 450, 1000, 1200, 1400}, houseCost: 200},
	{index: 35, name: "Liverpool Street Station", spaceType: RailroadSpace, group: "Station", price: 200},
	{index: 36, name: "Chance", spaceType: ChanceSpace},
	{index: 37, name: "Park Lane", spaceType: PropertySpace, group: "DarkBlue", price: 350, rents: [6]int{35, 175, 500, 1100, 1300, 1500}, houseCost: 200},
	{index: 38, name: "Luxury Tax", spaceType: TaxSpace, amount: 100},
	{index: 39, name: "Mayfair", spaceType: PropertySpace, group: "DarkBlue", price: 400, rents: [6]int{50, 200, 600, 1400, 1700, 2000}, houseCost: 200},
}
