package game

var chanceCards = []Card{
	{Name: "Advance to GO", Action: MoveAbs, Value: 0},
	{Name: "Advance to Trafalgar Square", Action: MoveAbs, Value: 24},
	{Name: "Advance to Pall Mall", Action: MoveAbs, Value: 11},
	{Name: "Advance to Mayfair", Action: MoveAbs, Value: 39},
	{Name: "Take a trip to Kings Cross Station", Action: MoveAbs, Value: 5},
	{Name: "Bank pays you dividend of £50", Action: Earn, Value: 50},
	{Name: "Your building loan matures, collect £150", Action: Earn, Value: 150},
	{Name: "You have won a crossword competition, collect £100", Action: Earn, Value: 100},
	{Name: "Speeding fine £15", Action: Pay, Value: 15},
	{Name: "Pay school fees of £150", Action: Pay, Value: 150},
	{Name: "Drunk in charge, fine £20", Action: Pay, Value: 20},
	{Name: "Go to Jail", Action: CardGoToJail},
	{Name: "Get Out of Jail Free", Action: JailFree},
}

var communityChestCards = []Card{
	{Name: "Advance to GO", Action: MoveAbs, Value: 0},
	{Name: "Bank error in your favour, collect £200", Action: Earn, Value: 200},
	{Name: "From sale of stock you get £50", Action: Earn, Value: 50},
	{Name: "Holiday fund matures, receive £100", Action: Earn, Value: 100},
	{Name: "Income tax refund, collect £20", Action: Earn, Value: 20},
	{Name: "It is your birthday, collect £10", Action: Earn, Value: 10},
	{Name: "Life insurance matures, collect £100", Action: Earn, Value: 100},
	{Name: "Receive £25 consultancy fee", Action: Earn, Value: 25},
	{Name: "You inherit £100", Action: Earn, Value: 100},
	{Name: "Doctor's fee, pay £50", Action: Pay, Value: 50},
	{Name: "Pay hospital fees of £100", Action: Pay, Value: 100},
	{Name: "Pay school fees of £50", Action: Pay, Value: 50},
	{Name: "Go to Jail", Action: CardGoToJail},
	{Name: "Get Out of Jail Free", Action: JailFree},
}
