package klondike

// CanPlaceTableau reports whether card may be placed on a tableau pile.
// Only a King may start an empty pile; otherwise the card must be one rank
// below the top card and of the opposite color.
func CanPlaceTableau(card Card, dest *Pile) bool {
	top, ok := dest.Peek()
	if !ok {
		return card.Rank == King
	}
	return OppositeColor(card, top) && OneRankBelow(card, top)
}

// IsValidRun reports whether cards form a descending, alternating-color
// chain. cards[0] is the card that lands on the destination (the highest
// rank), which is also pile order: a run is a suffix of a tableau pile.
func IsValidRun(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	for i := 0; i+1 < len(cards); i++ {
		upper, lower := cards[i], cards[i+1]
		if !OppositeColor(upper, lower) || !OneRankBelow(lower, upper) {
			return false
		}
	}
	return true
}

// CanPlaceTableauSequence reports whether a run may be moved onto dest as a
// unit. cards[0] lands on dest's top card.
func CanPlaceTableauSequence(cards []Card, dest *Pile) bool {
	if !IsValidRun(cards) {
		return false
	}
	return CanPlaceTableau(cards[0], dest)
}

// CanPlaceFoundation reports whether card may be placed on a foundation.
// Foundations start with an Ace and build up by suit.
func CanPlaceFoundation(card Card, dest *Pile) bool {
	top, ok := dest.Peek()
	if !ok {
		return card.Rank == Ace
	}
	return card.Suit == top.Suit && OneRankBelow(top, card)
}
