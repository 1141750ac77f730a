package klondike

import "errors"

var (
	// ErrOutOfRange is returned when a pile or card index is outside its valid set.
	ErrOutOfRange = errors.New("klondike: index out of range")

	// ErrInsufficientCards is returned when more cards are requested than a pile or deck holds.
	ErrInsufficientCards = errors.New("klondike: insufficient cards")

	// ErrIllegalPlacement is returned when a move fails its placement rule.
	// No mutation has happened when it is returned.
	ErrIllegalPlacement = errors.New("klondike: illegal placement")

	// ErrInvariantViolation means the 52-card conservation invariant is broken.
	ErrInvariantViolation = errors.New("klondike: card conservation violated")

	// ErrInvalidDeck is returned for an explicit card order that is not the 52 distinct cards.
	ErrInvalidDeck = errors.New("klondike: invalid deck")

	// ErrInvalidCard is returned when a card string cannot be parsed.
	ErrInvalidCard = errors.New("klondike: invalid card")
)
