package klondike

import "fmt"

// Source is where a move takes cards from: FromWaste or FromTableau.
type Source interface {
	isSource()
	String() string
}

// FromWaste takes the exposed waste card.
type FromWaste struct{}

// FromTableau takes the top Depth cards of tableau pile Pile. Depth 1 is
// the top card alone.
type FromTableau struct {
	Pile  int
	Depth int
}

func (FromWaste) isSource()   {}
func (FromTableau) isSource() {}

func (FromWaste) String() string { return "waste" }

func (f FromTableau) String() string {
	if f.Depth == 1 {
		return fmt.Sprintf("tableau %d", f.Pile)
	}
	return fmt.Sprintf("tableau %d (%d cards)", f.Pile, f.Depth)
}

// Destination is where a move puts cards: ToTableau or ToFoundation.
type Destination interface {
	isDestination()
	String() string
}

// ToTableau places cards on tableau pile Pile.
type ToTableau struct{ Pile int }

// ToFoundation places a card on foundation pile Pile.
type ToFoundation struct{ Pile int }

func (ToTableau) isDestination()    {}
func (ToFoundation) isDestination() {}

func (t ToTableau) String() string    { return fmt.Sprintf("tableau %d", t.Pile) }
func (t ToFoundation) String() string { return fmt.Sprintf("foundation %d", t.Pile) }

// CheckMove reports why moving from src to dst is not allowed, or nil if it
// is. It never mutates the game.
func (s *GameState) CheckMove(src Source, dst Destination) error {
	switch from := src.(type) {
	case FromWaste:
		switch to := dst.(type) {
		case ToTableau:
			_, err := s.checkWasteToTableau(to.Pile)
			return err
		case ToFoundation:
			_, err := s.checkWasteToFoundation(to.Pile)
			return err
		}
	case FromTableau:
		switch to := dst.(type) {
		case ToTableau:
			_, _, err := s.checkTableauToTableau(from.Pile, to.Pile, from.Depth)
			return err
		case ToFoundation:
			if from.Depth != 1 {
				return fmt.Errorf("%w: only one card at a time goes to a foundation", ErrIllegalPlacement)
			}
			_, _, err := s.checkTableauToFoundation(from.Pile, to.Pile)
			return err
		}
	}
	return fmt.Errorf("%w: unsupported move %v -> %v", ErrIllegalPlacement, src, dst)
}

// Move applies a move described by tagged source and destination values.
// A rejected move returns an error and leaves the game untouched.
func (s *GameState) Move(src Source, dst Destination) error {
	switch from := src.(type) {
	case FromWaste:
		switch to := dst.(type) {
		case ToTableau:
			return s.MoveWasteToTableau(to.Pile)
		case ToFoundation:
			return s.MoveWasteToFoundation(to.Pile)
		}
	case FromTableau:
		switch to := dst.(type) {
		case ToTableau:
			return s.MoveTableauToTableau(from.Pile, to.Pile, from.Depth)
		case ToFoundation:
			if from.Depth != 1 {
				return fmt.Errorf("%w: only one card at a time goes to a foundation", ErrIllegalPlacement)
			}
			return s.MoveTableauToFoundation(from.Pile, to.Pile)
		}
	}
	return fmt.Errorf("%w: unsupported move %v -> %v", ErrIllegalPlacement, src, dst)
}

// MoveTableauToTableau moves the top n cards of tableau src onto tableau dst
// as one run.
func (s *GameState) MoveTableauToTableau(src, dst, n int) error {
	from, to, err := s.checkTableauToTableau(src, dst, n)
	if err != nil {
		return err
	}
	run, _ := from.Pop(n)
	to.PushAll(run)
	from.flipTop()
	s.mustConserve()
	return nil
}

// MoveTableauToFoundation moves the top card of tableau src onto foundation dst.
func (s *GameState) MoveTableauToFoundation(src, dst int) error {
	from, to, err := s.checkTableauToFoundation(src, dst)
	if err != nil {
		return err
	}
	cards, _ := from.Pop(1)
	to.Push(cards[0])
	from.flipTop()
	s.mustConserve()
	return nil
}

// MoveWasteToTableau moves the waste top onto tableau dst.
func (s *GameState) MoveWasteToTableau(dst int) error {
	to, err := s.checkWasteToTableau(dst)
	if err != nil {
		return err
	}
	cards, _ := s.waste.Pop(1)
	to.Push(cards[0])
	s.mustConserve()
	return nil
}

// MoveWasteToFoundation moves the waste top onto foundation dst.
func (s *GameState) MoveWasteToFoundation(dst int) error {
	to, err := s.checkWasteToFoundation(dst)
	if err != nil {
		return err
	}
	cards, _ := s.waste.Pop(1)
	to.Push(cards[0])
	s.mustConserve()
	return nil
}

func (s *GameState) checkTableauToTableau(src, dst, n int) (from, to *Pile, err error) {
	if from, err = s.tableauPile(src); err != nil {
		return nil, nil, err
	}
	if to, err = s.tableauPile(dst); err != nil {
		return nil, nil, err
	}
	if src == dst {
		return nil, nil, fmt.Errorf("%w: tableau %d onto itself", ErrIllegalPlacement, src)
	}
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: move of %d cards", ErrOutOfRange, n)
	}
	run, err := from.Top(n)
	if err != nil {
		return nil, nil, fmt.Errorf("tableau %d: %w", src, err)
	}
	for _, c := range run {
		if !c.FaceUp {
			return nil, nil, fmt.Errorf("%w: %s in tableau %d is face down", ErrIllegalPlacement, c, src)
		}
	}
	if !CanPlaceTableauSequence(run, to) {
		return nil, nil, fmt.Errorf("%w: %s onto tableau %d", ErrIllegalPlacement, run[0], dst)
	}
	return from, to, nil
}

func (s *GameState) checkTableauToFoundation(src, dst int) (from, to *Pile, err error) {
	if from, err = s.tableauPile(src); err != nil {
		return nil, nil, err
	}
	if to, err = s.foundationPile(dst); err != nil {
		return nil, nil, err
	}
	card, ok := from.Peek()
	if !ok {
		return nil, nil, fmt.Errorf("tableau %d: %w", src, ErrInsufficientCards)
	}
	if !card.FaceUp {
		return nil, nil, fmt.Errorf("%w: %s in tableau %d is face down", ErrIllegalPlacement, card, src)
	}
	if !CanPlaceFoundation(card, to) {
		return nil, nil, fmt.Errorf("%w: %s onto foundation %d", ErrIllegalPlacement, card, dst)
	}
	return from, to, nil
}

func (s *GameState) checkWasteToTableau(dst int) (*Pile, error) {
	to, err := s.tableauPile(dst)
	if err != nil {
		return nil, err
	}
	card, ok := s.waste.Peek()
	if !ok {
		return nil, fmt.Errorf("waste: %w", ErrInsufficientCards)
	}
	if !CanPlaceTableau(card, to) {
		return nil, fmt.Errorf("%w: %s onto tableau %d", ErrIllegalPlacement, card, dst)
	}
	return to, nil
}

func (s *GameState) checkWasteToFoundation(dst int) (*Pile, error) {
	to, err := s.foundationPile(dst)
	if err != nil {
		return nil, err
	}
	card, ok := s.waste.Peek()
	if !ok {
		return nil, fmt.Errorf("waste: %w", ErrInsufficientCards)
	}
	if !CanPlaceFoundation(card, to) {
		return nil, fmt.Errorf("%w: %s onto foundation %d", ErrIllegalPlacement, card, dst)
	}
	return to, nil
}

// CanPlaceOnTableau applies CanPlaceTableau against tableau pile i.
func (s *GameState) CanPlaceOnTableau(card Card, i int) (bool, error) {
	p, err := s.tableauPile(i)
	if err != nil {
		return false, err
	}
	return CanPlaceTableau(card, p), nil
}

// CanPlaceRunOnTableau applies CanPlaceTableauSequence against tableau pile i.
func (s *GameState) CanPlaceRunOnTableau(cards []Card, i int) (bool, error) {
	p, err := s.tableauPile(i)
	if err != nil {
		return false, err
	}
	return CanPlaceTableauSequence(cards, p), nil
}

// CanPlaceOnFoundation applies CanPlaceFoundation against foundation pile i.
func (s *GameState) CanPlaceOnFoundation(card Card, i int) (bool, error) {
	p, err := s.foundationPile(i)
	if err != nil {
		return false, err
	}
	return CanPlaceFoundation(card, p), nil
}
