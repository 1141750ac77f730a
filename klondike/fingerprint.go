package klondike

import "github.com/cespare/xxhash/v2"

const (
	faceUpBit     = 0x40
	pileSeparator = 0xff
)

// Fingerprint hashes the full position: every pile's cards in order with
// their orientation, plus the pass counter. Equal positions give equal
// fingerprints.
func (s *GameState) Fingerprint() uint64 {
	buf := make([]byte, 0, DeckSize+NumTableau+NumFoundations+4)
	write := func(p *Pile) {
		for _, c := range p.cards {
			b := byte(c.Index())
			if c.FaceUp {
				b |= faceUpBit
			}
			buf = append(buf, b)
		}
		buf = append(buf, pileSeparator)
	}

	for i := range s.tableau {
		write(&s.tableau[i])
	}
	for i := range s.foundations {
		write(&s.foundations[i])
	}
	write(&s.stock)
	write(&s.waste)
	buf = append(buf, byte(s.stockPasses))
	return xxhash.Sum64(buf)
}
