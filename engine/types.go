package engine

// Suit constants — a card's raw value divided by 15.
const (
	SuitRed    uint8 = 0
	SuitYellow uint8 = 1
	SuitGreen  uint8 = 2
	SuitBlue   uint8 = 3

	// NoSuit marks Jesters, Wizards and "no trump this round".
	NoSuit uint8 = 0xFF
)

// Rank constants — a card's raw value modulo 15. Ranks 1–13 are the
// numbered cards.
const (
	RankJester uint8 = 0
	RankWizard uint8 = 14
)

// Card is the raw deck value 0..59. Rank is raw % 15, suit is raw / 15.
// Jesters and Wizards report NoSuit; their deck-copy color is only a
// display concern.
type Card uint8

// EmptyCard represents the absence of a card (no trump indicator,
// no lead card yet).
const EmptyCard Card = 0xFF

// NewCard constructs a Card from suit and rank. For Jesters and
// Wizards the suit picks which of the four deck copies is meant.
func NewCard(suit, rank uint8) Card {
	return Card(suit*15 + rank)
}

// Rank returns the card's rank 0..14.
func (c Card) Rank() uint8 { return uint8(c) % 15 }

// Suit returns the card's suit, or NoSuit for Jesters and Wizards.
func (c Card) Suit() uint8 {
	r := c.Rank()
	if r == RankJester || r == RankWizard {
		return NoSuit
	}
	return uint8(c) / 15
}

// IsJester reports whether the card is a Jester.
func (c Card) IsJester() bool { return c.Rank() == RankJester }

// IsWizard reports whether the card is a Wizard.
func (c Card) IsWizard() bool { return c.Rank() == RankWizard }

// Same reports structural equality on (suit, rank): any two Jesters
// match, any two Wizards match, numbered cards match per deck copy.
func (c Card) Same(o Card) bool {
	return c.Rank() == o.Rank() && c.Suit() == o.Suit()
}

var suitLetters = [4]byte{'R', 'Y', 'G', 'B'}

// String renders the card as suit letter plus rank token, e.g. "R7",
// "YJ", "BW". The suit letter of a Jester or Wizard is its deck copy.
func (c Card) String() string {
	if c == EmptyCard {
		return "--"
	}
	s := suitLetters[uint8(c)/15]
	switch r := c.Rank(); r {
	case RankJester:
		return string([]byte{s, 'J'})
	case RankWizard:
		return string([]byte{s, 'W'})
	case 10, 11, 12, 13:
		return string([]byte{s, '1', '0' + byte(r-10)})
	default:
		return string([]byte{s, '0' + byte(r)})
	}
}

// Progress is the phase signal returned by PerformAction.
type Progress uint8

const (
	TrickOngoing Progress = 0 // trick continues
	TrickDone    Progress = 1 // trick just completed, round continues
	RoundDone    Progress = 2 // trick and round completed
)

// ---------------------------------------------------------------------------
// Error kinds
// ---------------------------------------------------------------------------

// DealError reports an impossible deal request (too many cards for the
// player count, or a player count outside 3–6).
type DealError string

func (e DealError) Error() string { return string(e) }

// SequencingError reports an operation invoked out of protocol order.
// The engine never repairs invalid sequencing; the driver must correct
// its call order.
type SequencingError string

func (e SequencingError) Error() string { return string(e) }
