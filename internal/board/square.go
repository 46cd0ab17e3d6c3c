package board

import (
	"fmt"
	"strings"
)

// Square is a board index in little-endian rank-file order: a1=0, h1=7,
// a8=56, h8=63. Decompose with File/Rank (file = idx%8, rank = idx/8).
type Square uint8

// NoSquare marks "off board" — an absent en passant target, a captured
// piece's origin, or a failed parse.
const NoSquare Square = 64

const fileLetters = "abcdefgh"

// NewSquare builds a Square from a 0-indexed file (0=a..7=h) and rank
// (0=rank1..7=rank8).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

func rankRow(rank int) [8]Square {
	var row [8]Square
	for file := 0; file < 8; file++ {
		row[file] = NewSquare(file, rank)
	}
	return row
}

// Named squares, derived from NewSquare rank by rank rather than listed as
// a raw sequential run.
var (
	rank1 = rankRow(0)
	rank2 = rankRow(1)
	rank3 = rankRow(2)
	rank4 = rankRow(3)
	rank5 = rankRow(4)
	rank6 = rankRow(5)
	rank7 = rankRow(6)
	rank8 = rankRow(7)

	A1, B1, C1, D1, E1, F1, G1, H1 = rank1[0], rank1[1], rank1[2], rank1[3], rank1[4], rank1[5], rank1[6], rank1[7]
	A2, B2, C2, D2, E2, F2, G2, H2 = rank2[0], rank2[1], rank2[2], rank2[3], rank2[4], rank2[5], rank2[6], rank2[7]
	A3, B3, C3, D3, E3, F3, G3, H3 = rank3[0], rank3[1], rank3[2], rank3[3], rank3[4], rank3[5], rank3[6], rank3[7]
	A4, B4, C4, D4, E4, F4, G4, H4 = rank4[0], rank4[1], rank4[2], rank4[3], rank4[4], rank4[5], rank4[6], rank4[7]
	A5, B5, C5, D5, E5, F5, G5, H5 = rank5[0], rank5[1], rank5[2], rank5[3], rank5[4], rank5[5], rank5[6], rank5[7]
	A6, B6, C6, D6, E6, F6, G6, H6 = rank6[0], rank6[1], rank6[2], rank6[3], rank6[4], rank6[5], rank6[6], rank6[7]
	A7, B7, C7, D7, E7, F7, G7, H7 = rank7[0], rank7[1], rank7[2], rank7[3], rank7[4], rank7[5], rank7[6], rank7[7]
	A8, B8, C8, D8, E8, F8, G8, H8 = rank8[0], rank8[1], rank8[2], rank8[3], rank8[4], rank8[5], rank8[6], rank8[7]
)

// File returns the 0-indexed file (0=a, 7=h).
func (sq Square) File() int {
	return int(sq) % 8
}

// Rank returns the 0-indexed rank (0=rank1, 7=rank8).
func (sq Square) Rank() int {
	return int(sq) / 8
}

// String renders algebraic notation, e.g. "e4". Returns "-" for NoSquare.
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return string([]byte{fileLetters[sq.File()], byte('1' + sq.Rank())})
}

// ParseSquare parses algebraic notation, e.g. "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("board: invalid square %q", s)
	}

	file := strings.IndexByte(fileLetters, s[0])
	rank := int(s[1] - '1')
	if file < 0 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("board: invalid square %q", s)
	}

	return NewSquare(file, rank), nil
}

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// IsLight reports whether sq is a light square on a standard board.
func (sq Square) IsLight() bool {
	return (sq.File()+sq.Rank())%2 != 0
}

// Mirror flips sq vertically, for viewing a square from black's side.
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// RelativeRank returns sq's rank as seen by c: rank0 is always c's home rank.
func (sq Square) RelativeRank(c Color) int {
	if c == White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}
