package board

import "fmt"

// MoveType tags a Move with the side effects MakeMove must apply.
type MoveType uint8

const (
	Quiet MoveType = iota
	Capture
	DoublePawnPush
	EnPassant
	CastleKingside
	CastleQueenside
	PromotionKnight
	PromotionBishop
	PromotionRook
	PromotionQueen
	PromotionCaptureKnight
	PromotionCaptureBishop
	PromotionCaptureRook
	PromotionCaptureQueen
)

// IsPromotion reports whether mt is one of the eight promotion variants.
func (mt MoveType) IsPromotion() bool {
	return mt >= PromotionKnight && mt <= PromotionCaptureQueen
}

// IsCapture reports whether mt removes an enemy piece from the board.
func (mt MoveType) IsCapture() bool {
	switch mt {
	case Capture, EnPassant, PromotionCaptureKnight, PromotionCaptureBishop, PromotionCaptureRook, PromotionCaptureQueen:
		return true
	default:
		return false
	}
}

// IsCastle reports whether mt relocates the king and rook together.
func (mt MoveType) IsCastle() bool {
	return mt == CastleKingside || mt == CastleQueenside
}

// PromotionType returns the piece type a promotion move resolves to.
// Only meaningful when IsPromotion() is true.
func (mt MoveType) PromotionType() PieceType {
	switch mt {
	case PromotionKnight, PromotionCaptureKnight:
		return Knight
	case PromotionBishop, PromotionCaptureBishop:
		return Bishop
	case PromotionRook, PromotionCaptureRook:
		return Rook
	case PromotionQueen, PromotionCaptureQueen:
		return Queen
	default:
		return NoPieceType
	}
}

// String names the move type, mostly useful in test failure messages.
func (mt MoveType) String() string {
	switch mt {
	case Quiet:
		return "Quiet"
	case Capture:
		return "Capture"
	case DoublePawnPush:
		return "DoublePawnPush"
	case EnPassant:
		return "EnPassant"
	case CastleKingside:
		return "CastleKingside"
	case CastleQueenside:
		return "CastleQueenside"
	case PromotionKnight:
		return "PromotionKnight"
	case PromotionBishop:
		return "PromotionBishop"
	case PromotionRook:
		return "PromotionRook"
	case PromotionQueen:
		return "PromotionQueen"
	case PromotionCaptureKnight:
		return "PromotionCaptureKnight"
	case PromotionCaptureBishop:
		return "PromotionCaptureBishop"
	case PromotionCaptureRook:
		return "PromotionCaptureRook"
	case PromotionCaptureQueen:
		return "PromotionCaptureQueen"
	default:
		return "Unknown"
	}
}

// Move is a single chess move: the origin and destination squares plus the
// tag MakeMove needs to apply the right side effects.
type Move struct {
	From Square
	To   Square
	Kind MoveType
}

// NoMove represents an invalid or null move.
var NoMove = Move{From: NoSquare, To: NoSquare, Kind: Quiet}

// NewMove creates a move of the given kind.
func NewMove(from, to Square, kind MoveType) Move {
	return Move{From: from, To: to, Kind: kind}
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Kind.IsPromotion()
}

// IsCapture reports whether m removes an enemy piece from the board.
func (m Move) IsCapture() bool {
	return m.Kind.IsCapture()
}

// String returns the UCI format of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		promoChars := map[PieceType]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}
		s += string(promoChars[m.Kind.PromotionType()])
	}
	return s
}

// ParseMove parses a UCI format move string against pos to recover the
// MoveType tag (which the wire format itself does not carry).
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	for _, m := range pos.LegalMoves(from) {
		if m.To != to {
			continue
		}
		if len(s) == 5 && m.IsPromotion() {
			var want PieceType
			switch s[4] {
			case 'n':
				want = Knight
			case 'b':
				want = Bishop
			case 'r':
				want = Rook
			case 'q':
				want = Queen
			default:
				return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
			}
			if m.Kind.PromotionType() != want {
				continue
			}
		}
		return m, nil
	}
	return NoMove, fmt.Errorf("no legal move %s in current position", s)
}

// MoveList is a fixed-size list of moves to avoid allocations during
// move generation.
type MoveList struct {
	moves [218]Move
	count int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Slice returns the moves accumulated so far as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}
