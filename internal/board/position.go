package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// Position represents a complete chess position as a 64-square mailbox.
// It is a plain value type: cheap to copy, which is what lets perft and
// MCTS explore by cloning rather than unmaking.
type Position struct {
	Board [64]Piece

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // NoSquare if there is no en passant target
	HalfMoveClock  int
	FullMoveNumber int

	// KingSquare caches each side's king location; updated incrementally by
	// setPiece/movePiece so legality checks don't have to scan the board.
	// removePiece does not update it.
	KingSquare [2]Square
}

// NewPosition creates the starting position.
func NewPosition() *Position {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		panic("board: starting FEN failed to parse: " + err.Error())
	}
	return pos
}

// Copy creates a deep copy of the position. Position is small and
// field-for-field copyable, so this is a plain struct copy.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Board[sq]
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.Board[sq] == NoPiece
}

// setPiece places a piece on a square.
func (p *Position) setPiece(piece Piece, sq Square) {
	p.Board[sq] = piece
	if piece != NoPiece && piece.Type() == King {
		p.KingSquare[piece.Color()] = sq
	}
}

// removePiece removes whatever piece occupies a square and returns it.
func (p *Position) removePiece(sq Square) Piece {
	piece := p.Board[sq]
	p.Board[sq] = NoPiece
	return piece
}

// movePiece relocates the piece on `from` to `to`, overwriting whatever was
// on `to`. It does not handle captures specially: the destination piece is
// simply discarded, which is correct since the caller already decided the
// move was legal.
func (p *Position) movePiece(from, to Square) {
	piece := p.Board[from]
	p.Board[from] = NoPiece
	p.Board[to] = piece
	if piece != NoPiece && piece.Type() == King {
		p.KingSquare[piece.Color()] = to
	}
}

// findKings scans the board and caches both kings' squares. Used once after
// FEN parsing; MakeMove maintains the cache incrementally afterward.
func (p *Position) findKings() {
	p.KingSquare[White] = NoSquare
	p.KingSquare[Black] = NoSquare
	for sq := Square(0); sq < 64; sq++ {
		piece := p.Board[sq]
		if piece != NoPiece && piece.Type() == King {
			p.KingSquare[piece.Color()] = sq
		}
	}
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece := p.PieceAt(sq)
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.CastlingRights)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", p.HalfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", p.FullMoveNumber)
	return s
}

// Clear resets the position to an empty board.
func (p *Position) Clear() {
	*p = Position{EnPassant: NoSquare, FullMoveNumber: 1}
	for sq := range p.Board {
		p.Board[sq] = NoPiece
	}
	p.KingSquare[White] = NoSquare
	p.KingSquare[Black] = NoSquare
}

// Validate checks the structural invariants a Position must hold.
// InvariantViolation conditions panic only under the chessdebug build tag
// (see debug_on.go); callers that want a recoverable check call this directly.
func (p *Position) Validate() error {
	white, black := 0, 0
	for sq := Square(0); sq < 64; sq++ {
		piece := p.Board[sq]
		if piece == NoPiece {
			continue
		}
		if piece.Type() == King {
			if piece.Color() == White {
				white++
			} else {
				black++
			}
		}
	}
	if white != 1 {
		return fmt.Errorf("board: white must have exactly one king, found %d", white)
	}
	if black != 1 {
		return fmt.Errorf("board: black must have exactly one king, found %d", black)
	}
	if p.EnPassant != NoSquare {
		rank := p.EnPassant.Rank()
		// White just pushed -> side to move flips to Black -> target sits on
		// (0-indexed) rank 2, i.e. human rank 3.
		if p.SideToMove == Black && rank != 2 {
			return fmt.Errorf("board: en passant target %s invalid after white's push", p.EnPassant)
		}
		// Black just pushed -> side to move flips to White -> target sits on
		// (0-indexed) rank 5, i.e. human rank 6.
		if p.SideToMove == White && rank != 5 {
			return fmt.Errorf("board: en passant target %s invalid after black's push", p.EnPassant)
		}
	}
	return nil
}

// InCheck returns true if the side to move is currently in check.
func (p *Position) InCheck() bool {
	return p.isSquareAttacked(p.KingSquare[p.SideToMove], p.SideToMove.Other())
}

// Material returns the material balance in centipawns (positive favors white).
func (p *Position) Material() int {
	score := 0
	for sq := Square(0); sq < 64; sq++ {
		piece := p.Board[sq]
		if piece == NoPiece || piece.Type() == King {
			continue
		}
		if piece.Color() == White {
			score += piece.Value()
		} else {
			score -= piece.Value()
		}
	}
	return score
}
