package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string and returns a Position. Only the piece
// placement field is required; side to move, castling rights, en passant
// target, and the two move counters default to the values they'd have in
// a fresh game if omitted, so callers can pass just
// the board-placement half.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("board: empty FEN")
	}

	pos := &Position{
		SideToMove:     White,
		CastlingRights: AllCastling,
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
	for sq := range pos.Board {
		pos.Board[sq] = NoPiece
	}
	pos.KingSquare[White] = NoSquare
	pos.KingSquare[Black] = NoSquare

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	if len(parts) > 1 {
		switch parts[1] {
		case "w":
			pos.SideToMove = White
		case "b":
			pos.SideToMove = Black
		default:
			return nil, fmt.Errorf("board: invalid side to move: %s", parts[1])
		}
	}

	if len(parts) > 2 {
		if err := parseCastlingRights(pos, parts[2]); err != nil {
			return nil, err
		}
	}

	if len(parts) > 3 && parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("board: invalid en passant square: %s", parts[3])
		}
		pos.EnPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("board: invalid half-move clock: %s", parts[4])
		}
		pos.HalfMoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("board: invalid full-move number: %s", parts[5])
		}
		pos.FullMoveNumber = fmn
	}

	pos.findKings()
	if err := pos.Validate(); err != nil {
		return nil, err
	}

	return pos, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
// FEN lists ranks from 8 down to 1; Position stores a1 at index 0, so rank
// i of the FEN (0-indexed from the top) lands at board rank 7-i.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("board: too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
			} else {
				piece := PieceFromChar(byte(c))
				if piece == NoPiece {
					return fmt.Errorf("board: invalid piece character: %c", c)
				}
				pos.setPiece(piece, NewSquare(file, rank))
				file++
			}
		}

		if file != 8 {
			return fmt.Errorf("board: invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(pos *Position, castling string) error {
	pos.CastlingRights = NoCastling
	if castling == "-" {
		return nil
	}

	for _, c := range castling {
		switch c {
		case 'K':
			pos.CastlingRights |= WhiteKingSideCastle
		case 'Q':
			pos.CastlingRights |= WhiteQueenSideCastle
		case 'k':
			pos.CastlingRights |= BlackKingSideCastle
		case 'q':
			pos.CastlingRights |= BlackQueenSideCastle
		default:
			return fmt.Errorf("board: invalid castling character: %c", c)
		}
	}

	return nil
}

// ToFEN returns the FEN representation of the position.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece := p.PieceAt(sq)
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}
