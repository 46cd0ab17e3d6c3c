package board

import "strings"

// ToSAN converts m to Standard Algebraic Notation relative to pos, the
// position m is about to be played from.
func (m Move) ToSAN(pos *Position) string {
	if m == NoMove {
		return "-"
	}

	piece := pos.PieceAt(m.From)
	if piece == NoPiece {
		return m.String()
	}

	if m.Kind.IsCastle() {
		if m.To > m.From {
			return "O-O"
		}
		return "O-O-O"
	}

	var sb strings.Builder
	pt := piece.Type()

	if pt != Pawn {
		sb.WriteByte("PNBRQK"[pt])
		sb.WriteString(sanDisambiguation(pos, m, pt))
	}

	if m.IsCapture() {
		if pt == Pawn {
			sb.WriteByte('a' + byte(m.From.File()))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(m.To.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte("PNBRQK"[m.Kind.PromotionType()])
	}

	next := pos.Copy()
	next.MakeMove(m)
	if next.IsCheckmate() {
		sb.WriteByte('#')
	} else if next.InCheck() {
		sb.WriteByte('+')
	}

	return sb.String()
}

// sanDisambiguation returns the file/rank/square prefix needed to tell m's
// origin apart from other legal moves of the same piece type to the same
// destination.
func sanDisambiguation(pos *Position, m Move, pt PieceType) string {
	us := pos.SideToMove
	var candidates []Square

	for _, other := range pos.AllLegalMoves() {
		if other.To != m.To || other.From == m.From {
			continue
		}
		p := pos.PieceAt(other.From)
		if p.Type() == pt && p.Color() == us {
			candidates = append(candidates, other.From)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range candidates {
		if sq.File() == m.From.File() {
			sameFile = true
		}
		if sq.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	if !sameFile {
		return string(rune('a' + m.From.File()))
	}
	if !sameRank {
		return string(rune('1' + m.From.Rank()))
	}
	return m.From.String()
}
