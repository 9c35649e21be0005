// Package notation reads move text in long-form (e2e4, e7e8q) or short
// algebraic (Nf3, exd5, e8=Q, O-O) notation and writes moves back out.
//
// Long-form text is decoded on its own. Algebraic text is always resolved
// against the legal moves of the position it is played in, so the same text
// can be valid in one position and unparsable in another.
package notation

import (
	"regexp"
	"strings"

	"github.com/lgbarn/chesspuzzle-go/internal/chess"
	"github.com/lgbarn/chesspuzzle-go/internal/engine"
	"github.com/lgbarn/chesspuzzle-go/internal/errors"
)

var (
	longFormPattern = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])([qrbnQRBN])?$`)

	// Piece letter, origin file, origin rank, separator, destination,
	// promotion. Lowercase b is left out of the piece letters since it
	// names a file.
	sanPattern = regexp.MustCompile(`^([PNBRQK]|[pnrqk])?([a-h])?([1-8])?([x:-])?([a-h][1-8])(?:=?([NBRQ])|=([nbrq]))?(?:e\.?p\.?)?$`)

	castlePattern = regexp.MustCompile(`^([O0o])-([O0o])(-[O0o])?$`)
)

// suffixChars are check, mate and annotation marks. They carry no move
// information and are ignored when reading.
const suffixChars = "+#!?"

// IsLongForm reports whether text is in canonical long-form grammar, after
// trimming surrounding space.
func IsLongForm(text string) bool {
	return longFormPattern.MatchString(strings.TrimSpace(text))
}

// ParseMove converts move text into a move descriptor for the given board.
//
// Long-form text is tried first and is decoded without consulting the
// board; a missing promotion is left for the rules engine to reject. Other
// text is read as relaxed algebraic notation and must match exactly one
// legal move. When the promotion piece is omitted only the queen promotion
// matches.
//
// Errors wrap errors.ErrParseFailure; errors.ErrNoMatchingMove and
// errors.ErrAmbiguousMove mark algebraic text that resolved to zero or
// several moves.
func ParseMove(text string, board *chess.Board) (chess.Move, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return chess.Move{}, errors.Wrap(errors.ErrParseFailure, "empty move text")
	}

	if m := longFormPattern.FindStringSubmatch(text); m != nil {
		return parseLongForm(m), nil
	}

	san := strings.TrimRight(text, suffixChars)
	if m := castlePattern.FindStringSubmatch(san); m != nil {
		return resolveCastle(text, board, m[3] != "")
	}
	if m := sanPattern.FindStringSubmatch(san); m != nil {
		return resolveSAN(text, board, sanQuery{
			piece:     sanPiece(m[1]),
			fromFile:  m[2],
			fromRank:  m[3],
			capture:   m[4] == "x",
			to:        m[5],
			promotion: m[6] + m[7],
		})
	}

	return chess.Move{}, errors.Wrapf(errors.ErrParseFailure, "%q is not a move", text)
}

func parseLongForm(m []string) chess.Move {
	from, _ := chess.ParseSquare(m[1])
	to, _ := chess.ParseSquare(m[2])
	move := chess.NewMove(from, to)
	if m[3] != "" {
		move.Promotion = chess.PieceFromLetter(m[3][0])
	}
	return move
}

func sanPiece(letter string) chess.Piece {
	if letter == "" {
		return chess.Pawn
	}
	return chess.PieceFromLetter(letter[0])
}

// sanQuery holds the fields read from algebraic text.
type sanQuery struct {
	piece     chess.Piece
	fromFile  string
	fromRank  string
	capture   bool
	to        string
	promotion string
}

func (q sanQuery) matches(m *chess.AppliedMove) bool {
	if m.PieceToMove != q.piece || m.To.String() != q.to {
		return false
	}
	if q.fromFile != "" && byte(m.From.Col) != q.fromFile[0] {
		return false
	}
	if q.fromRank != "" && byte(m.From.Rank) != q.fromRank[0] {
		return false
	}
	if q.capture && !m.IsCapture() {
		return false
	}
	if !m.IsPromotion() {
		return q.promotion == ""
	}
	if q.promotion == "" {
		return m.Promotion == chess.Queen
	}
	return m.Promotion == chess.PieceFromLetter(q.promotion[0])
}

func resolveSAN(text string, board *chess.Board, q sanQuery) (chess.Move, error) {
	var found []chess.Move
	for _, m := range engine.GenerateLegalMoves(board) {
		if q.matches(&m) {
			found = append(found, m.Move)
		}
	}
	return pickOne(text, found)
}

func resolveCastle(text string, board *chess.Board, queenside bool) (chess.Move, error) {
	class := chess.KingsideCastle
	if queenside {
		class = chess.QueensideCastle
	}
	var found []chess.Move
	for _, m := range engine.GenerateLegalMoves(board) {
		if m.Class == class {
			found = append(found, m.Move)
		}
	}
	return pickOne(text, found)
}

func pickOne(text string, found []chess.Move) (chess.Move, error) {
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return chess.Move{}, errors.Wrapf(errors.ErrNoMatchingMove, "%q", text)
	default:
		names := make([]string, len(found))
		for i, m := range found {
			names[i] = ToLongForm(m)
		}
		return chess.Move{}, errors.Wrapf(errors.ErrAmbiguousMove, "%q could be %s", text, strings.Join(names, ", "))
	}
}

// ToLongForm returns the canonical encoding of a move: origin, destination
// and a lowercase promotion letter when there is one.
func ToLongForm(move chess.Move) string {
	s := move.From.String() + move.To.String()
	if move.HasPromotion() {
		s += strings.ToLower(string(move.Promotion.Letter()))
	}
	return s
}

// ToSAN renders a move as standard algebraic notation. The board is the
// position before the move; applied is what engine.Apply returned for it.
func ToSAN(board *chess.Board, applied *chess.AppliedMove) string {
	var sb strings.Builder

	switch {
	case applied.Class == chess.KingsideCastle:
		sb.WriteString("O-O")
	case applied.Class == chess.QueensideCastle:
		sb.WriteString("O-O-O")
	case applied.PieceToMove == chess.Pawn:
		if applied.IsCapture() {
			sb.WriteByte(byte(applied.From.Col))
			sb.WriteByte('x')
		}
		sb.WriteString(applied.To.String())
		if applied.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(applied.Promotion.Letter())
		}
	default:
		sb.WriteByte(applied.PieceToMove.Letter())
		sb.WriteString(disambiguation(board, applied))
		if applied.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(applied.To.String())
	}

	switch applied.CheckStatus {
	case chess.Check:
		sb.WriteByte('+')
	case chess.Checkmate:
		sb.WriteByte('#')
	}
	return sb.String()
}

// disambiguation returns the shortest origin hint that tells the move apart
// from other legal moves of the same piece kind to the same square.
func disambiguation(board *chess.Board, applied *chess.AppliedMove) string {
	sameFile, sameRank, others := false, false, false
	for _, m := range engine.GenerateLegalMoves(board) {
		if m.PieceToMove != applied.PieceToMove || m.To != applied.To || m.From == applied.From {
			continue
		}
		others = true
		sameFile = sameFile || m.From.Col == applied.From.Col
		sameRank = sameRank || m.From.Rank == applied.From.Rank
	}

	switch {
	case !others:
		return ""
	case !sameFile:
		return string(byte(applied.From.Col))
	case !sameRank:
		return string(byte(applied.From.Rank))
	default:
		return applied.From.String()
	}
}
