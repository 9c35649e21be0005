// Package engine provides chess move validation, legal move generation and
// position serialization.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chesspuzzle-go/internal/chess"
	"github.com/lgbarn/chesspuzzle-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece:
// uppercase for White, lowercase for Black.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string.
//
// Decoding is strict: the placement must describe 8 ranks of 8 files with
// exactly one king per colour and no pawn on a back rank, the en-passant
// square must fit the side to move, and the side not to move may not be in
// check. The two clock fields may be omitted and default to "0 1".
// Errors wrap errors.ErrInvalidFEN.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fmt.Errorf("expected 4 to 6 fields, got %d: %w", len(parts), errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4:]); err != nil {
		return nil, err
	}

	if problem := checkPlacement(board); problem != "" {
		return nil, fmt.Errorf("%s: %w", problem, errors.ErrInvalidFEN)
	}
	if IsInCheck(board, board.ToMove.Opposite()) {
		return nil, fmt.Errorf("side not to move is in check: %w", errors.ErrInvalidFEN)
	}

	return board, nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error. It is meant
// for package-level fixtures and tests.
func MustBoardFromFEN(fen string) *chess.Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected 8 ranks, got %d: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.Rank(chess.LastRank - i)
		col := chess.Col('a')

		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				col += chess.Col(c - '0')
			default:
				if c > unicode.MaxASCII || chess.PieceFromLetter(byte(c)) == chess.Empty {
					return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
				}
				if col > 'h' {
					return fmt.Errorf("rank %c has more than 8 files: %w", rank, errors.ErrInvalidFEN)
				}

				piece := chess.PieceFromLetter(byte(c))
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(col, rank, chess.MakeColouredPiece(colour, piece))
				if piece == chess.King {
					board.SetKingSquare(colour, chess.Sq(col, rank))
				}
				col++
			}
			if col > 'h'+1 {
				return fmt.Errorf("rank %c has more than 8 files: %w", rank, errors.ErrInvalidFEN)
			}
		}
		if col != 'h'+1 {
			return fmt.Errorf("rank %c has %d files: %w", rank, int(col-'a'), errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", field, errors.ErrInvalidFEN)
	}
	return nil
}

// castlingLetters maps FEN castling letters to their flags.
var castlingLetters = map[rune]chess.CastlingRights{
	'K': chess.WhiteKingside,
	'Q': chess.WhiteQueenside,
	'k': chess.BlackKingside,
	'q': chess.BlackQueenside,
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, field string) error {
	board.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}

	for _, c := range field {
		flag, ok := castlingLetters[c]
		if !ok || board.Castling.Has(flag) {
			return fmt.Errorf("invalid castling rights: %s: %w", field, errors.ErrInvalidFEN)
		}
		if !castlingPiecesHome(board, flag) {
			return fmt.Errorf("castling right %c without king and rook at home: %w", c, errors.ErrInvalidFEN)
		}
		board.Castling |= flag
	}
	return nil
}

// castlingPiecesHome reports whether the king and rook a castling flag
// refers to still stand on their original squares.
func castlingPiecesHome(board *chess.Board, flag chess.CastlingRights) bool {
	colour := chess.White
	if flag == chess.BlackKingside || flag == chess.BlackQueenside {
		colour = chess.Black
	}
	home := chess.HomeRank(colour)
	rookCol := chess.Col('a')
	if flag == chess.WhiteKingside || flag == chess.BlackKingside {
		rookCol = 'h'
	}
	return board.Get('e', home) == chess.MakeColouredPiece(colour, chess.King) &&
		board.Get(rookCol, home) == chess.MakeColouredPiece(colour, chess.Rook)
}

// parseEnPassant parses the en passant target square field. The target must
// lie behind a pawn that has just made a double step.
func parseEnPassant(board *chess.Board, field string) error {
	board.EnPassant = false
	board.EPCol = 0
	board.EPRank = 0
	if field == "-" {
		return nil
	}

	sq, ok := chess.ParseSquare(field)
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", field, errors.ErrInvalidFEN)
	}

	mover := board.ToMove.Opposite()
	dir := chess.ColourOffset(mover)
	if int(sq.Rank) != int(chess.PawnRank(mover))+dir {
		return fmt.Errorf("en passant square %s does not fit side to move: %w", field, errors.ErrInvalidFEN)
	}
	if board.At(sq) != chess.Empty ||
		board.At(sq.Offset(0, -dir)) != chess.Empty ||
		board.At(sq.Offset(0, dir)) != chess.MakeColouredPiece(mover, chess.Pawn) {
		return fmt.Errorf("no double-stepped pawn behind %s: %w", field, errors.ErrInvalidFEN)
	}

	board.EnPassant = true
	board.EPCol = sq.Col
	board.EPRank = sq.Rank
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, fields []string) error {
	board.HalfmoveClock = 0
	board.MoveNumber = 1

	if len(fields) >= 1 {
		n, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid halfmove clock %q: %w", fields[0], errors.ErrInvalidFEN)
		}
		board.HalfmoveClock = uint(n)
	}
	if len(fields) >= 2 {
		n, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("invalid fullmove number %q: %w", fields[1], errors.ErrInvalidFEN)
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// PlacementFEN returns only the piece placement field of a board's FEN.
func PlacementFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		emptyCount := 0
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > '1' {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if sq, ok := board.EnPassantSquare(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	return chess.NewInitialBoard()
}
