// Package chess provides core chess types: colours, pieces, squares,
// the board state and move descriptors.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type.
type Piece int

const (
	Off   Piece = iota // Off the board (hedge square)
	Empty              // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', ' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PromotionPieces lists the pieces a pawn may promote to, strongest first.
var PromotionPieces = []Piece{Queen, Rook, Bishop, Knight}

// IsPromotionPiece reports whether p is a legal promotion target.
func IsPromotionPiece(p Piece) bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// PieceFromLetter maps a piece letter in either case to a piece type.
// It returns Empty for anything else.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	}
	return Empty
}

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// String returns a short name for the move class.
func (c MoveClass) String() string {
	switch c {
	case PawnMove:
		return "pawn"
	case PawnMoveWithPromotion:
		return "promotion"
	case EnPassantPawnMove:
		return "en-passant"
	case PieceMove:
		return "piece"
	case KingsideCastle:
		return "O-O"
	case QueensideCastle:
		return "O-O-O"
	}
	return "unknown"
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	Hedge     = 2 // Hedge size for knight move calculations

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// RankConvert converts a rank character to a board array index.
func RankConvert(rank Rank) int {
	if rank >= FirstRank && rank <= LastRank {
		return int(rank-RankBase) + Hedge
	}
	return 0
}

// ColConvert converts a column character to a board array index.
func ColConvert(col Col) int {
	if col >= FirstCol && col <= LastCol {
		return int(col-ColBase) + Hedge
	}
	return 0
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank the given colour's pieces start on.
func HomeRank(colour Colour) Rank {
	if colour == White {
		return '1'
	}
	return '8'
}

// PawnRank returns the rank the given colour's pawns start on.
func PawnRank(colour Colour) Rank {
	if colour == White {
		return '2'
	}
	return '7'
}

// PromotionRank returns the rank on which the given colour's pawns promote.
func PromotionRank(colour Colour) Rank {
	if colour == White {
		return '8'
	}
	return '1'
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsOccupied reports whether a square value holds a piece.
func IsOccupied(p Piece) bool {
	return p != Empty && p != Off
}

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// CastlingRights is a set of the four castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every flag in f is present.
func (c CastlingRights) Has(f CastlingRights) bool {
	return c&f == f && f != 0
}

// Without returns the rights with the flags in f removed.
func (c CastlingRights) Without(f CastlingRights) CastlingRights {
	return c &^ f
}

// String renders the rights in FEN form ("KQkq", "-" when empty).
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var b []byte
	if c.Has(WhiteKingside) {
		b = append(b, 'K')
	}
	if c.Has(WhiteQueenside) {
		b = append(b, 'Q')
	}
	if c.Has(BlackKingside) {
		b = append(b, 'k')
	}
	if c.Has(BlackQueenside) {
		b = append(b, 'q')
	}
	return string(b)
}

// CastlingFlag returns the flag for the given colour and side.
func CastlingFlag(colour Colour, kingside bool) CastlingRights {
	switch {
	case colour == White && kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// BothCastlingFlags returns both castling flags of a colour.
func BothCastlingFlags(colour Colour) CastlingRights {
	return CastlingFlag(colour, true) | CastlingFlag(colour, false)
}
