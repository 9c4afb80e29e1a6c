package fen

import (
	"errors"
	"strings"
)

// Color is the side a piece belongs to, and the side to move.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Kind is a piece type without its color.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is the occupant of one board square. The zero value is Empty.
type Piece int

const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// pieceChars lists the wire letters in Piece order, uppercase white first.
const pieceChars = "PNBRQKpnbrqk"

// PieceFromChar maps a FEN letter to its Piece, or Empty for any other rune.
func PieceFromChar(ch rune) Piece {
	var i = strings.IndexRune(pieceChars, ch)
	if i < 0 {
		return Empty
	}
	return Piece(i + 1)
}

// Char returns the FEN letter of an occupied square.
func (p Piece) Char() rune {
	if p == Empty || int(p) > len(pieceChars) {
		return ' '
	}
	return rune(pieceChars[p-1])
}

func (p Piece) IsEmpty() bool {
	return p == Empty
}

func (p Piece) Color() Color {
	if p >= BlackPawn {
		return Black
	}
	return White
}

func (p Piece) Kind() Kind {
	if p == Empty {
		return NoKind
	}
	return Kind((int(p)-1)%6 + 1)
}

// Board holds the 8x8 grid of squares. Row 0 is the first rank field of the
// FEN string (rank 8 by convention); the parser preserves order only.
type Board [8][8]Piece

var (
	ErrFieldCount     = errors.New("fen: expected 6 fields")
	ErrPiecePlacement = errors.New("fen: malformed piece placement")
	ErrActiveColor    = errors.New("fen: active color must be w or b")
)
