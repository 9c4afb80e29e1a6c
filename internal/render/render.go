// Package render projects a parsed fen.Record onto a styled terminal grid.
// It owns the piece glyph tables; the parser knows nothing about display.
package render

import (
	"strconv"
	"strings"

	"fenboard/pkg/fen"
)

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

// unicodeGlyphs is indexed by fen.Piece.
var unicodeGlyphs = [13]string{
	" ",
	whitePawn, whiteKnight, whiteBishop, whiteRook, whiteQueen, whiteKing,
	blackPawn, blackKnight, blackBishop, blackRook, blackQueen, blackKing,
}

type Options struct {
	ASCII bool
	Theme Theme
}

type Renderer struct {
	ascii  bool
	styles cellStyles
}

func New(opts Options) *Renderer {
	return &Renderer{
		ascii:  opts.ASCII,
		styles: newCellStyles(opts.Theme.withDefaults()),
	}
}

func (r *Renderer) glyph(piece fen.Piece) string {
	if r.ascii {
		if piece.IsEmpty() {
			return " "
		}
		return string(piece.Char())
	}
	return unicodeGlyphs[piece]
}

// Board renders the 8x8 grid with rank and file labels. The en passant
// target square, when it names a valid coordinate, is highlighted.
func (r *Renderer) Board(rec fen.Record) string {
	var epRow, epFile, epOK = fen.ParseSquare(rec.EnPassant)

	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteString(r.styles.label.Render(string(fen.RankName(row))))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			var piece = rec.Board[row][file]
			sb.WriteString(r.cell(row, file, piece, epOK && row == epRow && file == epFile))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for file := 0; file < 8; file++ {
		sb.WriteString(r.styles.label.Render(" " + string(fen.FileName(file)) + " "))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func (r *Renderer) cell(row, file int, piece fen.Piece, highlighted bool) string {
	var white = piece.Color() == fen.White
	var style = r.styles.lightWhite
	switch {
	case highlighted && white:
		style = r.styles.hiWhite
	case highlighted:
		style = r.styles.hiBlack
	case fen.IsDark(row, file) && white:
		style = r.styles.darkWhite
	case fen.IsDark(row, file):
		style = r.styles.darkBlack
	case !white:
		style = r.styles.lightBlack
	}
	return style.Render(r.glyph(piece))
}

// Summary lists the non-board fields of a Record.
func (r *Renderer) Summary(rec fen.Record) string {
	var toMove = "white"
	if rec.ActiveColor == fen.Black {
		toMove = "black"
	}
	var lines = []string{
		"to move:   " + toMove,
		"castling:  " + rec.Castling,
		"en passant: " + rec.EnPassant,
		"halfmove:  " + clockText(rec.HalfmoveClock),
		"fullmove:  " + clockText(rec.FullmoveNumber),
	}
	return r.styles.label.Render(strings.Join(lines, "\n")) + "\n"
}

// Error formats a parse failure for display.
func (r *Renderer) Error(err error) string {
	return r.styles.errText.Render(err.Error())
}

func clockText(n int) string {
	if n == fen.ClockUnknown {
		return "?"
	}
	return strconv.Itoa(n)
}
