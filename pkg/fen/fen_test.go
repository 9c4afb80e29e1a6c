package fen

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStartingPosition(t *testing.T) {
	var rec, err = Parse(StartingFEN)
	require.NoError(t, err)

	assert.Equal(t, White, rec.ActiveColor)
	assert.Equal(t, "KQkq", rec.Castling)
	assert.Equal(t, "-", rec.EnPassant)
	assert.Equal(t, 0, rec.HalfmoveClock)
	assert.Equal(t, 1, rec.FullmoveNumber)
	assert.Equal(t, StartingFEN, rec.Source)

	// Row 0 is the black back rank, row 7 the white one.
	assert.Equal(t, BlackRook, rec.Board[0][0])
	assert.Equal(t, BlackQueen, rec.Board[0][3])
	assert.Equal(t, BlackKing, rec.Board[0][4])
	assert.Equal(t, WhiteRook, rec.Board[7][7])
	assert.Equal(t, WhiteKing, rec.Board[7][4])
	for f := 0; f < 8; f++ {
		assert.Equal(t, BlackPawn, rec.Board[1][f])
		assert.Equal(t, WhitePawn, rec.Board[6][f])
	}
	for r := 2; r < 6; r++ {
		for f := 0; f < 8; f++ {
			assert.True(t, rec.Board[r][f].IsEmpty())
		}
	}
}

func TestParseEmptyBoard(t *testing.T) {
	var rec, err = Parse("8/8/8/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			assert.Equal(t, Empty, rec.Board[r][f])
		}
	}
}

func TestParseErrors(t *testing.T) {
	var tests = []struct {
		name  string
		input string
		want  error
	}{
		{
			name:  "five fields",
			input: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
			want:  ErrFieldCount,
		},
		{
			name:  "seven fields",
			input: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 extra",
			want:  ErrFieldCount,
		},
		{
			name:  "empty input",
			input: "",
			want:  ErrFieldCount,
		},
		{
			name:  "blank input",
			input: "   \t  ",
			want:  ErrFieldCount,
		},
		{
			name:  "seven ranks",
			input: "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want:  ErrPiecePlacement,
		},
		{
			name:  "nine ranks",
			input: "rnbqkbnr/pppppppp/8/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want:  ErrPiecePlacement,
		},
		{
			name:  "digit nine",
			input: "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want:  ErrPiecePlacement,
		},
		{
			name:  "digit zero",
			input: "rnbqkbnr/pppppppp/08/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want:  ErrPiecePlacement,
		},
		{
			name:  "rank sums to seven",
			input: "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want:  ErrPiecePlacement,
		},
		{
			name:  "rank sums to nine",
			input: "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want:  ErrPiecePlacement,
		},
		{
			name:  "digits sum to nine",
			input: "rnbqkbnr/pppppppp/54/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want:  ErrPiecePlacement,
		},
		{
			name:  "piece past eighth square",
			input: "rnbqkbnr/8p/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want:  ErrPiecePlacement,
		},
		{
			name:  "illegal letter",
			input: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
			want:  ErrPiecePlacement,
		},
		{
			name:  "empty rank",
			input: "rnbqkbnr/pppppppp//8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want:  ErrPiecePlacement,
		},
		{
			name:  "bad active color",
			input: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
			want:  ErrActiveColor,
		},
		{
			name:  "uppercase active color",
			input: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR W KQkq - 0 1",
			want:  ErrActiveColor,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var rec, err = Parse(test.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.want), "got %v", err)
			assert.Equal(t, Record{}, rec, "failed parse must not leak partial data")
		})
	}
}

func TestParseWhitespaceRuns(t *testing.T) {
	var rec, err = Parse("  8/8/8/8/8/8/8/8 \t b   KQ  e3\t42  7 ")
	require.NoError(t, err)
	assert.Equal(t, Black, rec.ActiveColor)
	assert.Equal(t, "KQ", rec.Castling)
	assert.Equal(t, "e3", rec.EnPassant)
	assert.Equal(t, 42, rec.HalfmoveClock)
	assert.Equal(t, 7, rec.FullmoveNumber)
}

func TestParseClockPermissive(t *testing.T) {
	var tests = []struct {
		token string
		want  int
	}{
		{"0", 0},
		{"37", 37},
		{"abc", ClockUnknown},
		{"1x", ClockUnknown},
		{"-5", ClockUnknown},
	}
	for _, test := range tests {
		var rec, err = Parse("8/8/8/8/8/8/8/8 w - - " + test.token + " 1")
		require.NoError(t, err, "clock token %q must not fail the parse", test.token)
		assert.Equal(t, test.want, rec.HalfmoveClock, "token %q", test.token)
	}
}

func TestParseOpaqueFields(t *testing.T) {
	// Castling and en passant are single tokens, not shape-checked.
	var rec, err = Parse("8/8/8/8/8/8/8/8 w zzz q9 0 1")
	require.NoError(t, err)
	assert.Equal(t, "zzz", rec.Castling)
	assert.Equal(t, "q9", rec.EnPassant)
}

func TestRoundTrip(t *testing.T) {
	var fens = []string{
		StartingFEN,
		"8/8/8/8/8/8/8/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"4k3/8/8/8/8/8/8/4K2R b K e3 99 50",
	}
	for _, src := range fens {
		var rec, err = Parse(src)
		require.NoError(t, err, src)
		assert.Equal(t, src, rec.String(), "canonical form of an already-canonical FEN")

		var again, err2 = Parse(rec.String())
		require.NoError(t, err2)
		assert.Equal(t, rec.Board, again.Board)
		assert.Equal(t, rec.ActiveColor, again.ActiveColor)
		assert.Equal(t, rec.Castling, again.Castling)
		assert.Equal(t, rec.EnPassant, again.EnPassant)
		assert.Equal(t, rec.HalfmoveClock, again.HalfmoveClock)
		assert.Equal(t, rec.FullmoveNumber, again.FullmoveNumber)
	}
}

func TestStringNormalizesWhitespace(t *testing.T) {
	var rec, err = Parse("8/8/8/8/8/8/8/8   w\t- - 0   1")
	require.NoError(t, err)
	assert.Equal(t, "8/8/8/8/8/8/8/8 w - - 0 1", rec.String())
}

func TestPieceMapping(t *testing.T) {
	for i, ch := range "PNBRQKpnbrqk" {
		var piece = PieceFromChar(ch)
		require.NotEqual(t, Empty, piece)
		assert.Equal(t, ch, piece.Char())
		if i < 6 {
			assert.Equal(t, White, piece.Color())
		} else {
			assert.Equal(t, Black, piece.Color())
		}
	}
	assert.Equal(t, Pawn, WhitePawn.Kind())
	assert.Equal(t, Pawn, BlackPawn.Kind())
	assert.Equal(t, King, BlackKing.Kind())
	assert.Equal(t, Queen, WhiteQueen.Kind())
	assert.Equal(t, Empty, PieceFromChar('x'))
	assert.Equal(t, Empty, PieceFromChar('1'))
}

func TestSquareHelpers(t *testing.T) {
	var row, file, ok = ParseSquare("e3")
	require.True(t, ok)
	assert.Equal(t, 5, row)
	assert.Equal(t, 4, file)
	assert.Equal(t, "e3", SquareName(row, file))

	_, _, ok = ParseSquare("-")
	assert.False(t, ok)
	_, _, ok = ParseSquare("i1")
	assert.False(t, ok)
	_, _, ok = ParseSquare("a9")
	assert.False(t, ok)
	_, _, ok = ParseSquare("e33")
	assert.False(t, ok)

	// a8 (row 0, file 0) is a light square.
	assert.False(t, IsDark(0, 0))
	assert.True(t, IsDark(0, 1))
	assert.True(t, IsDark(7, 0))
	assert.False(t, IsDark(7, 7))

	assert.EqualValues(t, 'a', FileName(0))
	assert.EqualValues(t, 'h', FileName(7))
	assert.EqualValues(t, '8', RankName(0))
	assert.EqualValues(t, '1', RankName(7))
}

func TestParseIsPure(t *testing.T) {
	var input = strings.Clone(StartingFEN)
	var first, err = Parse(input)
	require.NoError(t, err)
	var second, err2 = Parse(input)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}
