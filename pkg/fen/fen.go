package fen

import (
	"fmt"
	"strconv"
	"strings"
)

// StartingFEN is the standard initial chess position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ClockUnknown marks a clock field whose token was not a non-negative base-10
// number. Such tokens do not fail the parse.
const ClockUnknown = -1

// Record is a parsed FEN string. It is a value type; a Record returned by
// Parse is never shared or mutated afterwards.
type Record struct {
	Board          Board
	ActiveColor    Color
	Castling       string
	EnPassant      string
	HalfmoveClock  int
	FullmoveNumber int
	Source         string
}

// Parse converts a FEN string into a Record. It fails all-or-nothing: on any
// error the zero Record is returned and no partial data escapes. The castling
// and en passant fields are kept as opaque tokens; the clock fields convert
// permissively (see ClockUnknown). Errors wrap ErrFieldCount,
// ErrPiecePlacement or ErrActiveColor.
func Parse(input string) (Record, error) {
	var fields = strings.Fields(input)
	if len(fields) != 6 {
		return Record{}, fmt.Errorf("%w, got %d in %q", ErrFieldCount, len(fields), input)
	}

	var board, err = parsePlacement(fields[0])
	if err != nil {
		return Record{}, err
	}

	var active Color
	switch fields[1] {
	case "w":
		active = White
	case "b":
		active = Black
	default:
		return Record{}, fmt.Errorf("%w, got %q", ErrActiveColor, fields[1])
	}

	return Record{
		Board:          board,
		ActiveColor:    active,
		Castling:       fields[2],
		EnPassant:      fields[3],
		HalfmoveClock:  parseClock(fields[4]),
		FullmoveNumber: parseClock(fields[5]),
		Source:         input,
	}, nil
}

func parsePlacement(placement string) (Board, error) {
	var ranks = strings.Split(placement, "/")
	if len(ranks) != 8 {
		return Board{}, fmt.Errorf("%w: expected 8 ranks, got %d", ErrPiecePlacement, len(ranks))
	}

	var board Board
	for r, rank := range ranks {
		var file = 0
		for _, ch := range rank {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			var piece = PieceFromChar(ch)
			if piece == Empty {
				return Board{}, fmt.Errorf("%w: bad character %q in rank %d", ErrPiecePlacement, ch, r+1)
			}
			if file >= 8 {
				return Board{}, fmt.Errorf("%w: rank %d overflows 8 squares", ErrPiecePlacement, r+1)
			}
			board[r][file] = piece
			file++
		}
		if file != 8 {
			return Board{}, fmt.Errorf("%w: rank %d has %d squares", ErrPiecePlacement, r+1, file)
		}
	}
	return board, nil
}

// parseClock converts a clock token. Non-numeric and negative tokens become
// ClockUnknown rather than failing the whole parse.
func parseClock(token string) int {
	var n, err = strconv.Atoi(token)
	if err != nil || n < 0 {
		return ClockUnknown
	}
	return n
}

// String renders the Record back as a FEN string with single-space field
// separators and compressed empty runs. The result re-parses to an
// equivalent Record.
func (rec Record) String() string {
	var sb strings.Builder

	for r := 0; r < 8; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		var emptyCount = 0
		for f := 0; f < 8; f++ {
			var piece = rec.Board[r][f]
			if piece == Empty {
				emptyCount++
				continue
			}
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteRune(piece.Char())
		}
		if emptyCount != 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(rec.ActiveColor.String())
	sb.WriteByte(' ')
	sb.WriteString(rec.Castling)
	sb.WriteByte(' ')
	sb.WriteString(rec.EnPassant)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(rec.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(rec.FullmoveNumber))

	return sb.String()
}
