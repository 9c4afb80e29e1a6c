package fen

import "strings"

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

// FileName returns the letter shown under a board column, left to right.
func FileName(file int) byte {
	return fileNames[file]
}

// RankName returns the digit shown beside a board row. Row 0 is rank 8.
func RankName(row int) byte {
	return rankNames[7-row]
}

// IsDark reports whether the square at the given board indices renders dark.
// Squares where row+file is even render light.
func IsDark(row, file int) bool {
	return (row+file)%2 == 1
}

// ParseSquare converts a coordinate like "e3" to board indices. It reports
// ok=false for "-" and for anything that is not a valid coordinate.
func ParseSquare(s string) (row, file int, ok bool) {
	if len(s) != 2 {
		return 0, 0, false
	}
	var f = strings.Index(fileNames, s[0:1])
	var r = strings.Index(rankNames, s[1:2])
	if f < 0 || r < 0 {
		return 0, 0, false
	}
	return 7 - r, f, true
}

// SquareName is the inverse of ParseSquare.
func SquareName(row, file int) string {
	return string(fileNames[file]) + string(rankNames[7-row])
}
