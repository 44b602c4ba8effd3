package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Doct0rLekter/minesweeper/internal/mines"
)

// ColumnLabel names a 0-based column: a..z, then aa, ab and so on.
func ColumnLabel(col int) string {
	var label []byte
	for col >= 0 {
		label = append([]byte{byte('a' + col%26)}, label...)
		col = col/26 - 1
	}
	return string(label)
}

func parseColumn(label string) (col int) {
	for _, r := range label {
		col = col*26 + int(r-'a') + 1
	}
	return col - 1
}

// ParseCell reads a cell either as column letters followed by a 1-based row
// ("b3", "b 3") or as a 1-based "row column" pair ("3 2"). The returned row
// and column are 0-based and inside the board.
func ParseCell(input string, width, height int) (row, col int, err error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, 0, errors.New("empty selection")
	}

	if letters := strings.IndexFunc(input, func(r rune) bool {
		return r < 'a' || r > 'z'
	}); letters != 0 {
		if letters < 0 {
			return 0, 0, errors.New("missing row number")
		}
		if letters > len(ColumnLabel(width-1)) {
			return 0, 0, columnRangeError(width)
		}
		col = parseColumn(input[:letters])
		if row, err = strconv.Atoi(strings.TrimSpace(input[letters:])); err != nil {
			return 0, 0, errors.New("row must be an int")
		}
	} else {
		parts := strings.FieldsFunc(input, func(r rune) bool {
			return unicode.IsSpace(r) || r == ','
		})
		if len(parts) != 2 {
			return 0, 0, errors.New("enter a cell like b3 or a row and a column")
		}
		if row, err = strconv.Atoi(parts[0]); err != nil {
			return 0, 0, errors.New("row must be an int")
		}
		if col, err = strconv.Atoi(parts[1]); err != nil {
			return 0, 0, errors.New("column must be an int")
		}
		col--
	}
	row--

	if row < 0 || row >= height {
		return 0, 0, fmt.Errorf("row must be between 1 and %d inclusive", height)
	}
	if col < 0 || col >= width {
		return 0, 0, columnRangeError(width)
	}
	return row, col, nil
}

func columnRangeError(width int) error {
	return fmt.Errorf("column must be between %s and %s", ColumnLabel(0), ColumnLabel(width-1))
}

func ParseBool(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	default:
		return false, errors.New("please enter either 'yes' or 'no'")
	}
}

func ParseDifficulty(input string) (mines.Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "e", "easy":
		return mines.Easy, nil
	case "2", "m", "medium":
		return mines.Medium, nil
	case "3", "h", "hard":
		return mines.Hard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", input)
	}
}
