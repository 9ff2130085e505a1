package gridcodec

import (
	"strconv"
	"strings"

	"github.com/shinji-kodama/irishgrid/internal/model"
)

// squareSize is the number of rows and columns in the letter table.
const squareSize = 5

// digitWidth is the width of an easting or northing digit string in a grid
// reference, i.e. one-metre resolution within a 100 km square.
const digitWidth = 5

// maxAxisDigits is the longest absolute coordinate the grid can express:
// one square digit followed by digitWidth remainder digits.
const maxAxisDigits = digitWidth + 1

// letters is indexed as letters[northing square digit][easting square digit].
// Row 0 is the southernmost band, so "V" is the square at the false origin.
var letters = [squareSize][squareSize]string{
	{"V", "W", "X", "Y", "Z"},
	{"Q", "R", "S", "T", "U"},
	{"L", "M", "N", "O", "P"},
	{"F", "G", "H", "J", "K"},
	{"A", "B", "C", "D", "E"},
}

// Letter returns the square letter at the given northing row and easting
// column, or false if either index is outside 0-4.
func Letter(row, col int) (string, bool) {
	if row < 0 || row >= squareSize || col < 0 || col >= squareSize {
		return "", false
	}
	return letters[row][col], true
}

// Square returns the northing row and easting column of a square letter.
// Lookup is case-insensitive. It returns false for "I" and any other
// string that is not a single table letter.
func Square(letter string) (row, col int, ok bool) {
	upper := strings.ToUpper(letter)
	for r := 0; r < squareSize; r++ {
		for c := 0; c < squareSize; c++ {
			if letters[r][c] == upper {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Parse validates a grid reference string of the form
// "<letter> <easting> <northing>". Tokens may be separated by any run of
// whitespace and the letter is case-insensitive.
//
// Errors are *model.ConversionError values:
//   - ErrKindMalformedInput if there are not exactly three tokens
//   - ErrKindInvalidGridLetter if the letter is not in the table
//   - ErrKindInvalidGridDigits if either digit string is not exactly five digits
func Parse(s string) (model.GridReference, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return model.GridReference{}, model.NewConversionError(
			model.ErrKindMalformedInput, model.StageParse, s,
			"grid reference must have 3 fields (letter easting northing), got %d", len(fields))
	}

	ref := model.GridReference{
		Letter:   strings.ToUpper(fields[0]),
		Easting:  fields[1],
		Northing: fields[2],
	}
	if err := validate(ref, model.StageParse, s); err != nil {
		return model.GridReference{}, err
	}
	return ref, nil
}

// Decode converts a grid reference string into absolute grid coordinates.
//
// Example:
//
//	Decode("V 92315 85538") → GridXY{Easting: 92315, Northing: 85538}
//	Decode("N 15904 34671") → GridXY{Easting: 215904, Northing: 234671}
func Decode(s string) (model.GridXY, error) {
	ref, err := Parse(s)
	if err != nil {
		return model.GridXY{}, err
	}
	return DecodeReference(ref)
}

// DecodeReference converts an already tokenized grid reference into absolute
// grid coordinates. The reference is validated again so that values built
// by hand get the same checks as parsed ones.
func DecodeReference(ref model.GridReference) (model.GridXY, error) {
	input := ref.String()
	if err := validate(ref, model.StageDecode, input); err != nil {
		return model.GridXY{}, err
	}

	row, col, _ := Square(ref.Letter)

	// The square digit prefixes the five remainder digits on each axis.
	easting, err := strconv.Atoi(strconv.Itoa(col) + ref.Easting)
	if err != nil {
		return model.GridXY{}, model.NewConversionError(
			model.ErrKindInvalidGridDigits, model.StageDecode, input, "easting %q is not numeric", ref.Easting)
	}
	northing, err := strconv.Atoi(strconv.Itoa(row) + ref.Northing)
	if err != nil {
		return model.GridXY{}, model.NewConversionError(
			model.ErrKindInvalidGridDigits, model.StageDecode, input, "northing %q is not numeric", ref.Northing)
	}

	return model.GridXY{Easting: easting, Northing: northing}, nil
}

// Encode converts absolute grid coordinates into a grid reference.
//
// A coordinate with fewer than six digits lies in square column/row 0; a
// six-digit coordinate carries its square digit as the first digit. The
// remainder digits are zero-padded to five so that the result always
// decodes back to the same coordinates.
//
// Errors are *model.ConversionError values of kind ErrKindOutOfRange when
// either axis is negative, longer than six digits, or has a square digit
// outside 0-4.
func Encode(xy model.GridXY) (model.GridReference, error) {
	col, easting, err := splitAxis("easting", xy.Easting, xy)
	if err != nil {
		return model.GridReference{}, err
	}
	row, northing, err := splitAxis("northing", xy.Northing, xy)
	if err != nil {
		return model.GridReference{}, err
	}

	letter, ok := Letter(row, col)
	if !ok {
		return model.GridReference{}, model.NewConversionError(
			model.ErrKindOutOfRange, model.StageEncode, xy.String(),
			"square digits (%d, %d) are outside the Irish Grid", col, row)
	}

	return model.GridReference{Letter: letter, Easting: easting, Northing: northing}, nil
}

// EncodeString is Encode followed by GridReference.String. Unrepresentable
// coordinates yield model.NotInIreland together with the error.
func EncodeString(xy model.GridXY) (string, error) {
	ref, err := Encode(xy)
	if err != nil {
		return model.NotInIreland, err
	}
	return ref.String(), nil
}

// splitAxis separates a coordinate into its square digit and the five
// remainder digits.
func splitAxis(axis string, v int, xy model.GridXY) (int, string, error) {
	if v < 0 {
		return 0, "", model.NewConversionError(
			model.ErrKindOutOfRange, model.StageEncode, xy.String(),
			"%s %d is negative", axis, v)
	}

	digits := strconv.Itoa(v)
	if len(digits) > maxAxisDigits {
		return 0, "", model.NewConversionError(
			model.ErrKindOutOfRange, model.StageEncode, xy.String(),
			"%s %d has more than %d digits", axis, v, maxAxisDigits)
	}

	square := v / 100000
	remainder := v % 100000
	return square, padDigits(remainder), nil
}

// padDigits formats a remainder as exactly digitWidth digits.
func padDigits(v int) string {
	s := strconv.Itoa(v)
	if len(s) < digitWidth {
		s = strings.Repeat("0", digitWidth-len(s)) + s
	}
	return s
}

// validate checks the letter and both digit strings of a reference.
func validate(ref model.GridReference, stage model.Stage, input string) error {
	if _, _, ok := Square(ref.Letter); !ok {
		return model.NewConversionError(
			model.ErrKindInvalidGridLetter, stage, input,
			"%q is not an Irish Grid square letter", ref.Letter)
	}
	if !isDigits(ref.Easting, digitWidth) {
		return model.NewConversionError(
			model.ErrKindInvalidGridDigits, stage, input,
			"easting %q must be exactly %d digits", ref.Easting, digitWidth)
	}
	if !isDigits(ref.Northing, digitWidth) {
		return model.NewConversionError(
			model.ErrKindInvalidGridDigits, stage, input,
			"northing %q must be exactly %d digits", ref.Northing, digitWidth)
	}
	return nil
}

// isDigits reports whether s consists of exactly n ASCII digits.
// strconv.Atoi alone would also accept a sign.
func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
