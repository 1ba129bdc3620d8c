package pairing

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Requests is how many partners a member asked for in a week.
type Requests int

const (
	None  Requests = 0
	Once  Requests = 1
	Twice Requests = 2
)

var (
	zeroSigns  = []string{"0", "０", " "}
	onceSigns  = []string{"1", "１", "V", "v", "X", "x", "Ｖ", "ｖ", "Ｘ", "ｘ", "once"}
	twiceSigns = []string{"2", "２", "twice"}
)

var signTable = buildSignTable()

func buildSignTable() map[string]Requests {
	table := make(map[string]Requests, len(zeroSigns)+len(onceSigns)+len(twiceSigns))
	for _, group := range []struct {
		signs []string
		value Requests
	}{
		{zeroSigns, None},
		{onceSigns, Once},
		{twiceSigns, Twice},
	} {
		for _, sign := range group.signs {
			table[normalizeSign(sign)] = group.value
		}
	}
	return table
}

// normalizeSign folds full-width forms, drops whitespace and uppercases.
func normalizeSign(cell string) string {
	folded := width.Fold.String(cell)
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, folded)
	return strings.ToUpper(stripped)
}

// Classify maps a raw cell to the number of partners it requests. Blank,
// zero and unrecognized cells all classify as None.
func Classify(cell string) Requests {
	return signTable[normalizeSign(cell)]
}

// IsAvailable reports whether the cell marks its member free at that slot.
func IsAvailable(cell string) bool {
	return Classify(cell) > None
}
