// Package movetext checks that an opening's move string is legal chess.
//
// Catalog move strings use PGN-style movetext with attached move numbers,
// e.g. "1.e4 e5 2.Nf3". Legality is checked by replaying the moves from the
// starting position.
package movetext

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// Issue describes a catalog entry whose move string failed the check.
type Issue struct {
	// Index is the entry's position in the dataset array.
	Index int
	// Moves is the offending move string.
	Moves string
	// Err is the underlying parse or legality failure.
	Err error
}

func (i Issue) String() string {
	return fmt.Sprintf("entry %d (%q): %v", i.Index, i.Moves, i.Err)
}

// Check replays movetext from the starting position and returns the first
// illegal or unparseable move. Move numbers ("1.", "3...") and game result
// markers are tolerated; an empty string is valid.
func Check(movetext string) error {
	game := chess.NewGame()
	for _, token := range strings.Fields(movetext) {
		san := stripMoveNumber(token)
		if san == "" || isResultMarker(san) {
			continue
		}
		if err := game.MoveStr(san); err != nil {
			return fmt.Errorf("move %q: %w", san, err)
		}
	}
	return nil
}

// stripMoveNumber removes a leading move number from a token, turning
// "1.b4" into "b4" and "3...c5" into "c5". SAN itself never contains a
// dot, so everything up to the last dot must be digits and dots for the
// prefix to be a move number.
func stripMoveNumber(token string) string {
	idx := strings.LastIndexByte(token, '.')
	if idx < 0 {
		return token
	}
	for _, ch := range token[:idx] {
		if ch != '.' && (ch < '0' || ch > '9') {
			return token
		}
	}
	return token[idx+1:]
}

func isResultMarker(token string) bool {
	switch token {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}
