package session

import (
	"github.com/fujioka8700/eitan/internal/catalog"
)

// poolLoadedMsg is sent when the word pool fetch completes.
type poolLoadedMsg struct {
	Words []catalog.Word
	Err   error
}

// tickMsg delivers one elapsed timer unit. Gen is the controller token
// that was current when the tick was scheduled; the controller drops
// the tick if the token has since been cancelled.
type tickMsg struct {
	Gen int
}
