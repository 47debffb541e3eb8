package desk

import "github.com/iw2rmb/graphite/pencil"

// ChangeEvent is the desk state after an effective command.
type ChangeEvent struct {
	Command Command
	Version uint64
	Text    string
	Stats   pencil.Stats
}
