package desk

import "log/slog"

// PencilConfig sets the resources of the desk's pencil.
type PencilConfig struct {
	PointDurability  int
	Length           int
	EraserDurability int
}

// Config configures the desk Model.
type Config struct {
	Pencil PencilConfig

	// Initial text on the paper.
	Text string

	ShowHelp bool
	Style    Style
	KeyMap   KeyMap

	// OnChange is called after every command that changed the paper or the
	// pencil.
	OnChange func(ChangeEvent)

	Logger *slog.Logger
}
