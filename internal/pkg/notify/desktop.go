package notify

import (
	"context"
	"fmt"

	"github.com/gen2brain/beeep"
)

// Desktop raises a native OS notification. The backend is picked by beeep per
// platform (osascript, D-Bus or notify-send, toast).
type Desktop struct {
	notify func(title, message string) error
}

func NewDesktop() *Desktop {
	return &Desktop{
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

func (d *Desktop) Alert(_ context.Context, title, message string) error {
	if err := d.notify(title, message); err != nil {
		return fmt.Errorf("error raising desktop notification %w", err)
	}

	return nil
}
