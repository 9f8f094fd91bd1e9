// Package checker looks for the first open interview slot at each configured
// location and hands a message about it to a notifier.
package checker

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adiazny/ttp-slot-checker/internal/pkg/notify"
	"github.com/adiazny/ttp-slot-checker/internal/pkg/slot"
)

const (
	messageFormat = "New appointment slot open at %s: %s"

	// MessageTimeLayout renders slot times as e.g. "Tuesday, November 03, 2026 at 02:30 PM".
	MessageTimeLayout = "Monday, January 02, 2006 at 03:04 PM"
)

type SlotGetter interface {
	GetSlots(ctx context.Context, locationID int, start, end time.Time) ([]slot.Slot, error)
}

// Config is fixed for the life of a run.
type Config struct {
	Locations  []slot.Location
	WeekDelta  int
	AlertTitle string
	Test       bool
	Tweet      bool
}

// Checker runs the checks for a Config. Log, Scheduler and Stdout must be set,
// along with Poster when tweeting or Alerter otherwise.
type Checker struct {
	Log       *logrus.Entry
	Config    Config
	Scheduler SlotGetter
	Alerter   notify.Alerter
	Poster    notify.Poster
	Stdout    io.Writer
	Now       func() time.Time
}

// Run checks every location in order. The first error aborts the run and is
// returned; later locations are not checked.
func (c *Checker) Run(ctx context.Context) error {
	c.Log.Infof("Starting checks (locations: %d)", len(c.Config.Locations))

	for _, location := range c.Config.Locations {
		if err := c.Check(ctx, location); err != nil {
			return err
		}
	}

	return nil
}

// Check performs one request for location and notifies about the first open
// slot, if any.
func (c *Checker) Check(ctx context.Context, location slot.Location) error {
	start := c.now()
	end := start.Add(time.Duration(c.Config.WeekDelta) * 7 * 24 * time.Hour)

	slots, err := c.Scheduler.GetSlots(ctx, location.ID, start, end)
	if err != nil {
		return fmt.Errorf("error checking %s: %w", location.Name, err)
	}

	opening, found := slot.FirstOpen(slots)
	if !found {
		c.Log.Infof("No openings for %s", location.Name)
		return nil
	}

	c.Log.Infof("Opening found for %s", location.Name)

	message, err := Message(location, opening)
	if err != nil {
		return err
	}

	return c.deliver(ctx, message)
}

func (c *Checker) deliver(ctx context.Context, message string) error {
	if c.Config.Test {
		fmt.Fprintln(c.Stdout, message)
	}

	if c.Config.Tweet {
		c.Log.Infof("Tweeting: %s", message)

		return c.Poster.Post(ctx, message)
	}

	if err := c.Alerter.Alert(ctx, c.Config.AlertTitle, message); err != nil {
		c.Log.WithError(err).Warn("local alert failed")
	}

	return nil
}

// Message formats the notification text for an open slot.
func Message(location slot.Location, opening slot.Slot) (string, error) {
	t, err := opening.Time()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(messageFormat, location.Name, t.Format(MessageTimeLayout)), nil
}

func (c *Checker) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}

	return time.Now()
}
