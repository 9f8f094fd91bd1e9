// Command ttp-slot-checker looks for open Trusted Traveler interview slots
// and raises a desktop notification or posts a tweet when one appears.
//
// Usage:
//
//	ttp-slot-checker            # desktop notification on an opening
//	ttp-slot-checker --test     # also print the message
//	ttp-slot-checker --tweet    # post to Twitter instead of notifying locally
package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adiazny/ttp-slot-checker/internal/pkg/checker"
	"github.com/adiazny/ttp-slot-checker/internal/pkg/config"
	"github.com/adiazny/ttp-slot-checker/internal/pkg/logging"
	"github.com/adiazny/ttp-slot-checker/internal/pkg/notify"
	"github.com/adiazny/ttp-slot-checker/internal/pkg/ttp"
)

type options struct {
	test  bool
	tweet bool
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "ttp-slot-checker",
		Short: "Check for open Trusted Traveler interview slots",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError(cmd, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.NewEntry(stdout, false)

			envVars, err := config.Setup()
			if err != nil {
				log.WithError(err).Error("setup failed")
				return err
			}

			slotChecker, err := newChecker(log, envVars, opts, stdout)
			if err != nil {
				log.WithError(err).Error("setup failed")
				return err
			}

			return run(cmd.Context(), log, slotChecker)
		},
	}

	cmd.SetFlagErrorFunc(usageError)

	cmd.Flags().BoolVar(&opts.test, "test", false, "print the message to stdout as well")
	cmd.Flags().BoolVar(&opts.tweet, "tweet", false, "post to Twitter instead of raising a desktop notification")

	return cmd
}

// usageError reports command-line mistakes on stderr. Run failures are
// reported through the logger only.
func usageError(cmd *cobra.Command, err error) error {
	cmd.PrintErrln("Error:", err)
	cmd.PrintErr(cmd.UsageString())

	return err
}

func newChecker(log *logrus.Entry, envVars *config.EnvironmentVariables, opts options, stdout io.Writer) (*checker.Checker, error) {
	slotChecker := &checker.Checker{
		Log: log,
		Config: checker.Config{
			Locations:  config.DefaultLocations(),
			WeekDelta:  config.WeekDelta,
			AlertTitle: config.AlertTitle,
			Test:       opts.test,
			Tweet:      opts.tweet,
		},
		Scheduler: &ttp.Client{
			Log:    log,
			Config: ttp.Config{BaseAPIHost: envVars.SchedulerAPIHost},
			HTTP: &http.Client{
				Timeout: time.Duration(envVars.HTTPTimeoutSeconds) * time.Second,
			},
		},
		Stdout: stdout,
	}

	if opts.tweet {
		creds, err := envVars.TwitterCredentials()
		if err != nil {
			return nil, err
		}

		slotChecker.Poster = notify.NewTwitter(log, creds)
	} else {
		slotChecker.Alerter = notify.NewDesktop()
	}

	return slotChecker, nil
}

func run(ctx context.Context, log *logrus.Entry, slotChecker *checker.Checker) error {
	err := slotChecker.Run(ctx)
	if errors.Is(err, ttp.ErrUnreachable) {
		log.WithError(err).Error("Could not connect to scheduler API")
	} else if err != nil {
		log.WithError(err).Error("check failed")
	}

	return err
}

func exitCode(err error) int {
	if err != nil {
		return 1
	}

	return 0
}

func main() {
	err := newRootCmd(os.Stdout).ExecuteContext(context.Background())
	os.Exit(exitCode(err))
}
