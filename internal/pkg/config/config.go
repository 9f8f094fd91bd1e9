package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/adiazny/ttp-slot-checker/internal/pkg/notify"
	"github.com/adiazny/ttp-slot-checker/internal/pkg/slot"
)

const (
	// WeekDelta is the length of the search window in weeks.
	WeekDelta = 12

	AlertTitle = "NEXUS interview slot found"
)

var (
	ErrMissingCredentials = errors.New("missing twitter credentials")
	ErrInvalidTimeout     = errors.New("HTTP_TIMEOUT_SECONDS must be greater than zero")
)

// EnvironmentVariables holds everything the process reads from its
// environment. Twitter credentials are only checked when tweeting.
type EnvironmentVariables struct {
	ConsumerKey        string `env:"CONSUMER_KEY"`
	ConsumerSecret     string `env:"CONSUMER_SECRET"`
	AccessTokenKey     string `env:"ACCESS_TOKEN_KEY"`
	AccessTokenSecret  string `env:"ACCESS_TOKEN_SECRET"`
	SchedulerAPIHost   string `env:"SCHEDULER_API_HOST" envDefault:"https://ttp.cbp.dhs.gov"`
	HTTPTimeoutSeconds int    `env:"HTTP_TIMEOUT_SECONDS" envDefault:"10"`
}

// LambdaVariables are read only by the Lambda entry point.
type LambdaVariables struct {
	TopicARN string `env:"TOPIC_ARN,required"`
	Tweet    bool   `env:"TWEET"`
}

func Setup() (envVars *EnvironmentVariables, err error) {
	_, err = maxprocs.Set()
	if err != nil {
		return nil, fmt.Errorf("error setting GOMAXPROCS %w", err)
	}

	envVars = &EnvironmentVariables{}

	err = env.Parse(envVars)
	if err != nil {
		return nil, fmt.Errorf("error parsing environment variables %w", err)
	}

	if envVars.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidTimeout, envVars.HTTPTimeoutSeconds)
	}

	return envVars, nil
}

func ParseLambda() (*LambdaVariables, error) {
	lambdaVars := &LambdaVariables{}

	if err := env.Parse(lambdaVars); err != nil {
		return nil, fmt.Errorf("error parsing lambda environment variables %w", err)
	}

	return lambdaVars, nil
}

// TwitterCredentials returns the four OAuth1 values, failing if any is unset.
func (e *EnvironmentVariables) TwitterCredentials() (notify.Credentials, error) {
	creds := notify.Credentials{
		ConsumerKey:       e.ConsumerKey,
		ConsumerSecret:    e.ConsumerSecret,
		AccessToken:       e.AccessTokenKey,
		AccessTokenSecret: e.AccessTokenSecret,
	}

	missing := make([]string, 0)
	if creds.ConsumerKey == "" {
		missing = append(missing, "CONSUMER_KEY")
	}
	if creds.ConsumerSecret == "" {
		missing = append(missing, "CONSUMER_SECRET")
	}
	if creds.AccessToken == "" {
		missing = append(missing, "ACCESS_TOKEN_KEY")
	}
	if creds.AccessTokenSecret == "" {
		missing = append(missing, "ACCESS_TOKEN_SECRET")
	}

	if len(missing) > 0 {
		return notify.Credentials{}, fmt.Errorf("%w: %v", ErrMissingCredentials, missing)
	}

	return creds, nil
}

// DefaultLocations returns the enrollment centers checked on every run.
func DefaultLocations() []slot.Location {
	return []slot.Location{
		{Name: "Blaine", ID: 5020},
	}
}
