package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	cfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/sirupsen/logrus"

	"github.com/adiazny/ttp-slot-checker/internal/pkg/checker"
	"github.com/adiazny/ttp-slot-checker/internal/pkg/config"
	"github.com/adiazny/ttp-slot-checker/internal/pkg/logging"
	"github.com/adiazny/ttp-slot-checker/internal/pkg/notify"
	"github.com/adiazny/ttp-slot-checker/internal/pkg/ttp"
)

// Response is returned to the scheduled invocation.
type Response struct {
	Locations int    `json:"locations"`
	Status    string `json:"status"`
}

func newChecker(log *logrus.Entry, envVars *config.EnvironmentVariables, lambdaVars *config.LambdaVariables, publisher notify.SNSPublisher) (*checker.Checker, error) {
	slotChecker := &checker.Checker{
		Log: log,
		Config: checker.Config{
			Locations:  config.DefaultLocations(),
			WeekDelta:  config.WeekDelta,
			AlertTitle: config.AlertTitle,
			Tweet:      lambdaVars.Tweet,
		},
		Scheduler: &ttp.Client{
			Log:    log,
			Config: ttp.Config{BaseAPIHost: envVars.SchedulerAPIHost},
			HTTP: &http.Client{
				Timeout: time.Duration(envVars.HTTPTimeoutSeconds) * time.Second,
			},
		},
		Alerter: &notify.SNS{
			Client:   publisher,
			TopicARN: lambdaVars.TopicARN,
		},
		Stdout: os.Stdout,
	}

	if lambdaVars.Tweet {
		creds, err := envVars.TwitterCredentials()
		if err != nil {
			return nil, err
		}

		slotChecker.Poster = notify.NewTwitter(log, creds)
	}

	return slotChecker, nil
}

func HandleRequest(ctx context.Context) (Response, error) {
	log := logging.NewEntry(os.Stdout, true)
	log.Info("starting up")

	defer log.Info("shutting down")

	envVars, err := config.Setup()
	if err != nil {
		log.WithError(err).Error()
		return Response{}, err
	}

	lambdaVars, err := config.ParseLambda()
	if err != nil {
		log.WithError(err).Error()
		return Response{}, err
	}

	awsConfig, err := cfg.LoadDefaultConfig(ctx)
	if err != nil {
		log.WithError(err).Error()
		return Response{}, err
	}

	slotChecker, err := newChecker(log, envVars, lambdaVars, sns.NewFromConfig(awsConfig))
	if err != nil {
		log.WithError(err).Error()
		return Response{}, err
	}

	err = slotChecker.Run(ctx)
	if errors.Is(err, ttp.ErrUnreachable) {
		log.WithError(err).Error("Could not connect to scheduler API")
		return Response{}, err
	} else if err != nil {
		log.WithError(err).Error("check failed")
		return Response{}, err
	}

	return Response{Locations: len(slotChecker.Config.Locations), Status: "ok"}, nil
}

func main() {
	lambda.Start(HandleRequest)
}
