package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dghubble/go-twitter/twitter"
	"github.com/dghubble/oauth1"
	"github.com/sirupsen/logrus"
)

// duplicateStatusCode is the Twitter API error code for a status that repeats
// one already posted.
const duplicateStatusCode = 187

type Credentials struct {
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
}

type StatusUpdater interface {
	Update(status string, params *twitter.StatusUpdateParams) (*twitter.Tweet, *http.Response, error)
}

type Twitter struct {
	Log      *logrus.Entry
	Statuses StatusUpdater
}

// NewTwitter builds an OAuth1 user-context client from the four credentials.
func NewTwitter(log *logrus.Entry, creds Credentials) *Twitter {
	config := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret)

	httpClient := config.Client(context.Background(), token)

	return &Twitter{
		Log:      log,
		Statuses: twitter.NewClient(httpClient).Statuses,
	}
}

// Post publishes message as a status. A duplicate status rejection is logged
// and treated as delivered.
func (t *Twitter) Post(_ context.Context, message string) error {
	_, _, err := t.Statuses.Update(message, nil)
	if err == nil {
		return nil
	}

	if isDuplicateStatus(err) {
		t.Log.Info("Tweet rejected (duplicate status)")
		return nil
	}

	return fmt.Errorf("error posting tweet %w", err)
}

func isDuplicateStatus(err error) bool {
	var apiErr twitter.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return len(apiErr.Errors) == 1 && apiErr.Errors[0].Code == duplicateStatusCode
}
