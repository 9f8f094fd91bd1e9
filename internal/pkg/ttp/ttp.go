package ttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adiazny/ttp-slot-checker/internal/pkg/slot"
)

const (
	DefaultBaseAPIHost = "https://ttp.cbp.dhs.gov"

	slotsEndpoint = "schedulerapi/locations/%d/slots"

	cacheControlHeaderKey = "Cache-Control"
	noCacheValue          = "no-cache"
)

// ErrUnreachable is returned when the scheduler API could not be reached at all.
var ErrUnreachable = errors.New("could not connect to scheduler API")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BaseAPIHost string
}

// Client calls the scheduler API. Log and HTTP must be set.
type Client struct {
	Log    *logrus.Entry
	Config Config
	HTTP   HTTPClient
}

// SlotsURL builds the slots request for a location and window.
func (client *Client) SlotsURL(locationID int, start, end time.Time) string {
	host := client.Config.BaseAPIHost
	if host == "" {
		host = DefaultBaseAPIHost
	}

	return fmt.Sprintf("%s/%s?startTimestamp=%s&endTimestamp=%s",
		host,
		fmt.Sprintf(slotsEndpoint, locationID),
		start.Format(slot.TimestampLayout),
		end.Format(slot.TimestampLayout),
	)
}

// GetSlots fetches the slots of a location between start and end, in the
// order the scheduler API returns them.
func (client *Client) GetSlots(ctx context.Context, locationID int, start, end time.Time) ([]slot.Slot, error) {
	apiEndpoint := client.SlotsURL(locationID, start, end)

	client.Log.Infof("Fetching data from %s", apiEndpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request %w", err)
	}

	req.Header.Add(cacheControlHeaderKey, noCacheValue)

	resp, err := client.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.Body != nil {
		defer resp.Body.Close()
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error status code is not 200 OK, got %d", resp.StatusCode)
	}

	if resp.Body == nil {
		return nil, errors.New("error empty response body")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body %w", err)
	}

	slots := make([]slot.Slot, 0)

	err = json.Unmarshal(body, &slots)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling http request body %w", err)
	}

	if slots == nil {
		return nil, errors.New("error response body is null, expected an array of slots")
	}

	return slots, nil
}
