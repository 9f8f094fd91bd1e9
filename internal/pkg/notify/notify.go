// Package notify delivers slot messages to a human, either as a local alert
// or as a public social post.
package notify

import "context"

// Alerter raises a local alert with a title and body.
type Alerter interface {
	Alert(ctx context.Context, title, message string) error
}

// Poster publishes a message to a public feed.
type Poster interface {
	Post(ctx context.Context, message string) error
}
