package notify

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNS subject lines are capped at 100 characters.
const maxSubjectLength = 100

type SNSPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNS raises alerts by publishing to an SNS topic. It is the alert backend for
// hosts without a desktop.
type SNS struct {
	Client   SNSPublisher
	TopicARN string
}

func (s *SNS) Alert(ctx context.Context, title, message string) error {
	subject := truncateSubject(title)

	input := &sns.PublishInput{
		Message:  &message,
		Subject:  &subject,
		TopicArn: &s.TopicARN,
	}

	_, err := s.Client.Publish(ctx, input)
	if err != nil {
		return fmt.Errorf("error publishing to AWS SNS topic %s: %w", s.TopicARN, err)
	}

	return nil
}

// truncateSubject cuts s to at most maxSubjectLength bytes without splitting
// a multi-byte rune.
func truncateSubject(s string) string {
	if len(s) <= maxSubjectLength {
		return s
	}

	cut := maxSubjectLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}
