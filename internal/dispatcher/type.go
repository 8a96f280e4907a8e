package dispatcher

import "time"

// timeNow is swapped out in tests.
var timeNow = time.Now

// Config controls fan-out targets and the retry schedule.
type Config struct {
	// AdminRecipients receive email and sms deliveries for new leads.
	AdminRecipients []string
	// LeadChannels are the channels enabled for lead notifications.
	LeadChannels []string
	// WebhookURL is the target for webhook-channel deliveries.
	WebhookURL string

	MaxAttempts    int
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration
}

// backoff returns the delay before the next attempt: base * 2^(attempts-1),
// capped at RetryMaxDelay.
func (c Config) backoff(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}

	delay := c.RetryBaseDelay << uint(attempts-1)
	if delay > c.RetryMaxDelay || delay <= 0 {
		delay = c.RetryMaxDelay
	}
	return delay
}
