package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf(webhookURLTemplate, d.webhook.ID, d.webhook.Token)
}

// SendMessage sends a simple text message.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	if len(content) > MaxMessageLength {
		content = truncate(content, MaxMessageLength)
	}
	return d.sendWithRetry(ctx, &WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendEmbed sends an embed message built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, opts MessageOptions) error {
	embed := Embed{
		Title:       opts.Title,
		Description: opts.Description,
		Color:       colorForType(opts.Type),
		Fields:      opts.Fields,
		Footer:      opts.Footer,
	}
	if !opts.Timestamp.IsZero() {
		embed.Timestamp = opts.Timestamp.Format(time.RFC3339)
	}

	if err := validateEmbed(&embed); err != nil {
		return err
	}

	username := opts.Username
	if username == "" {
		username = d.config.DefaultUsername
	}

	return d.sendWithRetry(ctx, &WebhookPayload{
		Username: username,
		Embeds:   []Embed{embed},
	})
}

// ReportBug sends an internal error report as plain content.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendMessage(ctx, message)
}

func (d *discordImpl) Close() error {
	if d.client != nil {
		d.client.CloseIdleConnections()
	}
	return nil
}

func (d *discordImpl) sendWithRetry(ctx context.Context, payload *WebhookPayload) error {
	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			if d.l != nil {
				d.l.Infof(ctx, "pkg.discord.sendWithRetry: retrying attempt %d/%d", attempt, d.config.RetryCount)
			}
			time.Sleep(d.config.RetryDelay)
		}

		err := d.sendRequest(ctx, payload)
		if err == nil {
			return nil
		}
		lastErr = err
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.sendWithRetry: attempt %d failed: %v", attempt+1, err)
		}
	}
	return fmt.Errorf("failed after %d attempts, last error: %w", d.config.RetryCount+1, lastErr)
}

func (d *discordImpl) sendRequest(ctx context.Context, payload *WebhookPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("discord webhook returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func validateEmbed(embed *Embed) error {
	total := len(embed.Title) + len(embed.Description)
	for _, f := range embed.Fields {
		total += len(f.Name) + len(f.Value)
	}
	if total > MaxEmbedLength {
		return fmt.Errorf("embed too long: %d characters (max: %d)", total, MaxEmbedLength)
	}
	return nil
}

func colorForType(msgType MessageType) int {
	switch msgType {
	case MessageTypeSuccess:
		return ColorSuccess
	case MessageTypeWarning:
		return ColorWarning
	case MessageTypeError:
		return ColorError
	default:
		return ColorInfo
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
