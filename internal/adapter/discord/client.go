package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sethvargo/go-retry"

	"the7threason/internal/domain/model"
	"the7threason/internal/domain/ports"
)

// DefaultAPIBase is the Discord REST API root.
const DefaultAPIBase = "https://discord.com/api/v10"

const (
	defaultRateLimitRetries = 3
	defaultRateLimitMaxWait = 10 * time.Second
)

var errRateLimited = errors.New("rate limited")

// Client posts embeds and reactions through the Discord REST API.
type Client struct {
	baseURL          string
	token            string
	httpClient       *http.Client
	logger           ports.Logger
	rateLimitRetries uint64
	rateLimitMaxWait time.Duration
}

var _ ports.Transport = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithRateLimit sets how many times a 429 response is waited out, and the
// longest Retry-After the client will sleep for. Zero retries fails fast.
func WithRateLimit(retries uint64, maxWait time.Duration) Option {
	return func(c *Client) {
		c.rateLimitRetries = retries
		c.rateLimitMaxWait = maxWait
	}
}

// NewClient creates a Discord REST client authenticated as a bot.
func NewClient(baseURL, token string, timeout time.Duration, logger ports.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIBase
	}
	c := &Client{
		baseURL:          strings.TrimRight(baseURL, "/"),
		token:            token,
		httpClient:       &http.Client{Timeout: timeout},
		logger:           logger,
		rateLimitRetries: defaultRateLimitRetries,
		rateLimitMaxWait: defaultRateLimitMaxWait,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type embedAuthor struct {
	Name    string `json:"name"`
	IconURL string `json:"icon_url,omitempty"`
	URL     string `json:"url,omitempty"`
}

type embed struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Color       int         `json:"color"`
	Author      embedAuthor `json:"author"`
}

type createMessage struct {
	Embeds []embed `json:"embeds"`
}

type messageResponse struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
}

// SendMessage creates a message carrying p as its only embed.
func (c *Client) SendMessage(ctx context.Context, channelID string, p model.Payload) (model.MessageRef, error) {
	const op = "send message"
	if channelID == "" {
		return model.MessageRef{}, &ports.TransportError{Op: op, Err: fmt.Errorf("channel ID is empty")}
	}

	body, err := json.Marshal(createMessage{Embeds: []embed{toEmbed(p)}})
	if err != nil {
		return model.MessageRef{}, &ports.TransportError{Op: op, Err: fmt.Errorf("marshal payload: %w", err)}
	}

	endpoint := fmt.Sprintf("%s/channels/%s/messages", c.baseURL, url.PathEscape(channelID))
	resp, err := c.send(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return model.MessageRef{}, &ports.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return model.MessageRef{}, &ports.TransportError{Op: op, Status: resp.StatusCode, Err: err}
	}

	var msg messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return model.MessageRef{}, &ports.TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if msg.ChannelID == "" {
		msg.ChannelID = channelID
	}

	c.logger.Debug(ctx, "message sent to discord", "channel", msg.ChannelID, "message", msg.ID)
	return model.MessageRef{ChannelID: msg.ChannelID, MessageID: msg.ID}, nil
}

// AttachReaction adds token to the message as the bot user.
func (c *Client) AttachReaction(ctx context.Context, ref model.MessageRef, token string) error {
	const op = "attach reaction"

	endpoint := fmt.Sprintf("%s/channels/%s/messages/%s/reactions/%s/@me",
		c.baseURL, url.PathEscape(ref.ChannelID), url.PathEscape(ref.MessageID), url.PathEscape(token))
	resp, err := c.send(ctx, http.MethodPut, endpoint, nil)
	if err != nil {
		return &ports.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return &ports.TransportError{Op: op, Status: resp.StatusCode, Err: err}
	}
	return nil
}

// send performs the request, sleeping out 429 responses whose Retry-After fits
// within rateLimitMaxWait. When the retries run out the last 429 is returned.
func (c *Client) send(ctx context.Context, method, endpoint string, body []byte) (*http.Response, error) {
	var (
		resp *http.Response
		wait time.Duration
	)
	backoff := retry.WithMaxRetries(c.rateLimitRetries, retry.BackoffFunc(func() (time.Duration, bool) {
		return wait, false
	}))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if resp != nil {
			discard(resp)
			resp = nil
		}

		r, err := c.do(ctx, method, endpoint, body)
		if err != nil {
			return err
		}
		resp = r
		if r.StatusCode != http.StatusTooManyRequests {
			return nil
		}

		delay, ok := retryAfter(r.Header)
		if !ok || delay > c.rateLimitMaxWait {
			return nil
		}
		wait = delay
		c.logger.Debug(ctx, "discord rate limited", "method", method, "retry_after", delay)
		return retry.RetryableError(errRateLimited)
	})
	if err != nil {
		if errors.Is(err, errRateLimited) && resp != nil {
			return resp, nil
		}
		if resp != nil {
			discard(resp)
		}
		return nil, err
	}
	return resp, nil
}

// retryAfter reads the bucket reset delay, preferring Discord's fractional header.
func retryAfter(h http.Header) (time.Duration, bool) {
	for _, key := range []string{"X-RateLimit-Reset-After", "Retry-After"} {
		val := h.Get(key)
		if val == "" {
			continue
		}
		secs, err := strconv.ParseFloat(val, 64)
		if err != nil || secs < 0 {
			continue
		}
		return time.Duration(secs * float64(time.Second)), true
	}
	return 0, false
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("discord returned %s: %s", resp.Status, strings.TrimSpace(string(msg)))
}

func toEmbed(p model.Payload) embed {
	return embed{
		Title:       truncate(p.Title, 256),
		Description: truncate(p.Description, 4096),
		Color:       p.Color.Int(),
		Author: embedAuthor{
			Name:    truncate(p.Author.Name, 256),
			IconURL: p.Author.IconURL,
			URL:     p.Author.URL,
		},
	}
}

// truncate enforces Discord's embed limits, which count characters, not bytes.
func truncate(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return strings.TrimSpace(string(runes[:limit-3])) + "..."
}
