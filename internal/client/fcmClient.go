package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/config"
)

// PushClient delivers device notifications. Delivery is best-effort; callers
// must never let a send failure propagate into request handling.
type PushClient interface {
	SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) error
}

type fcmClientImpl struct {
	httpClient *http.Client
	endpoint   string
	serverKey  string
}

func NewFcmClient(fcmCfg *config.FCM) PushClient {
	return &fcmClientImpl{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		endpoint:  fcmCfg.Endpoint,
		serverKey: fcmCfg.ServerKey,
	}
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmMessage struct {
	RegistrationIDs []string          `json:"registration_ids"`
	Notification    fcmNotification   `json:"notification"`
	Data            map[string]string `json:"data,omitempty"`
}

type fcmResult struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

func (c *fcmClientImpl) SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	if len(tokens) == 0 {
		return nil
	}

	payload, err := json.Marshal(fcmMessage{
		RegistrationIDs: tokens,
		Notification:    fcmNotification{Title: title, Body: body},
		Data:            data,
	})
	if err != nil {
		return fmt.Errorf("marshal fcm payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "key="+c.serverKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fcm send failed with status %d: %s", resp.StatusCode, string(raw))
	}

	var result fcmResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode fcm response: %w", err)
	}
	if result.Failure > 0 {
		return fmt.Errorf("fcm delivered to %d tokens, %d failed", result.Success, result.Failure)
	}

	return nil
}
