package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFcmClientSend(t *testing.T) {
	var gotAuth string
	var gotPayload fcmMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_ = json.NewEncoder(w).Encode(fcmResult{Success: 2})
	}))
	defer srv.Close()

	c := NewFcmClient(&config.FCM{ServerKey: "secret-key", Endpoint: srv.URL})

	err := c.SendToTokens(context.Background(), []string{"tok-1", "tok-2"}, "New Order", "details", map[string]string{"type": "new_order"})
	require.NoError(t, err)

	assert.Equal(t, "key=secret-key", gotAuth)
	assert.Equal(t, []string{"tok-1", "tok-2"}, gotPayload.RegistrationIDs)
	assert.Equal(t, "New Order", gotPayload.Notification.Title)
	assert.Equal(t, "new_order", gotPayload.Data["type"])
}

func TestFcmClientPartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(fcmResult{Success: 1, Failure: 1})
	}))
	defer srv.Close()

	c := NewFcmClient(&config.FCM{ServerKey: "secret-key", Endpoint: srv.URL})

	err := c.SendToTokens(context.Background(), []string{"tok-1", "tok-2"}, "t", "b", nil)
	assert.Error(t, err)
}

func TestFcmClientNoTokensIsNoop(t *testing.T) {
	c := NewFcmClient(&config.FCM{ServerKey: "secret-key", Endpoint: "http://127.0.0.1:1"})

	// nothing to deliver, nothing to dial
	assert.NoError(t, c.SendToTokens(context.Background(), nil, "t", "b", nil))
}
