package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const confirmPollInterval = 2 * time.Second

// TransferClient is the on-chain payout gateway. The node-facing details
// (signing, fee payers, commitment levels) live behind the gateway; this
// client only moves opaque payloads.
type TransferClient interface {
	BuildTransfer(ctx context.Context, from, to string, lamports int64) (string, error)
	Broadcast(ctx context.Context, transaction string) (string, error)
	Confirm(ctx context.Context, signature string) error
}

type client struct {
	httpClient *http.Client
	gatewayURL string
}

// NewClient creates a transfer client against the given gateway base URL.
func NewClient(gatewayURL string) TransferClient {
	return &client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		gatewayURL: gatewayURL,
	}
}

type buildRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Lamports int64  `json:"lamports"`
}

type buildResponse struct {
	Transaction string `json:"transaction"`
	Error       string `json:"error"`
}

type sendRequest struct {
	Transaction string `json:"transaction"`
}

type sendResponse struct {
	Signature string `json:"signature"`
	Error     string `json:"error"`
}

type confirmResponse struct {
	Confirmed bool   `json:"confirmed"`
	Error     string `json:"error"`
}

// BuildTransfer asks the gateway to assemble and sign a transfer of the
// given lamport amount from the treasury to the player's wallet.
func (c *client) BuildTransfer(ctx context.Context, from, to string, lamports int64) (string, error) {
	var res buildResponse
	err := c.postJSON(ctx, "/transfer/build", buildRequest{From: from, To: to, Lamports: lamports}, &res)
	if err != nil {
		return "", err
	}
	if res.Error != "" {
		return "", fmt.Errorf("gateway rejected transfer build: %s", res.Error)
	}
	if res.Transaction == "" {
		return "", fmt.Errorf("gateway returned an empty transaction")
	}
	return res.Transaction, nil
}

// Broadcast submits the signed transaction and returns its signature.
func (c *client) Broadcast(ctx context.Context, transaction string) (string, error) {
	var res sendResponse
	err := c.postJSON(ctx, "/transfer/send", sendRequest{Transaction: transaction}, &res)
	if err != nil {
		return "", err
	}
	if res.Error != "" {
		return "", fmt.Errorf("gateway rejected broadcast: %s", res.Error)
	}
	if res.Signature == "" {
		return "", fmt.Errorf("gateway returned an empty signature")
	}
	return res.Signature, nil
}

// ErrConfirmationRejected reports that the gateway returned a definite
// failure for the transaction, as opposed to not having seen it yet.
var ErrConfirmationRejected = errors.New("confirmation rejected by gateway")

// Confirm polls the gateway until the signature is confirmed, the gateway
// reports a definite failure, or the context expires. The caller bounds
// the wait; a context deadline here means the transfer outcome is unknown,
// not that it failed.
func (c *client) Confirm(ctx context.Context, signature string) error {
	ticker := time.NewTicker(confirmPollInterval)
	defer ticker.Stop()

	for {
		confirmed, err := c.checkConfirmation(ctx, signature)
		switch {
		case err == nil && confirmed:
			return nil
		case errors.Is(err, ErrConfirmationRejected):
			return fmt.Errorf("transaction %s: %w", signature, err)
		case err != nil && ctx.Err() != nil:
			return fmt.Errorf("confirmation of %s interrupted: %w", signature, ctx.Err())
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("confirmation of %s interrupted: %w", signature, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (c *client) checkConfirmation(ctx context.Context, signature string) (bool, error) {
	reqURL := c.gatewayURL + "/transfer/confirm?signature=" + url.QueryEscape(signature)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, err
	}

	httpRes, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer httpRes.Body.Close()

	var res confirmResponse
	if err := json.NewDecoder(httpRes.Body).Decode(&res); err != nil {
		return false, err
	}
	if res.Error != "" {
		return false, fmt.Errorf("%w: %s", ErrConfirmationRejected, res.Error)
	}
	return res.Confirmed, nil
}

func (c *client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	httpRes, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer httpRes.Body.Close()

	if httpRes.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(httpRes.Body, 512))
		return fmt.Errorf("gateway returned %d for %s: %s", httpRes.StatusCode, path, snippet)
	}
	return json.NewDecoder(httpRes.Body).Decode(out)
}
