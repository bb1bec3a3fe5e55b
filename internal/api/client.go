package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/domdomvn/domdom/internal/model"
)

// Client talks to the finance API. The API is a single endpoint: every
// operation is a POST with a "type" discriminator in the JSON body.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// StatusDeleted is the status value sent to soft-delete a transaction.
const StatusDeleted = "0"

func (c *Client) do(ctx context.Context, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(respBody, &msg); err == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// SignIn authenticates and returns the full user snapshot fields.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Response, error) {
	var resp Response
	err := c.do(ctx, signInRequest{Type: opSignIn, Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignUp registers a new account and returns the initial snapshot fields.
func (c *Client) SignUp(ctx context.Context, email, name, password string) (*Response, error) {
	var resp Response
	err := c.do(ctx, signUpRequest{Type: opSignUp, Email: email, Name: name, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword asks the server to email an OTP code.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, forgotPasswordRequest{Type: opForgotPassword, Email: email}, nil)
}

// UpdatePassword sets a new password for the given account.
func (c *Client) UpdatePassword(ctx context.Context, email, password string) error {
	return c.do(ctx, updatePasswordRequest{Type: opUpdatePassword, Email: email, Password: password}, nil)
}

// InsertTransaction creates a transaction; the response carries the
// refreshed snapshot fields.
func (c *Client) InsertTransaction(ctx context.Context, req InsertTransactionRequest) (*Response, error) {
	req.Type = opInsertTransactions
	var resp Response
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateTransaction edits a transaction in place.
func (c *Client) UpdateTransaction(ctx context.Context, req UpdateTransactionRequest) (*Response, error) {
	req.Type = opUpdateTransaction
	var resp Response
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateTransactionStatus flips a transaction's status server-side.
// Deletion is status "0"; the server keeps the row.
func (c *Client) UpdateTransactionStatus(ctx context.Context, transactionID model.ID, status string) error {
	return c.do(ctx, updateStatusRequest{Type: opUpdateTransactionStatus, TransactionID: transactionID, Status: status}, nil)
}

// InsertCategory creates a category; the response carries the refreshed
// snapshot fields.
func (c *Client) InsertCategory(ctx context.Context, req InsertCategoryRequest) (*Response, error) {
	req.Type = opInsertCategories
	var resp Response
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateWallet sends the raw new wallet value. The caller derives the new
// running amount locally; see the wallet operation in the service layer.
func (c *Client) UpdateWallet(ctx context.Context, userID model.ID, wallet int64) (*Response, error) {
	var resp Response
	if err := c.do(ctx, updateWalletRequest{Type: opUpdateWallet, UserID: userID, Wallet: wallet}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExtractText runs receipt OCR on an already-hosted image and returns the
// extracted fields.
func (c *Client) ExtractText(ctx context.Context, userID model.ID, imageURL string) (*ExtractResult, error) {
	var result ExtractResult
	if err := c.do(ctx, extractTextRequest{Type: opExtractText, UserID: userID, ImageURL: imageURL}, &result); err != nil {
		return nil, err
	}
	if result.Description == "" {
		return nil, fmt.Errorf("receipt could not be read: no usable fields extracted")
	}
	return &result, nil
}
