// Package apiclient is a small HTTP client for the WanderWise admin API,
// used by the admin CLI to seed accounts and smoke-test endpoints.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrRequest is returned when the API answers with a non-2xx status.
var ErrRequest = errors.New("api request failed")

// Client talks to one API base URL.
type Client struct {
	http *resty.Client
}

// New returns a Client for baseURL. Requests time out after timeout and are
// retried on transport errors and 5xx/429 responses.
func New(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500 || r.StatusCode() == 429
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// apiError mirrors the server's error envelope.
type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewUser is the body of POST /users.
type NewUser struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Name     string   `json:"name"`
	Roles    []string `json:"roles"`
}

// User is the subset of the user representation the CLI prints.
type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Roles    []string `json:"roles"`
	IsActive bool     `json:"isActive"`
}

// SignIn exchanges credentials for a bearer token.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	var session struct {
		Token string `json:"token"`
	}
	var fail apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&session).
		SetError(&fail).
		Post("/auth/token")
	if err != nil {
		return "", fmt.Errorf("apiclient.Client.SignIn: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("apiclient.Client.SignIn: %w: %d %s", ErrRequest, resp.StatusCode(), fail.Error.Message)
	}
	return session.Token, nil
}

// CreateUser creates a staff account. token must belong to an admin.
func (c *Client) CreateUser(ctx context.Context, token string, nu NewUser) (User, error) {
	var created User
	var fail apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(nu).
		SetResult(&created).
		SetError(&fail).
		Post("/users")
	if err != nil {
		return User{}, fmt.Errorf("apiclient.Client.CreateUser: %w", err)
	}
	if resp.IsError() {
		return User{}, fmt.Errorf("apiclient.Client.CreateUser: %w: %d %s", ErrRequest, resp.StatusCode(), fail.Error.Message)
	}
	return created, nil
}

// Post sends body to path as token and returns the raw status and body
// whatever the status is.
func (c *Client) Post(ctx context.Context, token, path string, body json.RawMessage) (int, []byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(body).
		Post(path)
	if err != nil {
		return 0, nil, fmt.Errorf("apiclient.Client.Post: %w", err)
	}
	return resp.StatusCode(), resp.Body(), nil
}
