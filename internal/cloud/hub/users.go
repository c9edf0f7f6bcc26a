package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ldxinsight/ldx-cli/internal/utils/api"
)

const (
	usersPath          = "/users"
	userPathPattern    = usersPath + "/%s"
	currentUserPathKey = "me"
)

// ID is a user id, served as either a JSON string or number
type ID string

// UnmarshalJSON accepts both string and numeric ids
func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid user id: %s", data)
	}
	*id = ID(n.String())
	return nil
}

// User is a portal member
type User struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

func (c *client) Users(ctx context.Context) ([]User, error) {
	res, err := c.do(ctx, http.MethodGet, usersPath, api.RequestOptions{})
	if err != nil {
		return nil, err
	}

	var users []User
	if err := decodeJSON(res, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// User returns the member with the provided student code,
// or the logged in member when no code is provided
func (c *client) User(ctx context.Context, studentCode string) (User, error) {
	if studentCode == "" {
		studentCode = currentUserPathKey
	}
	return c.user(ctx, studentCode)
}

func (c *client) UserByID(ctx context.Context, id string) (User, error) {
	return c.user(ctx, id)
}

func (c *client) user(ctx context.Context, key string) (User, error) {
	res, err := c.do(ctx, http.MethodGet, fmt.Sprintf(userPathPattern, url.PathEscape(key)), api.RequestOptions{})
	if err != nil {
		return User{}, err
	}

	var user User
	if err := decodeJSON(res, &user); err != nil {
		return User{}, err
	}
	return user, nil
}
