// Package auth persists the backend access token in the system keyring.
package auth

import (
	"errors"

	"github.com/vidtogallery/vidtogallery/constant"
	"github.com/zalando/go-keyring"
)

const (
	service = constant.App + "-cli"
	user    = "backend-token"
)

// SetToken stores the bearer token sent to the backend.
func SetToken(token string) error {
	return keyring.Set(service, user, token)
}

// GetToken returns the stored bearer token. A missing token is not an error.
func GetToken() (string, error) {
	token, err := keyring.Get(service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return token, err
}

// DeleteToken removes the stored bearer token.
func DeleteToken() error {
	err := keyring.Delete(service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
