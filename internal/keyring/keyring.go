package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/campusbuddy/internal/constants"
)

var (
	// ErrNotFound is returned when no secret is stored under the requested account
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

const probeAccount = "test-availability"

// Get reads the secret stored for account under the campusbuddy service.
func Get(account string) (string, error) {
	secret, err := keyring.Get(constants.AppName, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

// Set stores secret for account. Blank secrets are rejected.
func Set(account, secret string) error {
	if strings.TrimSpace(secret) == "" {
		return errors.New("secret cannot be empty")
	}
	if err := keyring.Set(constants.AppName, account, secret); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// Delete removes the secret for account.
func Delete(account string) error {
	if err := keyring.Delete(constants.AppName, account); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// GetConnectionString returns the stored store location used by --config keyring.
func GetConnectionString() (string, error) {
	return Get(constants.DefaultKeyringUser)
}

// SetConnectionString stores the store location used by --config keyring.
func SetConnectionString(connStr string) error {
	return Set(constants.DefaultKeyringUser, connStr)
}

// DeleteConnectionString removes the stored store location.
func DeleteConnectionString() error {
	return Delete(constants.DefaultKeyringUser)
}

// IsAvailable performs a probe read; a missing entry still counts as available.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, probeAccount)
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// Status summarises the keyring state for the status and doctor commands.
type Status struct {
	Available bool
	HasSecret bool
}

// GetStatus reports whether the keyring works and holds a connection string.
func GetStatus() Status {
	st := Status{Available: IsAvailable()}
	if !st.Available {
		return st
	}
	_, err := GetConnectionString()
	st.HasSecret = err == nil
	return st
}
