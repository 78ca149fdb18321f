package auth

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// Service is the keyring service identifier all txcv secrets live under.
const Service = "txcv"

// account is the keyring account key holding the credential entry.
const account = "credentials"

// ErrNotFound is returned when no credential entry exists in the store.
var ErrNotFound = errors.New("credentials not found")

// Store abstracts the OS secure credential store. service maps to the
// keyring service name, account to the user/account key.
type Store interface {
	Get(service, account string) (string, error)
	Set(service, account, value string) error
	Delete(service, account string) error
}

// systemKeyring is the default Store, backed by the platform keyring
// (Keychain on macOS, Secret Service on Linux, Credential Manager on Windows).
type systemKeyring struct{}

// SystemStore returns the Store backed by the OS keyring.
func SystemStore() Store {
	return systemKeyring{}
}

func (systemKeyring) Get(service, account string) (string, error) {
	value, err := keyring.Get(service, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	return value, err
}

func (systemKeyring) Set(service, account, value string) error {
	return keyring.Set(service, account, value)
}

func (systemKeyring) Delete(service, account string) error {
	err := keyring.Delete(service, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
