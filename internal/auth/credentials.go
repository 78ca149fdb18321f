// Package auth manages the Tencent Cloud credential triple in the OS keyring.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Credentials holds the Tencent Cloud API credentials for one invocation.
type Credentials struct {
	SecretID  string `json:"secret_id"`
	SecretKey string `json:"secret_key"`
	Region    string `json:"region"`
}

// complete reports whether all three fields are populated.
func (c Credentials) complete() bool {
	return c.SecretID != "" && c.SecretKey != "" && c.Region != ""
}

// Prompter collects the credential triple from the user on first run.
type Prompter interface {
	PromptCredentials() (Credentials, error)
}

// Manager loads, saves and clears the single credential entry in a Store.
// The triple is stored as one JSON-encoded entry so it is saved and removed
// as a unit.
type Manager struct {
	store    Store
	prompter Prompter
}

// NewManager creates a Manager over the given store and prompter.
func NewManager(store Store, prompter Prompter) *Manager {
	return &Manager{store: store, prompter: prompter}
}

// LoadOrPrompt returns the stored credentials, prompting for and saving a
// new triple when the store has no usable entry. A partial or corrupt entry
// is treated as absent so a bad write never wedges the tool.
func (m *Manager) LoadOrPrompt() (Credentials, error) {
	raw, err := m.store.Get(Service, account)
	switch {
	case errors.Is(err, ErrNotFound):
		return m.promptAndSave()
	case err != nil:
		return Credentials{}, fmt.Errorf("failed to read credentials from keyring: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil || !creds.complete() {
		return m.promptAndSave()
	}
	return creds, nil
}

// Clear removes the stored entry. Clearing when nothing is stored succeeds.
func (m *Manager) Clear() error {
	err := m.store.Delete(Service, account)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to remove credentials from keyring: %w", err)
	}
	return nil
}

func (m *Manager) promptAndSave() (Credentials, error) {
	creds, err := m.prompter.PromptCredentials()
	if err != nil {
		return Credentials{}, err
	}
	if !creds.complete() {
		return Credentials{}, fmt.Errorf("secret id, secret key and region are all required")
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to marshal credentials: %w", err)
	}
	if err := m.store.Set(Service, account, string(data)); err != nil {
		return Credentials{}, fmt.Errorf("failed to save credentials to keyring: %w", err)
	}
	return creds, nil
}
