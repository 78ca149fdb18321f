package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalPrompter collects the credential triple from an interactive
// terminal. The secret key is read with echo disabled.
type TerminalPrompter struct {
	// DefaultRegion pre-fills the region answer when the user just hits enter.
	DefaultRegion string
}

// PromptCredentials implements Prompter.
func (p TerminalPrompter) PromptCredentials() (Credentials, error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("secret id: ")
	secretID, err := reader.ReadString('\n')
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read secret id: %w", err)
	}
	secretID = strings.TrimSpace(secretID)
	if secretID == "" {
		return Credentials{}, fmt.Errorf("secret id cannot be empty")
	}

	fmt.Print("secret key: ")
	keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read secret key: %w", err)
	}
	secretKey := strings.TrimSpace(string(keyBytes))
	if secretKey == "" {
		return Credentials{}, fmt.Errorf("secret key cannot be empty")
	}

	prompt := "region: "
	if p.DefaultRegion != "" {
		prompt = fmt.Sprintf("region [%s]: ", p.DefaultRegion)
	}
	fmt.Print(prompt)
	region, err := reader.ReadString('\n')
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read region: %w", err)
	}
	region = strings.TrimSpace(region)
	if region == "" {
		region = p.DefaultRegion
	}
	if region == "" {
		return Credentials{}, fmt.Errorf("region cannot be empty")
	}

	return Credentials{SecretID: secretID, SecretKey: secretKey, Region: region}, nil
}
