package export

import (
	"fmt"

	"tweets-go/internal/config"
)

// NeedsPassphrase reports whether exports of this type are passphrase protected.
func NeedsPassphrase(cfg config.ExportConfig) bool {
	return cfg.Type == "age" || cfg.Type == ""
}

// NewEncryptorFromConfig creates an Encryptor based on the configuration type.
// passphrase is ignored for plain exports.
func NewEncryptorFromConfig(cfg config.ExportConfig, passphrase string) (Encryptor, error) {
	switch cfg.Type {
	case "age", "":
		if passphrase == "" {
			return nil, fmt.Errorf("age export requires a passphrase")
		}
		return NewAgeEncryptor(passphrase), nil
	case "plain":
		return PlainEncryptor{}, nil
	default:
		return nil, fmt.Errorf("unknown export type: %q", cfg.Type)
	}
}
