package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists environment variables that must be set for the given store driver
func RequiredEnvVars(driver string) []string {
	required := []string{"ENV_SCHEMA_VERSION"}
	if driver == StoreDriverPostgres {
		required = append(required, "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME")
	}
	return required
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv(driver string) error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars(driver) {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings(driver string) ([]string, error) {
	if err := ValidateEnv(driver); err != nil {
		return nil, err
	}

	var warnings []string

	if driver == StoreDriverPostgres && os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("API_KEY") == "" {
		warnings = append(warnings, "API_KEY is not set - inventory endpoints are unauthenticated")
	}

	return warnings, nil
}
