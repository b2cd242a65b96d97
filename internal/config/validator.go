package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be set for every data source
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DATA_SOURCE",
}

// RequiredDatabaseEnvVars must be set when DATA_SOURCE is postgres
var RequiredDatabaseEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// RequiredSnapshotEnvVars must be set when DATA_SOURCE is snapshot
var RequiredSnapshotEnvVars = []string{
	"SNAPSHOT_PATH",
}

// Example values shipped in .env.example
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// ValidateEnv checks that the .env file is current and carries every variable
// the selected data source needs
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	required := RequiredEnvVars
	switch strings.ToLower(os.Getenv("DATA_SOURCE")) {
	case DataSourceSnapshot:
		required = append(required[:len(required):len(required)], RequiredSnapshotEnvVars...)
	default:
		required = append(required[:len(required):len(required)], RequiredDatabaseEnvVars...)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports non-fatal issues such
// as example credentials
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	switch os.Getenv("API_KEY") {
	case exampleAPIKey:
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	case "":
		warnings = append(warnings, "API_KEY is not set - the HTTP API accepts unauthenticated requests")
	}

	return warnings, nil
}
