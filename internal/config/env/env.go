package env

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the appropriate .env file
func LoadEnv() error {
	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	envFile := fmt.Sprintf(".env.%s", env)
	envPath := filepath.Join("internal", "config", "env", envFile)

	// Load env file
	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("error loading env file %s: %v", envPath, err)
	}

	// Verify that critical variables are loaded
	requiredVars := []string{"DATABASE_URL", "CONTACT_INBOX", "SMTP_HOST"}
	for _, v := range requiredVars {
		if os.Getenv(v) == "" {
			fmt.Printf("Warning: environment variable %s is not set or empty\n", v)
		}
	}

	return nil
}
