// Command roomctl browses room listings and roommate profiles from the
// terminal and keeps the signed-in user between runs.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sbilibin2017/roommate-finder/internal/logger"
)

func main() {
	_ = godotenv.Load()

	if err := logger.InitializeConsole(getEnv("ROOMCTL_LOG_LEVEL", "warn")); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Log.Sync()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}
