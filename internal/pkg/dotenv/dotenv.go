package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подхватывает .env (если он есть) и разбирает флаги командной строки.
// Уже выставленные переменные окружения .env не перезаписывает.
func Load() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
