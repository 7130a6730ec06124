package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultFile = ".env"

// Load подтягивает env-файл (ENV_FILE или .env, отсутствие файла не ошибка)
// и флаг -port поверх PORT. Переменные, уже выставленные в окружении, не перезаписываются.
// Флаги cmd должны быть объявлены до вызова: Load делает flag.Parse.
func Load() error {
	file := os.Getenv("ENV_FILE")
	if file == "" {
		file = defaultFile
	}

	err := godotenv.Load(file)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", file, err)
	}

	port := flag.String("port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if *port == "" {
		return nil
	}
	if err := os.Setenv("PORT", *port); err != nil {
		return fmt.Errorf("failed to set PORT environment variable: %w", err)
	}
	return nil
}
