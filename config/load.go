package config

import (
	"io"
	"os"
	"path/filepath"
)

// ReadFile reads file, or stdin when the file name is "-".
func ReadFile(file string) ([]byte, error) {
	if _, name := filepath.Split(file); name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}
