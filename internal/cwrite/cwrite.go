package cwrite

import (
	"io"
	"os"
	"path/filepath"
)

// Stdout is where Write sends output without a file name.
var Stdout io.Writer = os.Stdout

// Write writes code to outFile, or to Stdout when outFile is "" or "-".
func Write(outFile string, code []byte) error {
	if outFile == "" || outFile == "-" {
		return WriteTo(Stdout, code)
	}
	return WriteFile(outFile, code)
}

// WriteTo writes all of code to dst.
func WriteTo(dst io.Writer, code []byte) error {
	_, err := dst.Write(code)
	return err
}

// WriteFile replaces outFile with code. The content goes to a temporary file
// in the same directory first, so outFile is either left untouched or fully
// written.
func WriteFile(outFile string, code []byte) (err error) {
	dir, name := filepath.Split(outFile)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if err = WriteTo(tmp, code); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), outFile)
}
