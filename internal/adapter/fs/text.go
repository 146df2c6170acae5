package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"unicode/utf8"

	"textclean/internal/domain"
)

// ReadText loads a whole UTF-8 file. A missing file is reported as
// InputNotFound, anything else (including invalid UTF-8) as ReadFailure.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", domain.NewError(domain.InputNotFound, path, err)
		}
		return "", domain.NewError(domain.ReadFailure, path, err)
	}
	if !utf8.Valid(data) {
		return "", domain.NewError(domain.ReadFailure, path, fmt.Errorf("file is not valid UTF-8"))
	}
	return string(data), nil
}

// CheckInput reports whether path names a readable regular file, classifying
// failures the same way ReadText does.
func CheckInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.NewError(domain.InputNotFound, path, err)
		}
		return domain.NewError(domain.ReadFailure, path, err)
	}
	if info.IsDir() {
		return domain.NewError(domain.ReadFailure, path, fmt.Errorf("is a directory"))
	}
	return nil
}

// WriteText creates or truncates path and writes text to it. Any failure is
// reported as WriteFailure.
func WriteText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return domain.NewError(domain.WriteFailure, path, err)
	}
	return nil
}
