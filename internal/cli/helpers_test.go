package cli

import (
	"io"

	"github.com/rs/zerolog"
	"textclean/internal/logging"
)

func newTestLogger(w io.Writer) zerolog.Logger {
	logger, err := logging.New("info", w)
	if err != nil {
		panic(err)
	}
	return logger
}
