package errors

import (
	"fmt"
	"io"

	"github.com/julianstephens/tripboard/internal/logger"
)

const prefix = "Error: "

func Format(err error) string {
	if err == nil {
		return ""
	}
	return prefix + err.Error()
}

// Report logs err and writes it to w as a single prefixed line. A nil err
// writes nothing.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	logger.Error("command failed", "error", err)
	_, _ = fmt.Fprintln(w, Format(err))
}
