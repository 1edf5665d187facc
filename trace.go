package mathtree

import (
	"fmt"
	"io"
	"strings"
)

// tracer writes one line per builder step, indented by stack depth.
type tracer struct {
	w io.Writer
}

func (t *tracer) printf(depth int, tok Token, format string, args ...interface{}) {
	if t == nil || t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "%s%q %s\n", strings.Repeat(" ", depth*2), tok.Value, fmt.Sprintf(format, args...))
}
