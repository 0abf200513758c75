package toolutils

import (
	"fmt"
	"io"
	"strings"
)

// StatusPrinter prints aligned key=value status lines.
type StatusPrinter struct {
	Out     io.Writer
	Padding int
}

func (s StatusPrinter) Print(key string, value any) {
	pad := s.Padding - len(key)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(s.Out, "%s%s=%v\n", strings.Repeat(" ", pad), key, value)
}
