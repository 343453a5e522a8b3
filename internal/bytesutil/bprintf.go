package bytesutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Bprintf appends a formatted string to buf using a small verb set beyond
// plain fmt: %x renders a []byte as lower-case hex, %j marshals a value as
// compact JSON, and %c wraps a fragment in an ANSI color code for log
// highlighting (the colored-log-fragment verb spec.md §4.1 calls for).
// All other verbs are forwarded to fmt.Sprintf.
func Bprintf(buf *Buffer, format string, args ...any) error {
	var out strings.Builder
	argi := 0
	nextArg := func() any {
		if argi >= len(args) {
			return nil
		}
		a := args[argi]
		argi++
		return a
	}

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			out.WriteByte(c)
			continue
		}
		verb := format[i+1]
		switch verb {
		case 'x':
			if b, ok := nextArg().([]byte); ok {
				out.WriteString(hexNoPrefix(b))
			}
			i++
		case 'j':
			a := nextArg()
			j, err := json.Marshal(a)
			if err != nil {
				return err
			}
			out.Write(j)
			i++
		case 'c':
			a := nextArg()
			out.WriteString("\x1b[36m")
			out.WriteString(fmt.Sprint(a))
			out.WriteString("\x1b[0m")
			i++
		default:
			a := nextArg()
			out.WriteString(fmt.Sprintf("%"+string(verb), a))
			i++
		}
	}
	return buf.Append([]byte(out.String()))
}

func hexNoPrefix(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hexDigits[c>>4]
		out[i*2+1] = hexDigits[c&0xf]
	}
	return string(out)
}
