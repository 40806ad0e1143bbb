package clockoverlay

import (
	"fmt"
	"strings"
)

var strftimeVerbs = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'Z': "MST",
	'z': "-0700",
	'a': "Mon",
	'A': "Monday",
	'b': "Jan",
	'B': "January",
	'e': "_2",
	'%': "%",
}

// strftimeToLayout converts an strftime-style format (the property
// format of the original element family) to a Go time layout.
func strftimeToLayout(format string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(format) {
			return "", fmt.Errorf("trailing '%%'")
		}
		layout, ok := strftimeVerbs[format[i]]
		if !ok {
			return "", fmt.Errorf("unsupported verb '%%%c'", format[i])
		}
		sb.WriteString(layout)
	}
	return sb.String(), nil
}
