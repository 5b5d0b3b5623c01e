package normalize

import (
	"fmt"
	"strings"

	"github.com/sells-group/sitegen-cli/internal/model"
)

// FormatPhone strips non-digits, prepends a US country digit when missing,
// and formats the display number as (AAA) PPP-LLLL from the last 10 digits.
// Short or garbage input still yields a struct — callers never branch on a
// phone parse error.
func FormatPhone(raw string) model.Phone {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	if len(d) == 10 {
		d = "1" + d
	}

	var p model.Phone
	if d != "" {
		p.E164 = "+" + d
	}

	if len(d) >= 10 {
		last10 := d[len(d)-10:]
		p.Display = fmt.Sprintf("(%s) %s-%s", last10[:3], last10[3:6], last10[6:])
	} else {
		p.Display = raw
	}

	return p
}
