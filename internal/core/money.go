package core

import (
	"strconv"
	"strings"
)

// ParseYen converts an amount string to whole yen.
//
// Digit-group commas are accepted and ignored ("1,200,000" -> 1200000). A
// leading "¥" is tolerated. Signs are rejected: amounts are magnitudes and
// their direction comes from the transaction kind.
func ParseYen(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "¥")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// FormatYen renders a signed balance as "¥1,234" or "-¥1,234".
func FormatYen(v int64) string {
	if v < 0 {
		return "-¥" + groupDigits(-v)
	}
	return "¥" + groupDigits(v)
}

func (m Money) String() string {
	return FormatYen(m.Yen)
}

func groupDigits(v int64) string {
	s := strconv.FormatInt(v, 10)
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
