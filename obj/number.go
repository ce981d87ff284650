package obj

import (
	"strconv"
	"strings"
)

// parseFloat converts tok to a float32. The whole token must be consumed,
// so "3abc" is an error rather than 3. Go digit separators ("1_000") are
// not part of the format, and values too large or too small for a
// float32 are rejected instead of becoming Inf or 0.
func parseFloat(tok string) (float32, error) {
	if tok == "" || strings.ContainsRune(tok, '_') {
		return 0, &numberError{token: tok, err: ErrMalformedNumber}
	}
	f, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, &numberError{token: tok, err: ErrMalformedNumber}
	}
	if f == 0 && !zeroMantissa(tok) {
		return 0, &numberError{token: tok, err: ErrMalformedNumber}
	}
	return float32(f), nil
}

// zeroMantissa reports whether every digit before the exponent of a
// syntactically valid float token is zero.
func zeroMantissa(tok string) bool {
	s := strings.TrimLeft(tok, "+-")
	hex := len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
	if hex {
		s = s[2:]
	}
	for _, c := range s {
		switch {
		case c >= '1' && c <= '9':
			return false
		case hex && strings.ContainsRune("abcdefABCDEF", c):
			return false
		case !hex && (c == 'e' || c == 'E'), hex && (c == 'p' || c == 'P'):
			return true
		}
	}
	return true
}

// parseIndex converts tok to a 1-based index. Only plain decimal digits
// are accepted.
func parseIndex(tok string) (int, error) {
	if tok == "" || tok[0] < '0' || tok[0] > '9' {
		return 0, &numberError{token: tok, err: ErrMalformedNumber}
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &numberError{token: tok, err: ErrMalformedNumber}
	}
	if i == 0 {
		return 0, ErrZeroIndex
	}
	return i, nil
}
