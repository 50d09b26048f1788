// Package currency formats whole-peso amounts the way the promo canvas
// prints them: no decimals, dot as thousands separator, e.g. $6.199.999.
package currency

import "strconv"

// Format renders an integer peso amount as an Argentine price string.
func Format(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.Itoa(n)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, s[i])
	}
	return sign + "$" + string(out)
}
