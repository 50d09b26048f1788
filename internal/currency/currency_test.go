package currency

import "testing"

func TestFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int
		want string
	}{
		{0, "$0"},
		{7, "$7"},
		{999, "$999"},
		{1000, "$1.000"},
		{516666, "$516.666"},
		{6199999, "$6.199.999"},
		{123456789, "$123.456.789"},
		{-1500, "-$1.500"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%d) got %q, want %q", c.in, got, c.want)
		}
	}
}
