package scalarindex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gostructural/tape/internal/scalarindex"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		input string
		want  []uint32
	}{
		{"", nil},
		{"   \n\t ", nil},

		{"true false null", []uint32{0, 5, 11}},
		{"{ [ ] } , :", []uint32{0, 2, 4, 6, 8, 10}},

		{`"" "a b c"`, []uint32{0, 3}},
		{`"\"\\\/\b\f\n\r\t"`, []uint32{0}},
		{`"Ǽ"`, []uint32{0}},

		{"0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100", []uint32{0, 2, 5, 10, 14, 19, 26}},

		{`{"a":true,"b":[null,1,0.5]}`, []uint32{
			0, 1, 4, 5, 9, 10, 13, 14, 15, 19, 20, 21, 22, 25, 26,
		}},
	}

	for _, test := range tests {
		got, err := scalarindex.Build([]byte(test.input))
		if err != nil {
			t.Errorf("Build(%#q) failed: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Build(%#q): (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestBuild_errors(t *testing.T) {
	tests := []string{
		`"unterminated`,
		`01`,
		`-`,
		`1.`,
		`1e`,
		`truex`,
		`nul`,
		"\x01",
		`"bad \q escape"`,
	}
	for _, input := range tests {
		if _, err := scalarindex.Build([]byte(input)); err == nil {
			t.Errorf("Build(%#q): got nil error, want non-nil", input)
		}
	}
}
