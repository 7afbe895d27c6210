package search

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"Kaynak ustası aranıyor", []string{"kaynak", "ustası", "aranıyor"}},
		{"CNC torna, CNC freze!", []string{"cnc", "torna", "freze"}},
		{"a b cd", []string{"cd"}}, // single-character tokens dropped
		{"İstanbul Kadıköy", []string{"istanbul", "kadıköy"}},
	}
	for _, tc := range cases {
		got := Tokenize(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
