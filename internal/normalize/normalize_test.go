package normalize

import (
	"reflect"
	"testing"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Istanbul", "istanbul"},
		{"İSTANBUL", "istanbul"},
		{"Çanakkale", "canakkale"},
		{"GÜMÜŞHANE", "gumushane"},
		{"ığdır", "igdir"},
		{"Ankara Esenboğa", "ankara esenboga"},
		{"IST", "ist"},
	}
	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Errorf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFoldIdempotent(t *testing.T) {
	inputs := []string{"İSTANBUL", "Şişli", "ÇORUM", "plain ascii", ""}
	for _, in := range inputs {
		once := Fold(in)
		if twice := Fold(once); twice != once {
			t.Errorf("Fold not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestFoldCaseAndDiacriticInsensitive(t *testing.T) {
	if Fold("İSTANBUL") != Fold("istanbul") {
		t.Errorf("Fold(İSTANBUL) = %q, Fold(istanbul) = %q", Fold("İSTANBUL"), Fold("istanbul"))
	}
}

func TestWords(t *testing.T) {
	if got := Words("  "); len(got) != 0 {
		t.Errorf("Words(whitespace) = %v, want empty", got)
	}
	got := Words(" İstanbul   Ankara ")
	want := []string{"istanbul", "ankara"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}
}
