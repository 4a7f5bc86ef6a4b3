package nlu

import "testing"

func TestParseNumberWords(t *testing.T) {
	cases := []struct {
		words []string
		want  float64
		ok    bool
	}{
		{[]string{"seksen", "beş"}, 85, true},
		{[]string{"bir", "bin"}, 1000, true},
		{[]string{"yüz"}, 100, true},
		{[]string{"bin"}, 1000, true},
		{[]string{"iki", "bin", "beş", "yüz"}, 2500, true},
		{[]string{"üç", "yüz", "kırk", "iki"}, 342, true},
		{[]string{"yuz", "elli"}, 150, true}, // ASCII varyant
		{[]string{"merhaba"}, 0, false},
		{[]string{}, 0, false},
		{[]string{"sıfır"}, 0, false}, // pozitif değil
	}
	for _, c := range cases {
		got, ok := ParseNumberWords(c.words)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseNumberWords(%v) = (%v, %v), beklenen (%v, %v)", c.words, got, ok, c.want, c.ok)
		}
	}
}

func TestParseNumberWordsStopsAtUnknown(t *testing.T) {
	// İlk sayı kelimesi tüketildikten sonra tanınmayan kelimede durmalı;
	// cümlenin devamındaki sayılar yutulmamalı
	got, ok := ParseNumberWords([]string{"seksen", "beş", "lira", "on"})
	if !ok || got != 85 {
		t.Fatalf("beklenen 85, gelen (%v, %v)", got, ok)
	}
}
