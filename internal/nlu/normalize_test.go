package nlu

import "testing"

func TestCanon(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ad Soyad", "adsoyad"},
		{"  Mevcut Maaş ", "mevcutmaas"},
		{"Ayşegül Ünal", "aysegulunal"},
		{"bölüm", "bolum"},
		{"sicil no", "sicilno"},
	}
	for _, c := range cases {
		if got := Canon(c.in); got != c.want {
			t.Errorf("Canon(%q) = %q, beklenen %q", c.in, got, c.want)
		}
	}
}

func TestCanonIdempotent(t *testing.T) {
	inputs := []string{"Ad Soyad", "BÜTÇE DIŞI TALEPLER İLE", "1.YÖNETİCİSİ", "Ayşegül Ünal'ın bütçesi"}
	for _, in := range inputs {
		once := Canon(in)
		if twice := Canon(once); twice != once {
			t.Errorf("Canon idempotent değil: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestCanonMatchesAcrossSpellings(t *testing.T) {
	// Aksanlı ve ASCII yazımlar aynı anahtara inmeli
	pairs := [][2]string{
		{"mevcut maaş", "mevcut maas"},
		{"bölüm", "bolum"},
		{"Ayşegül Ünal", "Aysegul Unal"},
	}
	for _, p := range pairs {
		if Canon(p[0]) != Canon(p[1]) {
			t.Errorf("Canon(%q)=%q != Canon(%q)=%q", p[0], Canon(p[0]), p[1], Canon(p[1]))
		}
	}
}

func TestSplitWords(t *testing.T) {
	got := SplitWords("bütçesinden 85 TL düş!")
	if len(got) != 4 {
		t.Fatalf("beklenen 4 kelime, gelen %d: %v", len(got), got)
	}
	if got[0] != "bütçesinden" || got[1] != "85" || got[2] != "tl" || got[3] != "düş" {
		t.Fatalf("kelime temizliği hatalı: %v", got)
	}
}
