package nlu

import "strings"

// Türkçe sayı kelimeleri (ASCII varyantlarıyla birlikte — tarayıcı STT
// bazen aksansız yazıyor)
var trUnits = map[string]int{
	"sıfır": 0, "sifir": 0,
	"bir": 1, "iki": 2,
	"üç": 3, "uc": 3,
	"dört": 4, "dort": 4,
	"beş": 5, "bes": 5,
	"altı": 6, "alti": 6,
	"yedi": 7, "sekiz": 8, "dokuz": 9,
}

var trTens = map[string]int{
	"on": 10, "yirmi": 20, "otuz": 30,
	"kırk": 40, "kirk": 40,
	"elli": 50,
	"altmış": 60, "altmis": 60,
	"yetmiş": 70, "yetmis": 70,
	"seksen": 80, "doksan": 90,
}

var trMultipliers = map[string]int{
	"yüz": 100, "yuz": 100,
	"bin": 1000,
}

// ParseNumberWords: Türkçe sayı kelimelerini sayıya çevirir.
// "seksen beş" -> 85, "bir bin" -> 1000, "yüz" -> 100.
// Soldan sağa biriktirme: birlik/onluk kelimeler ara toplama eklenir;
// "yüz" ara toplamı 100 ile çarpar (boşsa 1 kabul edilir); "bin" çarpıp
// sonucu genel toplama aktarır ve ara toplamı sıfırlar. En az bir sayı
// kelimesi tüketildikten sonra tanınmayan ilk kelimede durur — böylece
// cümlenin geri kalanı yutulmaz.
func ParseNumberWords(words []string) (float64, bool) {
	total := 0
	cur := 0
	used := false

	for _, w := range words {
		w = strings.ToLower(w)
		if v, ok := trUnits[w]; ok {
			cur += v
			used = true
		} else if v, ok := trTens[w]; ok {
			cur += v
			used = true
		} else if mul, ok := trMultipliers[w]; ok {
			if cur == 0 {
				cur = 1
			}
			if mul == 100 {
				cur *= 100
			} else {
				cur *= mul
				total += cur
				cur = 0
			}
			used = true
		} else if used {
			break
		}
	}

	total += cur
	if !used || total <= 0 {
		return 0, false
	}
	return float64(total), true
}
