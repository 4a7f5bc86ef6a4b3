package nlu

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// "sicil 1 23 45", "PersonRef: 12345", "kişi 12345" gibi etiketli
	// kalıplar; rakam dizisinin içinde boşluk olabilir
	personLabeledRe = regexp.MustCompile(`(?i)(?:person|ref|sicil|kişi|kisi)\D*([0-9][0-9\s]{3,})`)
	// Etiketsiz, en az 4 haneli çıplak rakam dizisi
	personBareRe = regexp.MustCompile(`\b(\d[ \d]{3,})\b`)
	nonDigitRe   = regexp.MustCompile(`\D`)

	// "80", "1.234,50" gibi rakamla yazılmış tutar, arkasında opsiyonel
	// para birimi kelimesi
	amountDigitsRe = regexp.MustCompile(`(?i)(\d[\d\.\,]*)\s*(tl|lira)?\b`)
	digitRunRe     = regexp.MustCompile(`\d[\d\.\,]*`)
)

// ExtractPersonRef: metinden sicil numarasını çıkarır. Önce etiketli kalıp
// ("sicil 12345"), yoksa metindeki ilk ≥4 haneli çıplak rakam dizisi.
// Rakam dizisinin ham hali de döner; tutar aramasında bu rakamlar dışlanır
// ki sicil numarası tutar sanılmasın.
func ExtractPersonRef(text string) (int, string, bool) {
	if m := personLabeledRe.FindStringSubmatch(text); m != nil {
		if d := nonDigitRe.ReplaceAllString(m[1], ""); len(d) >= 4 {
			n, err := strconv.Atoi(d)
			if err == nil {
				return n, d, true
			}
		}
	}
	if m := personBareRe.FindStringSubmatch(text); m != nil {
		if d := nonDigitRe.ReplaceAllString(m[1], ""); len(d) >= 4 {
			n, err := strconv.Atoi(d)
			if err == nil {
				return n, d, true
			}
		}
	}
	return 0, "", false
}

// parseDigitAmount: "1.234,50" -> 1234.50 (binlik ayracı nokta, ondalık
// ayracı virgül). Pozitif değilse geçersiz sayılır.
func parseDigitAmount(raw string) (float64, bool) {
	raw = strings.ReplaceAll(raw, ".", "")
	raw = strings.ReplaceAll(raw, ",", ".")
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val <= 0 {
		return 0, false
	}
	return val, true
}

// ExtractAmount: metinden tutarı çıkarır. excludedDigits, ExtractPersonRef'in
// bulduğu rakam dizisidir; hiçbir aşamada tutar olarak geri dönmez.
// Sıra: (a) rakamla yazılmış ilk tutar, (b) para birimi kelimesinin önündeki
// ≤6 kelime sayı kelimesi olarak, (c) kalan rakam dizilerinden sonuncusu,
// (d) son çare: tüm kelimeler tersten sayı kelimesi olarak.
func ExtractAmount(text string, excludedDigits string) (float64, bool) {
	for _, m := range amountDigitsRe.FindAllStringSubmatch(text, -1) {
		if excludedDigits != "" && nonDigitRe.ReplaceAllString(m[1], "") == excludedDigits {
			continue
		}
		if val, ok := parseDigitAmount(m[1]); ok {
			return val, true
		}
		break
	}

	words := SplitWords(text)

	hasCurrency := false
	for _, w := range words {
		if w == "tl" || w == "lira" {
			hasCurrency = true
			break
		}
	}
	if hasCurrency {
		for i := len(words) - 1; i >= 0; i-- {
			if words[i] != "tl" && words[i] != "lira" {
				continue
			}
			start := i - 6
			if start < 0 {
				start = 0
			}
			if val, ok := ParseNumberWords(words[start:i]); ok {
				return val, true
			}
		}
	}

	runs := digitRunRe.FindAllString(text, -1)
	if excludedDigits != "" {
		kept := runs[:0]
		for _, r := range runs {
			if nonDigitRe.ReplaceAllString(r, "") != excludedDigits {
				kept = append(kept, r)
			}
		}
		runs = kept
	}
	if len(runs) > 0 {
		if val, ok := parseDigitAmount(runs[len(runs)-1]); ok {
			return val, true
		}
	}

	reversed := make([]string, len(words))
	for i, w := range words {
		reversed[len(words)-1-i] = w
	}
	if val, ok := ParseNumberWords(reversed); ok {
		return val, true
	}

	return 0, false
}
