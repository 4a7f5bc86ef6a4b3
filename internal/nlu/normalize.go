package nlu

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	canonRe     = regexp.MustCompile(`[^a-z0-9çğıöşü]+`)
	wordCleanRe = regexp.MustCompile(`[^a-zçğıöşü0-9]`)
)

// stripAccents: Unicode ayrıştırması (NFD) ile aksanları düşürür.
// Örn: "Ayşegül Ünal" -> "Aysegul Unal" ("ı" ayrışmaz, olduğu gibi kalır)
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Canon: metni eşleştirme anahtarına çevirir — küçük harf, aksansız,
// harf/rakam dışındaki her şey atılmış. Hem kolon başlığı eşleştirmede
// hem serbest metin aramada kullanılır. Canon(Canon(x)) == Canon(x).
func Canon(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = stripAccents(s)
	return canonRe.ReplaceAllString(s, "")
}

// SplitWords: metni kelimelere böler; her kelime küçük harfe çevrilir ve
// harf/rakam dışındaki karakterlerden arındırılır. Türkçe harfler korunur.
func SplitWords(s string) []string {
	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		out = append(out, wordCleanRe.ReplaceAllString(strings.ToLower(w), ""))
	}
	return out
}
