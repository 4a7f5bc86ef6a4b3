package nlu

import "strings"

type Verb string

const (
	VerbSubtract Verb = "düş"
	VerbAdd      Verb = "ekle"
)

type Pool string

const (
	PoolSystem    Pool = "sistem"
	PoolOffBudget Pool = "dis"
)

// Anahtar kelime tabloları. Genel bir sınıflandırıcı değil, bilinçli olarak
// basit tutulmuş kalıp listeleri.
var (
	subtractKeywords = []string{"düş", "dus", "düşür", "çıkar", "cikar", "eksilt", "azalt"}
	addKeywords      = []string{"ekle", "arttır", "artır", "yükselt", "yukselt"}

	offBudgetPhrases = []string{"bütçe dış", "butce dis"}
	offBudgetWords   = []string{"dış", "dis"}

	triggerKeywords = []string{"işlem yap", "islem yap", "hemen uygula", "uygula", "onayla", "tamam"}
	confirmKeywords = []string{"onayla", "evet", "uygula", "tamam"}
	cancelKeywords  = []string{"iptal", "hayır", "hayir", "vazgeç", "vazgec"}

	allReportsKeywords = []string{"tüm bağlı", "tum bagli", "hepsi", "tamamı", "tüm çalışan", "tum calisan"}
)

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// DetectVerb: "düş" mü "ekle" mi? Önce düş kelimeleri denenir. Fiil yoksa
// işlem türü çıkarılamaz.
func DetectVerb(text string) (Verb, bool) {
	t := strings.ToLower(text)
	if containsAny(t, subtractKeywords) {
		return VerbSubtract, true
	}
	if containsAny(t, addKeywords) {
		return VerbAdd, true
	}
	return "", false
}

// DetectPool: "bütçe dışı" geçiyorsa (ya da tek başına "dış"/"dis" kelimesi
// varsa) bütçe dışı havuzu, yoksa sistem havuzu.
func DetectPool(text string) Pool {
	t := strings.ToLower(text)
	if containsAny(t, offBudgetPhrases) {
		return PoolOffBudget
	}
	for _, w := range SplitWords(t) {
		for _, k := range offBudgetWords {
			if w == k {
				return PoolOffBudget
			}
		}
	}
	return PoolSystem
}

func HasTrigger(text string) bool {
	return containsAny(strings.ToLower(text), triggerKeywords)
}

func HasConfirm(text string) bool {
	return containsAny(strings.ToLower(text), confirmKeywords)
}

func HasCancel(text string) bool {
	return containsAny(strings.ToLower(text), cancelKeywords)
}

func HasAllReports(text string) bool {
	return containsAny(strings.ToLower(text), allReportsKeywords)
}
