package command

import (
	"strconv"
	"strings"

	"butce-backend/internal/ledger"
	"butce-backend/internal/nlu"
)

// OperationFromText: söylemden fiil + havuz okuyup işlem etiketine çevirir.
// Fiil yoksa işlem çıkarılamaz; havuz tek başına yetmez.
func OperationFromText(text string) (ledger.Operation, bool) {
	verb, ok := nlu.DetectVerb(text)
	if !ok {
		return "", false
	}
	if nlu.DetectPool(text) == nlu.PoolOffBudget {
		if verb == nlu.VerbSubtract {
			return ledger.OpSubtractOffBudget, true
		}
		return ledger.OpAddOffBudget, true
	}
	if verb == nlu.VerbSubtract {
		return ledger.OpSubtractSystem, true
	}
	return ledger.OpAddSystem, true
}

// parseManualRef: manuel PersonRef alanını okur ("12345", "12345,0" gibi)
func parseManualRef(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return nil
	}
	ref := int(v)
	return &ref
}

// ResolveClickInputs: "İşlem Yap" tıklaması için girdileri tek komuta indirir.
//
// Kişi önceliği: manuel alan > seçili satır > son söylemdeki sicil > son
// söylemdeki ad eşleşmesi. Tutar önceliği: UI alanı (>0 ise) > 30 sn'lik
// yapışkan tutar > son söylemden çıkarılan tutar. İşlem türü önceliği:
// söylemden çözülen > UI seçimi. Asimetri bilinçli: niyetin kaynağı konuşma,
// hassas girilmiş tutarın kaynağı UI'dır.
func ResolveClickInputs(s *ledger.State, manualRef string, uiAmount float64, uiOp ledger.Operation, lastText string) (*int, *float64, ledger.Operation) {
	pref := parseManualRef(manualRef)
	var prefDigits string

	if pref == nil && s.SelectedRef != nil {
		v := *s.SelectedRef
		pref = &v
	}
	if pref == nil && lastText != "" {
		if n, d, ok := nlu.ExtractPersonRef(lastText); ok {
			pref = &n
			prefDigits = d
		}
	}
	if pref == nil && lastText != "" {
		if ref, _, ok := s.Data.FindByName(lastText); ok {
			pref = &ref
		}
	}

	var amt *float64
	if uiAmount > 0 {
		amt = &uiAmount
	}
	if amt == nil {
		if v, ok := s.StickyAmount(); ok {
			amt = &v
		}
	}
	if amt == nil && lastText != "" {
		if v, ok := nlu.ExtractAmount(lastText, prefDigits); ok {
			amt = &v
		}
	}

	op, ok := OperationFromText(lastText)
	if !ok {
		op = uiOp
	}

	return pref, amt, op
}
