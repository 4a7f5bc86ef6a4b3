package command

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"butce-backend/internal/dataset"
	"butce-backend/internal/ledger"
	"butce-backend/internal/nlu"
)

// Komut sonuç durumları
const (
	StatusIgnored        = "ignored"
	StatusApplied        = "applied"
	StatusReady          = "ready"
	StatusWarning        = "warning"
	StatusBatchPending   = "batch_pending"
	StatusBatchApplied   = "batch_applied"
	StatusBatchCancelled = "batch_cancelled"
)

// Result: bir sesli ya da tıklamalı komutun çözüm sonucu. Message ekranda
// gösterilir, Speech sesli geri bildirim için okunur.
type Result struct {
	Status       string               `json:"status"`
	Message      string               `json:"message,omitempty"`
	Speech       string               `json:"speech,omitempty"`
	Applied      *ledger.Transaction  `json:"applied,omitempty"`
	Batch        *ledger.PendingBatch `json:"batch,omitempty"`
	AppliedCount int                  `json:"applied_count,omitempty"`
	SkippedCount int                  `json:"skipped_count,omitempty"`
}

// HandleUtterance: sesli komutun tam akışı. Aynı metni art arda yutmaz,
// bekleyen toplu işlem varsa önce onay/iptal kelimelerine bakar.
func HandleUtterance(s *ledger.State, text string, uiAmount float64) Result {
	text = strings.TrimSpace(text)
	if text == "" || !s.MarkVoice(text) {
		return Result{Status: StatusIgnored}
	}

	if s.PendingBatch != nil {
		if nlu.HasConfirm(text) {
			b := s.PendingBatch
			applied, skipped := ledger.ApplyBatch(s, b)
			s.PendingBatch = nil
			msg := fmt.Sprintf("Toplu işlem uygulandı: %d satır (%d atlandı). Kaydet ile geçmişe işlenir.", applied, skipped)
			return Result{
				Status:       StatusBatchApplied,
				Message:      msg,
				Speech:       "Toplu işlem uygulandı. Kaydet tuşuyla geçmişe ekleyin.",
				AppliedCount: applied,
				SkippedCount: skipped,
			}
		}
		if nlu.HasCancel(text) {
			s.PendingBatch = nil
			return Result{
				Status:  StatusBatchCancelled,
				Message: "Toplu işlem iptal edildi.",
				Speech:  "Toplu işlem iptal edildi.",
			}
		}
	}

	return HandleCommand(s, text, uiAmount)
}

// HandleCommand: söylemi çözüp uygular ya da eksikleri raporlar.
func HandleCommand(s *ledger.State, text string, uiAmount float64) Result {
	t := strings.ToLower(strings.TrimSpace(text))

	trigger := nlu.HasTrigger(t)
	op, hasOp := OperationFromText(t)

	var pref *int
	var prefDigits, foundName string
	if n, d, ok := nlu.ExtractPersonRef(t); ok {
		pref = &n
		prefDigits = d
	}
	if pref == nil && s.SelectedRef != nil {
		v := *s.SelectedRef
		pref = &v
	}
	if pref == nil {
		if ref, name, ok := s.Data.FindByName(t); ok {
			pref = &ref
			foundName = name
		}
	}

	// Söylemdeki tutar yapışkan tutarı da tazeler.
	var amt *float64
	if v, ok := nlu.ExtractAmount(t, prefDigits); ok {
		s.SetStickyAmount(v)
		amt = &v
	}
	if amt == nil && uiAmount > 0 {
		amt = &uiAmount
	}
	if amt == nil {
		if v, ok := s.StickyAmount(); ok {
			amt = &v
		}
	}

	// Yönetici adı geçiyor ve tek kişi hedefi yoksa toplu işlem sayılır.
	hit, hasHit := s.Data.FindManagerIn(t)
	allReq := nlu.HasAllReports(t)
	if !allReq && hasHit && pref == nil {
		allReq = true
	}
	if allReq && hasHit && hasOp && amt != nil {
		refs := dataset.RefsOf(s.Data.ReportsOf(hit))
		if len(refs) == 0 {
			return warn("Bu yöneticiye bağlı kimse bulunamadı.", "Bu yöneticiye bağlı kimse bulunamadı.")
		}
		s.PendingBatch = &ledger.PendingBatch{Manager: hit, Op: op, Amount: *amt, Refs: refs}
		speech := fmt.Sprintf("%s yöneticisinin %d bağlısına %d lira işlem için onay gerekiyor. Onayla ya da iptal diyebilirsiniz.", hit, len(refs), int(math.Round(*amt)))
		return Result{
			Status:  StatusBatchPending,
			Message: fmt.Sprintf("Onay bekleniyor: %s ekibindeki %d kişi, %s, %.2f TL.", hit, len(refs), s.PendingBatch.Op, *amt),
			Speech:  speech,
			Batch:   s.PendingBatch,
		}
	}

	if hasOp && amt != nil && pref != nil {
		if s.AutoApply || trigger {
			return applyOne(s, *pref, *amt, op, foundName)
		}
		return Result{
			Status:  StatusReady,
			Message: "Komut çözüldü. 'İşlem Yap' ile uygulayabilirsiniz.",
			Speech:  "Komut hazır. İşlem Yap tuşuna basın.",
		}
	}

	if trigger {
		var missing []string
		if pref == nil {
			missing = append(missing, "kişi (tabloda seçin ya da adını söyleyin)")
		}
		if amt == nil {
			missing = append(missing, "tutar (söyleyin ya da soldan girin)")
		}
		if !hasOp {
			missing = append(missing, "işlem türü (düş/ekle)")
		}
		msg := "Eksik: " + strings.Join(missing, ", ") + "."
		return warn(msg, msg)
	}
	if amt == nil {
		return warn(
			"Tutar algılanamadı. Cümlede tutarı söyleyin (ör. 'seksen beş', '85 TL') ya da soldan girin.",
			"Tutar algılanamadı. Lütfen tutarı söyleyin veya ekrandan girin.",
		)
	}
	return warn(
		"Komut eksik. Örnek: 'Bu kişinin sistemden 85 TL düş' (tabloda Seç) ya da 'PersonRef 12345 sistemden 85 TL düş'.",
		"Komut anlaşılamadı. Lütfen kişiyi ve işlemi söyleyin.",
	)
}

// Click: "İşlem Yap" butonunun akışı. Son söylem ve UI girdileri birleşir.
func Click(s *ledger.State, manualRef string, uiAmount float64, uiOp ledger.Operation) Result {
	pref, amt, op := ResolveClickInputs(s, manualRef, uiAmount, uiOp, s.LastVoice())
	if pref == nil {
		return warn(
			"Kişi bulunamadı. Tabloda seçin, PersonRef girin ya da son komutta isim/PersonRef geçsin.",
			"Kişi bulunamadı. Lütfen kişi seçin ya da PersonRef söyleyin.",
		)
	}
	if amt == nil || *amt <= 0 {
		return warn(
			"Tutar yok. Soldan girin ya da son cümlede tutarı söyleyin (örn. 80 TL).",
			"Tutar algılanmadı. Lütfen tutarı söyleyin veya girin.",
		)
	}
	if !op.Valid() {
		return warn(
			"İşlem türü anlaşılmadı. 'düş' veya 'ekle' deyin; 'bütçe dışı' derseniz oraya uygulanır.",
			"İşlem türü anlaşılmadı. Lütfen düş mü ekle mi olduğunu söyleyin.",
		)
	}
	return applyOne(s, *pref, *amt, op, "")
}

func applyOne(s *ledger.State, ref int, amount float64, op ledger.Operation, foundName string) Result {
	tx, err := ledger.Apply(s, ref, amount, op)
	if err != nil {
		if errors.Is(err, ledger.ErrPersonNotFound) {
			return warn("Girilen PersonRef ile eşleşen kişi bulunamadı.", "Girilen kişi bulunamadı.")
		}
		return warn("İşlem uygulanamadı: "+err.Error(), "İşlem uygulanamadı. Girdileri kontrol edin.")
	}
	speech := fmt.Sprintf("%d lira %s. Kaydet tuşuyla geçmişe eklenecek.", int(math.Round(amount)), op.VerbPhrase())
	if foundName != "" {
		speech = foundName + " bulundu. " + speech
	}
	return Result{
		Status:  StatusApplied,
		Message: fmt.Sprintf("İşlem uygulandı: %.2f TL %s. Geçmişe Kaydet ile işlenir.", amount, op.VerbPhrase()),
		Speech:  speech,
		Applied: tx,
	}
}

func warn(msg, speech string) Result {
	return Result{Status: StatusWarning, Message: msg, Speech: speech}
}
