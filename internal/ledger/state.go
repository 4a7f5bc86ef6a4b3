package ledger

import (
	"sync"
	"time"

	"butce-backend/internal/dataset"
)

// StickyWindow: sesle söylenen tutar bu süre boyunca buton tıklamalarında
// yedek girdi olarak kullanılabilir
const StickyWindow = 30 * time.Second

// State - oturum durumu: veri kümesi, kaydedilmemiş işlemler, geçmiş,
// bekleyen toplu işlem ve yapışkan tutar. Tek yazarlı çalışır; HTTP
// katmanı her komut için Lock/Unlock ile sarar. Yalnızca Ledger Engine ve
// Command Resolver mutasyon yapar.
type State struct {
	mu sync.Mutex

	Data         *dataset.Dataset
	UnsavedOps   []Transaction
	History      []Transaction
	PendingBatch *PendingBatch

	SelectedRef *int
	AutoApply   bool

	lastVoice    string
	stickyAmount float64
	stickyAt     time.Time

	// Testlerde sabitlenebilir saat
	Now func() time.Time
}

func NewState(ds *dataset.Dataset) *State {
	return &State{
		Data:      ds,
		AutoApply: true,
		Now:       time.Now,
	}
}

func (s *State) Lock()   { s.mu.Lock() }
func (s *State) Unlock() { s.mu.Unlock() }

// SetStickyAmount: sesle çıkarılan son tutarı zaman damgasıyla saklar.
// Yeni bir tutar çıkarıldığında üzerine yazılır; hiç kalıcılaştırılmaz.
func (s *State) SetStickyAmount(v float64) {
	s.stickyAmount = v
	s.stickyAt = s.Now()
}

// StickyAmount: 30 saniyeyi aşmamış yapışkan tutarı döndürür — sesle
// söyleyip butona geç basınca tutar kaybolmasın
func (s *State) StickyAmount() (float64, bool) {
	if s.stickyAmount > 0 && s.Now().Sub(s.stickyAt) <= StickyWindow {
		return s.stickyAmount, true
	}
	return 0, false
}

// MarkVoice: yeni bir söylem metnini işaretler. Aynı metin art arda
// gelirse (tarayıcı aynı sonucu iki kez teslim edebiliyor) false döner ve
// komut yeniden işlenmez.
func (s *State) MarkVoice(text string) bool {
	if text == s.lastVoice {
		return false
	}
	s.lastVoice = text
	return true
}

// LastVoice: son işlenen söylem metni
func (s *State) LastVoice() string {
	return s.lastVoice
}
