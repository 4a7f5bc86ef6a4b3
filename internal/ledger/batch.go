package ledger

import "log"

// PendingBatch - onay bekleyen toplu işlem: bir yöneticinin bağlılarının
// tamamına aynı tek kişilik işlemin uygulanması. Açık bir onay ("onayla")
// gelene kadar hiçbir mutasyon yapılmaz; iptal iz bırakmadan siler.
type PendingBatch struct {
	Manager string    `json:"manager"`
	Op      Operation `json:"operation"`
	Amount  float64   `json:"amount"`
	Refs    []int     `json:"refs"`
}

// ApplyBatch: bekleyen toplu işlemi hedef listesi sırasıyla uygular.
// Satırlar arası atomiklik yoktur: her satır bağımsız commit edilir,
// başarısız satır loglanıp atlanır ve tarama sona kadar sürer. Bu,
// hepsi-ya-hiçbiri karmaşıklığı yerine bilinçli tercih edilen basitliktir.
func ApplyBatch(s *State, b *PendingBatch) (applied int, skipped int) {
	for _, ref := range b.Refs {
		if _, err := Apply(s, ref, b.Amount, b.Op); err != nil {
			log.Printf("Toplu işlem satırı atlandı (sicil=%d): %v", ref, err)
			skipped++
			continue
		}
		applied++
	}
	return applied, skipped
}
