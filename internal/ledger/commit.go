package ledger

import (
	"log"

	"butce-backend/internal/dataset"
	"butce-backend/internal/models"

	"gorm.io/gorm"
)

// Commit: Kaydet adımı. Veri kümesi Excel dosyasına geri yazılır,
// kaydedilmemiş işlemler geçmişe ve veritabanına işlenir, bekleyen liste
// temizlenir. Excel yazılamazsa hiçbir şey taşınmaz; kullanıcı tekrar
// deneyebilir. Veritabanı eklemesi başarısız olursa commit bellekte yine
// tamamlanır (geçmiş oturum içinde korunur), hata yalnızca loglanır.
func Commit(s *State, excelPath string, db *gorm.DB, userID uint, userName string) (int, error) {
	if err := dataset.Save(excelPath, s.Data); err != nil {
		return 0, err
	}

	count := len(s.UnsavedOps)
	if count > 0 && db != nil {
		logs := make([]models.TransactionLog, 0, count)
		for _, tx := range s.UnsavedOps {
			logs = append(logs, models.TransactionLog{
				AppliedAt:                tx.Time,
				PersonRef:                tx.PersonRef,
				FullName:                 tx.FullName,
				Department:               tx.Department,
				ManagerChain:             tx.ManagerChain,
				Operation:                string(tx.Operation),
				Pool:                     tx.Pool,
				Amount:                   tx.Amount,
				BeforeSystemRemaining:    tx.BeforeSystemRemaining,
				AfterSystemRemaining:     tx.AfterSystemRemaining,
				BeforeOffBudgetRemaining: tx.BeforeOffBudgetRemaining,
				AfterOffBudgetRemaining:  tx.AfterOffBudgetRemaining,
				UserID:                   userID,
				UserName:                 userName,
			})
		}
		if err := db.Create(&logs).Error; err != nil {
			log.Printf("İşlem geçmişi veritabanına yazılamadı: %v", err)
		}
	}

	s.History = append(s.History, s.UnsavedOps...)
	s.UnsavedOps = nil
	return count, nil
}
