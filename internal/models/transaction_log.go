package models

import "time"

// TransactionLog - Kaydet ile geçmişe işlenen bütçe hareketleri.
// Kaydedilmemiş işlemler (unsaved_ops) bellekte tutulur; commit anında
// buraya yazılır ki geçmiş, uygulama yeniden başlasa da kaybolmasın.
type TransactionLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// İşlemin uygulandığı an (commit anı değil)
	AppliedAt time.Time `gorm:"index;not null" json:"applied_at"`

	PersonRef  int    `gorm:"index;not null" json:"person_ref"`
	FullName   string `gorm:"size:150" json:"full_name"`
	Department string `gorm:"size:100" json:"department"`

	// "1.Yönetici > 2.Yönetici > ..." zinciri (boşlar atılmış)
	ManagerChain string `gorm:"size:255" json:"manager_chain"`

	// İşlem etiketi, ör: "Bütçeden Düş (Sistem Kalan)"
	Operation string `gorm:"size:60;not null" json:"operation"`

	// "Sistem" | "Bütçe Dışı"
	Pool string `gorm:"size:20;not null" json:"pool"`

	Amount float64 `gorm:"not null" json:"amount"`

	// Önce/sonra kalan değerleri (her iki havuz için)
	BeforeSystemRemaining    float64 `json:"before_system_remaining"`
	AfterSystemRemaining     float64 `json:"after_system_remaining"`
	BeforeOffBudgetRemaining float64 `json:"before_offbudget_remaining"`
	AfterOffBudgetRemaining  float64 `json:"after_offbudget_remaining"`

	// İşlemi yapan kullanıcı (denormalize)
	UserID   uint   `json:"user_id"`
	UserName string `gorm:"size:100" json:"user_name"`
}
