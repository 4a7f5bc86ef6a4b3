package ledger

import (
	"errors"
	"time"

	"butce-backend/internal/dataset"
)

var (
	ErrPersonNotFound   = errors.New("girilen sicil ile eşleşen kişi bulunamadı")
	ErrInvalidAmount    = errors.New("tutar pozitif olmalı")
	ErrUnknownOperation = errors.New("bilinmeyen işlem tipi")
)

// Transaction - uygulanan tek bir bütçe hareketi. Kaydet'e kadar
// UnsavedOps'ta bekler, commit ile History'ye ve veritabanına geçer.
type Transaction struct {
	Time         time.Time `json:"time"`
	PersonRef    int       `json:"person_ref"`
	FullName     string    `json:"full_name"`
	Department   string    `json:"department"`
	ManagerChain string    `json:"manager_chain"`
	Operation    Operation `json:"operation"`
	Pool         string    `json:"pool"`
	Amount       float64   `json:"amount"`

	BeforeSystemRemaining    float64 `json:"before_system_remaining"`
	AfterSystemRemaining     float64 `json:"after_system_remaining"`
	BeforeOffBudgetRemaining float64 `json:"before_offbudget_remaining"`
	AfterOffBudgetRemaining  float64 `json:"after_offbudget_remaining"`
}

// Apply: çözümlenmiş bir komutu veri kümesine uygular. "Düş" ilgili
// havuzun tüketimini artırır (kalan azalır); "Ekle" tüketimi azaltır
// (kalan artar) — tekrarlanan eklemeler tüketimi eksiye düşürebilir, bu
// bilinçli olarak kırpılmaz. Mutasyondan sonra türetilen kolonlar tüm veri
// kümesi için yeniden hesaplanır, önce/sonra kalanlar kayda geçirilir.
// Kişi bulunamazsa hiçbir mutasyon yapılmaz.
func Apply(s *State, personRef int, amount float64, op Operation) (*Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !op.Valid() {
		return nil, ErrUnknownOperation
	}

	row, ok := s.Data.FindByRef(personRef)
	if !ok {
		return nil, ErrPersonNotFound
	}

	// Önceki değerler
	used := row.CurrentSalary * dataset.BudgetFactor
	preSys := used - row.NewSalary
	preOff := used - row.OffBudgetRequested

	switch op {
	case OpSubtractSystem:
		row.NewSalary += amount
	case OpAddSystem:
		row.NewSalary -= amount
	case OpSubtractOffBudget:
		row.OffBudgetRequested += amount
	case OpAddOffBudget:
		row.OffBudgetRequested -= amount
	}

	s.Data.Recompute()

	tx := Transaction{
		Time:                     s.Now(),
		PersonRef:                personRef,
		FullName:                 row.FullName,
		Department:               row.Department,
		ManagerChain:             row.ManagerChain(),
		Operation:                op,
		Pool:                     op.Pool(),
		Amount:                   amount,
		BeforeSystemRemaining:    preSys,
		AfterSystemRemaining:     row.SystemRemaining,
		BeforeOffBudgetRemaining: preOff,
		AfterOffBudgetRemaining:  row.OffBudgetRemaining,
	}

	s.UnsavedOps = append(s.UnsavedOps, tx)
	return &tx, nil
}
