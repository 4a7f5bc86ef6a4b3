package ledger

import (
	"errors"
	"testing"
	"time"

	"butce-backend/internal/dataset"
)

func intPtr(v int) *int { return &v }

func testState() *State {
	ds := &dataset.Dataset{
		Rows: []*dataset.Employee{
			{PersonRef: intPtr(10001), FullName: "Ali Veli", Department: "Satış",
				Managers: [4]string{"Mehmet Demir", "", "", ""}, CurrentSalary: 1000},
			{PersonRef: intPtr(10002), FullName: "Ayşegül Ünal", Department: "Finans",
				Managers: [4]string{"Mehmet Demir", "", "", ""}, CurrentSalary: 2000},
		},
	}
	ds.Recompute()
	return NewState(ds)
}

func TestApplyEndToEnd(t *testing.T) {
	s := testState()
	row, _ := s.Data.FindByRef(10001)

	// current_salary=1000 -> budget_used=1400, system_remaining=1400
	if row.SystemRemaining != 1400 {
		t.Fatalf("başlangıç sistem kalan %v, beklenen 1400", row.SystemRemaining)
	}

	tx, err := Apply(s, 10001, 200, OpSubtractSystem)
	if err != nil {
		t.Fatalf("Apply hata verdi: %v", err)
	}
	if row.NewSalary != 200 || row.SystemRemaining != 1200 {
		t.Fatalf("düş sonrası: NewSalary=%v SystemRemaining=%v", row.NewSalary, row.SystemRemaining)
	}
	if tx.BeforeSystemRemaining != 1400 || tx.AfterSystemRemaining != 1200 {
		t.Fatalf("önce/sonra hatalı: %v -> %v", tx.BeforeSystemRemaining, tx.AfterSystemRemaining)
	}

	if _, err := Apply(s, 10001, 50, OpAddSystem); err != nil {
		t.Fatalf("Apply hata verdi: %v", err)
	}
	if row.NewSalary != 150 || row.SystemRemaining != 1250 {
		t.Fatalf("ekle sonrası: NewSalary=%v SystemRemaining=%v", row.NewSalary, row.SystemRemaining)
	}

	if len(s.UnsavedOps) != 2 {
		t.Fatalf("kaydedilmemiş işlem sayısı %d, beklenen 2", len(s.UnsavedOps))
	}
}

func TestApplyInvariants(t *testing.T) {
	s := testState()
	ops := []struct {
		op  Operation
		amt float64
	}{
		{OpSubtractSystem, 100},
		{OpAddSystem, 30},
		{OpSubtractOffBudget, 250},
		{OpAddOffBudget, 10},
	}
	for _, o := range ops {
		if _, err := Apply(s, 10002, o.amt, o.op); err != nil {
			t.Fatalf("Apply(%v) hata verdi: %v", o.op, err)
		}
		row, _ := s.Data.FindByRef(10002)
		used := row.CurrentSalary * dataset.BudgetFactor
		if row.SystemRemaining+row.NewSalary != used {
			t.Fatalf("%v sonrası sistem değişmezi bozuldu", o.op)
		}
		if row.OffBudgetRemaining+row.OffBudgetRequested != used {
			t.Fatalf("%v sonrası bütçe dışı değişmezi bozuldu", o.op)
		}
	}
}

func TestApplyOffBudgetPool(t *testing.T) {
	s := testState()
	tx, err := Apply(s, 10001, 300, OpSubtractOffBudget)
	if err != nil {
		t.Fatalf("Apply hata verdi: %v", err)
	}
	row, _ := s.Data.FindByRef(10001)
	if row.OffBudgetRequested != 300 || row.OffBudgetRemaining != 1100 {
		t.Fatalf("bütçe dışı havuz hatalı: %v / %v", row.OffBudgetRequested, row.OffBudgetRemaining)
	}
	// Sistem havuzu etkilenmemeli
	if row.NewSalary != 0 || row.SystemRemaining != 1400 {
		t.Fatalf("sistem havuzu yanlışlıkla değişti")
	}
	if tx.Pool != PoolOffBudget {
		t.Fatalf("havuz etiketi %q, beklenen %q", tx.Pool, PoolOffBudget)
	}
}

func TestApplyAllowsNegativeAccumulation(t *testing.T) {
	// Tekrarlanan "ekle" tüketimi eksiye düşürebilir; kırpılmaz
	s := testState()
	if _, err := Apply(s, 10001, 500, OpAddSystem); err != nil {
		t.Fatalf("Apply hata verdi: %v", err)
	}
	row, _ := s.Data.FindByRef(10001)
	if row.NewSalary != -500 || row.SystemRemaining != 1900 {
		t.Fatalf("negatif birikim kırpıldı: NewSalary=%v SystemRemaining=%v", row.NewSalary, row.SystemRemaining)
	}
}

func TestApplyFailures(t *testing.T) {
	s := testState()

	if _, err := Apply(s, 99999, 100, OpSubtractSystem); !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("beklenen ErrPersonNotFound, gelen %v", err)
	}
	if _, err := Apply(s, 10001, 0, OpSubtractSystem); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("beklenen ErrInvalidAmount, gelen %v", err)
	}
	if _, err := Apply(s, 10001, 100, Operation("bozuk")); !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("beklenen ErrUnknownOperation, gelen %v", err)
	}

	// Hata durumunda hiçbir mutasyon ya da kayıt olmamalı
	row, _ := s.Data.FindByRef(10001)
	if row.NewSalary != 0 || len(s.UnsavedOps) != 0 {
		t.Fatalf("başarısız işlem iz bıraktı")
	}
}

func TestApplyBatchSkipsFailedRows(t *testing.T) {
	s := testState()
	b := &PendingBatch{
		Manager: "Mehmet Demir",
		Op:      OpSubtractSystem,
		Amount:  100,
		Refs:    []int{10001, 55555, 10002}, // ortadaki sicil geçersiz
	}

	applied, skipped := ApplyBatch(s, b)
	if applied != 2 || skipped != 1 {
		t.Fatalf("applied=%d skipped=%d, beklenen 2/1", applied, skipped)
	}
	if len(s.UnsavedOps) != 2 {
		t.Fatalf("geçerli hedef sayısı kadar kayıt beklenirdi, gelen %d", len(s.UnsavedOps))
	}
	for _, ref := range []int{10001, 10002} {
		row, _ := s.Data.FindByRef(ref)
		if row.NewSalary != 100 {
			t.Fatalf("sicil %d işlenmedi", ref)
		}
	}
}

func TestStickyAmountExpiry(t *testing.T) {
	s := testState()
	now := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return now }

	s.SetStickyAmount(85)

	now = now.Add(29 * time.Second)
	if v, ok := s.StickyAmount(); !ok || v != 85 {
		t.Fatalf("29. saniyede yapışkan tutar kullanılabilir olmalı: (%v, %v)", v, ok)
	}

	now = now.Add(2 * time.Second) // T+31s
	if _, ok := s.StickyAmount(); ok {
		t.Fatal("31. saniyede yapışkan tutar süresi dolmuş olmalı")
	}
}

func TestMarkVoiceSuppressesDuplicates(t *testing.T) {
	s := testState()
	if !s.MarkVoice("seksen beş düş") {
		t.Fatal("ilk söylem işlenmeli")
	}
	if s.MarkVoice("seksen beş düş") {
		t.Fatal("aynı söylem ikinci kez işlenmemeli")
	}
	if !s.MarkVoice("yüz ekle") {
		t.Fatal("farklı söylem işlenmeli")
	}
}
