package ledger

import (
	"path/filepath"
	"testing"

	"butce-backend/internal/dataset"
)

func TestCommitMovesOpsToHistory(t *testing.T) {
	s := testState()
	if _, err := Apply(s, 10001, 200, OpSubtractSystem); err != nil {
		t.Fatalf("Apply hata verdi: %v", err)
	}
	if _, err := Apply(s, 10002, 50, OpAddSystem); err != nil {
		t.Fatalf("Apply hata verdi: %v", err)
	}

	path := filepath.Join(t.TempDir(), "butce.xlsx")
	count, err := Commit(s, path, nil, 1, "Test Admin")
	if err != nil {
		t.Fatalf("Commit hata verdi: %v", err)
	}
	if count != 2 {
		t.Fatalf("commit edilen işlem sayısı %d, beklenen 2", count)
	}
	if len(s.UnsavedOps) != 0 || len(s.History) != 2 {
		t.Fatalf("buffer'lar taşınmadı: unsaved=%d history=%d", len(s.UnsavedOps), len(s.History))
	}

	// Yazılan dosya geri yüklenebilmeli ve mutasyonu içermeli
	ds, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("kaydedilen dosya yüklenemedi: %v", err)
	}
	row, ok := ds.FindByRef(10001)
	if !ok || row.NewSalary != 200 {
		t.Fatalf("mutasyon dosyaya yazılmamış: %+v", row)
	}
}

func TestCommitFailureLeavesStateUntouched(t *testing.T) {
	s := testState()
	if _, err := Apply(s, 10001, 200, OpSubtractSystem); err != nil {
		t.Fatalf("Apply hata verdi: %v", err)
	}

	// Yazılamayan yol: commit başarısız olmalı, buffer'lar yerinde kalmalı
	if _, err := Commit(s, filepath.Join(t.TempDir(), "yok", "alt", "butce.xlsx"), nil, 1, "Test Admin"); err == nil {
		t.Fatal("geçersiz yola commit hata vermeliydi")
	}
	if len(s.UnsavedOps) != 1 || len(s.History) != 0 {
		t.Fatalf("başarısız commit buffer'ları bozdu: unsaved=%d history=%d", len(s.UnsavedOps), len(s.History))
	}
}
