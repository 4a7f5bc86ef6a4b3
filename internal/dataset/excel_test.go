package dataset

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestFromRowsHeaderAliasing(t *testing.T) {
	// Kaynak dosyanın başlıkları birebir bilinemez; takma adlarla çözülmeli
	rows := [][]string{
		{"Sicil No", "Ad Soyad", "Bölüm", "1.YÖNETİCİSİ", "2.YÖNETİCİSİ", "Mevcut Maaş", "Yeni Maaş", "Butce Disi"},
		{"10001", "Ali Veli", "Satış", "Mehmet Demir", "", "1000", "0", "0"},
		{"", "", "", "", "", "", "", ""},
		{"10002", "Ayşegül Ünal", "Finans", "Zeynep Kaya", "Mehmet Demir", "1.500,50", "100", "50"},
	}

	ds, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows hata verdi: %v", err)
	}
	if len(ds.Rows) != 2 {
		t.Fatalf("boş satır atlanmalıydı; satır sayısı %d", len(ds.Rows))
	}

	e := ds.Rows[0]
	if e.PersonRef == nil || *e.PersonRef != 10001 {
		t.Fatalf("sicil çözülemedi: %+v", e.PersonRef)
	}
	if e.FullName != "Ali Veli" || e.Department != "Satış" {
		t.Fatalf("ad/bölüm hatalı: %q %q", e.FullName, e.Department)
	}
	if e.CurrentSalary != 1000 || e.BudgetUsed != 1400 {
		t.Fatalf("maaş/kullanılan hatalı: %v %v", e.CurrentSalary, e.BudgetUsed)
	}

	// Türkçe sayı biçimi "1.500,50"
	if got := ds.Rows[1].CurrentSalary; got != 1500.50 {
		t.Fatalf("Türkçe sayı biçimi okunamadı: %v", got)
	}
	if got := ds.Rows[1].SystemRemaining; got != 1500.50*BudgetFactor-100 {
		t.Fatalf("türetilen kolon hatalı: %v", got)
	}
}

func TestFromRowsFirstLastNameColumns(t *testing.T) {
	rows := [][]string{
		{"PersonRef", "Ad", "Soyad", "CurrentSalary"},
		{"10001", "Ali", "Veli", "1000"},
	}
	ds, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows hata verdi: %v", err)
	}
	if ds.Rows[0].FullName != "Ali Veli" {
		t.Fatalf("ad+soyad birleştirilmedi: %q", ds.Rows[0].FullName)
	}
}

func TestFromRowsMissingRef(t *testing.T) {
	rows := [][]string{
		{"PersonRef", "Ad Soyad", "CurrentSalary"},
		{"", "Henüz Atanmamış", "1000"},
	}
	ds, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows hata verdi: %v", err)
	}
	if ds.Rows[0].PersonRef != nil {
		t.Fatalf("boş sicil nil olmalı, gelen %v", *ds.Rows[0].PersonRef)
	}
}

func TestBuildFileRoundTrip(t *testing.T) {
	ds := testDataset()
	ds.Rows[0].NewSalary = 200
	ds.Recompute()

	f, err := BuildFile(ds.Rows)
	if err != nil {
		t.Fatalf("BuildFile hata verdi: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("buffer'a yazılamadı: %v", err)
	}
	f.Close()

	reopened, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("yazılan dosya geri açılamadı: %v", err)
	}
	defer reopened.Close()

	rows, err := reopened.GetRows(reopened.GetSheetName(0))
	if err != nil {
		t.Fatalf("satırlar okunamadı: %v", err)
	}

	ds2, err := FromRows(rows)
	if err != nil {
		t.Fatalf("geri yükleme hata verdi: %v", err)
	}
	if len(ds2.Rows) != len(ds.Rows) {
		t.Fatalf("satır sayısı değişti: %d != %d", len(ds2.Rows), len(ds.Rows))
	}

	a, b := ds.Rows[0], ds2.Rows[0]
	if *a.PersonRef != *b.PersonRef || a.FullName != b.FullName ||
		a.NewSalary != b.NewSalary || a.SystemRemaining != b.SystemRemaining {
		t.Fatalf("round-trip kaybı: %+v != %+v", a, b)
	}
}
