package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"butce-backend/internal/nlu"

	"github.com/xuri/excelize/v2"
)

// Kolon takma adları. Başlıklar Canon ile karşılaştırılır; böylece
// "Mevcut Maaş", "MEVCUT MAAS" ve "mevcut maas" aynı kolona çözülür.
var (
	personRefAliases  = []string{"PersonRef", "sicil", "sicil no", "person", "employee id", "id", "ref"}
	salaryAliases     = []string{"CurrentSalary", "mevcut maaş", "mevcut ucret", "salary", "maas"}
	newSalaryAliases  = []string{"NewSalary", "yeni maaş", "yeni ucret", "new salary"}
	offBudgetAliases  = []string{"BÜTÇE DIŞI TALEPLER İLE", "butce disi", "budget extra", "ekstra"}
	departmentAliases = []string{"DEPARTMAN", "departman", "bölüm", "bolum", "department", "birim"}
	fullNameAliases   = []string{"ad soyad", "adsoyadi", "ad soyadi", "adsoyad"}
	firstNameAliases  = []string{"ad", "adi", "isim"}
	lastNameAliases   = []string{"soyad", "soyadi"}
)

// Export/kayıt başlıkları — orijinal çalışma dosyasının kolon adları
var exportHeaders = []string{
	"PersonRef", "AD SOYAD", "DEPARTMAN",
	"1.YÖNETİCİSİ", "2.YÖNETİCİSİ", "3.YÖNETİCİSİ", "4.YÖNETİCİSİ",
	"CurrentSalary", "NewSalary", "BÜTÇE DIŞI TALEPLER İLE",
	"KULLANILAN BÜTÇE DIŞI DAHİL", "SİSTEM KALAN", "BÜTÇE DIŞI KALAN",
}

// findColumn: başlık satırında takma adlardan birine uyan kolonun indeksini bulur
func findColumn(headers []string, aliases []string) int {
	for i, h := range headers {
		ch := nlu.Canon(h)
		if ch == "" {
			continue
		}
		for _, a := range aliases {
			if ch == nlu.Canon(a) {
				return i
			}
		}
	}
	return -1
}

func managerColumn(headers []string, level int) int {
	aliases := []string{
		fmt.Sprintf("%d.YÖNETİCİSİ", level),
		fmt.Sprintf("%d.yonetici", level),
		fmt.Sprintf("yonetici %d", level),
	}
	return findColumn(headers, aliases)
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseNumeric: hücredeki sayıyı okur. Hem "1234.5" hem Türkçe biçim
// "1.234,50" kabul edilir; okunamayan değer 0 sayılır (sert hata değil).
func parseNumeric(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	tr := strings.ReplaceAll(s, ".", "")
	tr = strings.ReplaceAll(tr, ",", ".")
	if v, err := strconv.ParseFloat(tr, 64); err == nil {
		return v
	}
	return 0
}

// parseRef: sicil hücresini okur; boş ya da sayı olmayan hücre nil döner
func parseRef(s string) *int {
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

// Load: Excel dosyasını okuyup normalize edilmiş veri kümesini üretir.
// İlk sheet'in ilk satırı başlık kabul edilir; kolonlar takma adlarla
// çözülür, türetilen kolonlar hesaplanır.
func Load(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("excel dosyası açılamadı: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel dosyasında sheet bulunamadı")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("sheet okunamadı: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel dosyası boş")
	}

	return FromRows(rows)
}

// FromRows: başlık satırı + veri satırlarından veri kümesi kurar
func FromRows(rows [][]string) (*Dataset, error) {
	headers := rows[0]

	refCol := findColumn(headers, personRefAliases)
	salCol := findColumn(headers, salaryAliases)
	newCol := findColumn(headers, newSalaryAliases)
	offCol := findColumn(headers, offBudgetAliases)
	depCol := findColumn(headers, departmentAliases)
	fullCol := findColumn(headers, fullNameAliases)
	firstCol := findColumn(headers, firstNameAliases)
	lastCol := findColumn(headers, lastNameAliases)

	var manCols [4]int
	for i := 0; i < 4; i++ {
		manCols[i] = managerColumn(headers, i+1)
	}

	ds := &Dataset{}
	for _, row := range rows[1:] {
		empty := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		e := &Employee{
			PersonRef:          parseRef(cell(row, refCol)),
			Department:         cell(row, depCol),
			CurrentSalary:      parseNumeric(cell(row, salCol)),
			NewSalary:          parseNumeric(cell(row, newCol)),
			OffBudgetRequested: parseNumeric(cell(row, offCol)),
		}

		if fullCol >= 0 {
			e.FullName = cell(row, fullCol)
		} else if firstCol >= 0 && lastCol >= 0 {
			e.FullName = strings.TrimSpace(cell(row, firstCol) + " " + cell(row, lastCol))
		}

		for i := 0; i < 4; i++ {
			e.Managers[i] = cell(row, manCols[i])
		}

		ds.Rows = append(ds.Rows, e)
	}

	ds.Recompute()
	return ds, nil
}

// BuildFile: veri kümesini (türetilen kolonlar dahil) bir Excel dosyasına yazar
func BuildFile(rows []*Employee) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &exportHeaders); err != nil {
		return nil, fmt.Errorf("başlık satırı yazılamadı: %w", err)
	}

	for i, e := range rows {
		var ref interface{}
		if e.PersonRef != nil {
			ref = *e.PersonRef
		}
		values := []interface{}{
			ref, e.FullName, e.Department,
			e.Managers[0], e.Managers[1], e.Managers[2], e.Managers[3],
			e.CurrentSalary, e.NewSalary, e.OffBudgetRequested,
			e.BudgetUsed, e.SystemRemaining, e.OffBudgetRemaining,
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, addr, &values); err != nil {
			return nil, fmt.Errorf("satır yazılamadı: %w", err)
		}
	}

	return f, nil
}

// Save: veri kümesini çalışma dosyasına geri yazar (Kaydet adımı)
func Save(path string, d *Dataset) error {
	f, err := BuildFile(d.Rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("excel dosyası kaydedilemedi: %w", err)
	}
	return nil
}
