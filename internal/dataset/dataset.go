package dataset

import (
	"sort"
	"strings"

	"butce-backend/internal/nlu"
)

// BudgetFactor: kullanılan bütçe, mevcut maaşın 1.4 katı olarak hesaplanır
const BudgetFactor = 1.4

// Employee - çalışan satırı. NewSalary ve OffBudgetRequested, ilgili
// havuzdan tüketilen toplamı biriktirir; kalan kolonları bunlardan türetilir.
type Employee struct {
	PersonRef  *int   `json:"person_ref"` // atanmamış olabilir
	FullName   string `json:"full_name"`
	NormName   string `json:"-"` // eşleştirme anahtarı, Canon(FullName)
	Department string `json:"department"`

	// 1.–4. yönetici; boş kademeler zincir yazılırken atlanır
	Managers [4]string `json:"managers"`

	CurrentSalary      float64 `json:"current_salary"`
	NewSalary          float64 `json:"new_salary"`
	OffBudgetRequested float64 `json:"offbudget_requested"`

	// Türetilen kolonlar — her mutasyondan sonra Recompute ile tazelenir,
	// asla elle yazılmaz
	BudgetUsed         float64 `json:"budget_used"`
	SystemRemaining    float64 `json:"system_remaining"`
	OffBudgetRemaining float64 `json:"offbudget_remaining"`
}

// ManagerChain: "1.Yönetici > 2.Yönetici > ..." — boş kademeler atılır
func (e *Employee) ManagerChain() string {
	parts := make([]string, 0, 4)
	for _, m := range e.Managers {
		if s := strings.TrimSpace(m); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " > ")
}

// HasManager: verilen yönetici bu satırın zincirinde mi (büyük/küçük harf duyarsız)
func (e *Employee) HasManager(manager string) bool {
	low := strings.ToLower(strings.TrimSpace(manager))
	if low == "" {
		return false
	}
	for _, m := range e.Managers {
		if strings.ToLower(strings.TrimSpace(m)) == low {
			return true
		}
	}
	return false
}

type Dataset struct {
	Rows []*Employee
}

// Recompute: türetilen kolonları tüm veri kümesi için yeniden hesaplar.
// Saf ve idempotenttir; her mutasyondan sonra, herhangi bir okuma yapılmadan
// önce çağrılır. Satır bazlı değil global çalışır ki dışarıdan veri kümesi
// değiştirilse bile tutarlılık korunsun.
func (d *Dataset) Recompute() {
	for _, e := range d.Rows {
		e.NormName = nlu.Canon(e.FullName)
		e.BudgetUsed = e.CurrentSalary * BudgetFactor
		e.SystemRemaining = e.BudgetUsed - e.NewSalary
		e.OffBudgetRemaining = e.BudgetUsed - e.OffBudgetRequested
	}
}

// FindByRef: sicil numarasıyla satır bulur. Mükerrer sicil hata değildir;
// veri sırasına göre ilk eşleşme kazanır.
func (d *Dataset) FindByRef(ref int) (*Employee, bool) {
	for _, e := range d.Rows {
		if e.PersonRef != nil && *e.PersonRef == ref {
			return e, true
		}
	}
	return nil, false
}

// FindByName: normalize edilmiş ad-soyadı, normalize edilmiş metnin içinde
// arar. Eşleşenler arasından en uzun ada sahip olan kazanır — "Ali" kısa adı,
// metinde geçen "Ali Veli"yi gölgelememeli. Eşitlikte veri sırasına göre ilk
// satır kalır.
func (d *Dataset) FindByName(text string) (int, string, bool) {
	normText := nlu.Canon(text)
	bestLen := 0
	bestRef := 0
	bestName := ""
	found := false
	for _, e := range d.Rows {
		if e.NormName == "" || e.PersonRef == nil {
			continue
		}
		if !strings.Contains(normText, e.NormName) {
			continue
		}
		if len(e.NormName) > bestLen {
			bestLen = len(e.NormName)
			bestRef = *e.PersonRef
			bestName = e.FullName
			found = true
		}
	}
	return bestRef, bestName, found
}

// Managers: dört yönetici kolonundaki benzersiz, boş olmayan adlar (sıralı)
func (d *Dataset) Managers() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, e := range d.Rows {
		for _, m := range e.Managers {
			m = strings.TrimSpace(m)
			if m == "" || seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out
}

// FindManagerIn: küçük harfe indirilmiş metinde adı geçen ilk yöneticiyi
// döndürür (orijinal yazımıyla)
func (d *Dataset) FindManagerIn(text string) (string, bool) {
	t := strings.ToLower(text)
	for _, m := range d.Managers() {
		low := strings.ToLower(m)
		if low != "" && strings.Contains(t, low) {
			return m, true
		}
	}
	return "", false
}

// ReportsOf: verilen yöneticiye bağlı satırlar (veri sırasıyla)
func (d *Dataset) ReportsOf(manager string) []*Employee {
	out := make([]*Employee, 0)
	for _, e := range d.Rows {
		if e.HasManager(manager) {
			out = append(out, e)
		}
	}
	return out
}

// RefsOf: satır listesindeki atanmış sicil numaraları (sırayla)
func RefsOf(rows []*Employee) []int {
	refs := make([]int, 0, len(rows))
	for _, e := range rows {
		if e.PersonRef != nil {
			refs = append(refs, *e.PersonRef)
		}
	}
	return refs
}

// FilterByManager: yönetici filtresi; boş filtre tüm satırları döndürür
func (d *Dataset) FilterByManager(manager string) []*Employee {
	if strings.TrimSpace(manager) == "" {
		return d.Rows
	}
	return d.ReportsOf(manager)
}

type Summary struct {
	Used               float64 `json:"used"`
	SystemRemaining    float64 `json:"system_remaining"`
	OffBudgetRemaining float64 `json:"offbudget_remaining"`
	RowCount           int     `json:"row_count"`
}

// Summarize: KPI toplamları (opsiyonel yönetici filtresiyle)
func (d *Dataset) Summarize(manager string) Summary {
	rows := d.FilterByManager(manager)
	var s Summary
	for _, e := range rows {
		s.Used += e.CurrentSalary * BudgetFactor
		s.SystemRemaining += e.SystemRemaining
		s.OffBudgetRemaining += e.OffBudgetRemaining
	}
	s.RowCount = len(rows)
	return s
}
