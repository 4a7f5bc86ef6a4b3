package ledger

// Operation - dört tanımlı işlem etiketi. Etiketler kullanıcıya gösterilen
// Türkçe metinlerdir ve geçmiş kayıtlarında da aynen saklanır.
type Operation string

const (
	OpSubtractSystem    Operation = "Bütçeden Düş (Sistem Kalan)"
	OpAddSystem         Operation = "Bütçeye Ekle (Sistem Kalan)"
	OpSubtractOffBudget Operation = "Bütçeden Düş (Bütçe Dışı Kalan)"
	OpAddOffBudget      Operation = "Bütçeye Ekle (Bütçe Dışı Kalan)"
)

const (
	PoolSystem    = "Sistem"
	PoolOffBudget = "Bütçe Dışı"
)

// Valid: etiket tanımlı dört işlemden biri mi
func (op Operation) Valid() bool {
	switch op {
	case OpSubtractSystem, OpAddSystem, OpSubtractOffBudget, OpAddOffBudget:
		return true
	}
	return false
}

// Pool: işlemin hedef havuzu
func (op Operation) Pool() string {
	switch op {
	case OpSubtractOffBudget, OpAddOffBudget:
		return PoolOffBudget
	}
	return PoolSystem
}

// VerbPhrase: sesli geri bildirimde kullanılan fiil öbeği
func (op Operation) VerbPhrase() string {
	switch op {
	case OpSubtractSystem:
		return "sistem kalandan düşüldü"
	case OpAddSystem:
		return "sistem kalana eklendi"
	case OpSubtractOffBudget:
		return "bütçe dışı kalandan düşüldü"
	case OpAddOffBudget:
		return "bütçe dışı kalana eklendi"
	}
	return ""
}
