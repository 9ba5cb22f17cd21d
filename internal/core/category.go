package core

// Category is a closed set of labels, partitioned by transaction type.
// The sets mirror the ones users see in the entry form; a transaction
// never carries a category from the other partition.
type Category string

const (
	Moradia       Category = "Moradia"
	Transporte    Category = "Transporte"
	Alimentacao   Category = "Alimentação"
	Saude         Category = "Saúde"
	Educacao      Category = "Educação"
	Lazer         Category = "Lazer"
	Vestuario     Category = "Vestuário"
	OutrasDesp    Category = "Outras Despesas"
	Salario       Category = "Salário"
	Investimentos Category = "Investimentos"
	OutrasRec     Category = "Outras Receitas"
)

var (
	expenseCategories = []Category{
		Moradia, Transporte, Alimentacao, Saude,
		Educacao, Lazer, Vestuario, OutrasDesp,
	}
	incomeCategories = []Category{Salario, Investimentos, OutrasRec}
)

// CategoriesFor returns the allowed categories for a transaction type.
// The returned slice is a copy; callers may reorder it freely.
func CategoriesFor(t TransactionType) []Category {
	var src []Category
	switch t {
	case Expense:
		src = expenseCategories
	case Income:
		src = incomeCategories
	default:
		return nil
	}
	out := make([]Category, len(src))
	copy(out, src)
	return out
}

// Allows reports whether c belongs to the category set of type t.
func (t TransactionType) Allows(c Category) bool {
	var src []Category
	switch t {
	case Expense:
		src = expenseCategories
	case Income:
		src = incomeCategories
	default:
		return false
	}
	for _, v := range src {
		if v == c {
			return true
		}
	}
	return false
}
