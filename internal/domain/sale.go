package domain

import "time"

// SalesRecord representa uma transação do livro-razão de vendas (tabela sales_db)
type SalesRecord struct {
	Date            time.Time `json:"date"`
	CustomerID      string    `json:"customer_id"`
	Gender          int16     `json:"gender"`
	Age             int16     `json:"age"`
	ProductCategory string    `json:"product_category"`
	Quantity        float64   `json:"quantity"`
	PricePerUnit    float64   `json:"price_per_unit"`
	TotalAmount     float64   `json:"total_amount"`
}

// DailyTotal é a receita agregada de um dia, somando todas as categorias
type DailyTotal struct {
	Date        time.Time `json:"date"`
	TotalAmount float64   `json:"total_amount"`
}

// CategoryMonthlyTotal é a receita de uma categoria em um mês
type CategoryMonthlyTotal struct {
	Month           time.Time `json:"month"`
	ProductCategory string    `json:"product_category"`
	TotalAmount     float64   `json:"total_amount"`
}

// DailyTotalsValues extrai os valores de uma série diária, na ordem recebida
func DailyTotalsValues(totals []DailyTotal) []float64 {
	values := make([]float64, len(totals))
	for i, t := range totals {
		values[i] = t.TotalAmount
	}
	return values
}

// MonthlyCategoryReport são os totais de um mês (formato AAAA-MM) por categoria
type MonthlyCategoryReport struct {
	Month       string             `json:"month"`
	Categories  map[string]float64 `json:"categories"`
	TotalAmount float64            `json:"total_amount"`
}
