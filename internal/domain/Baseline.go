package domain

// Baseline é a referência fixa (pedidos, receita) de uma loja para uma janela de 30 dias
type Baseline struct {
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}
