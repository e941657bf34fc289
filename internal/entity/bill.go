package entity

// BillSummary: proposição resumida de um autor.
type BillSummary struct {
	ID          int64  `json:"id"`
	TypeAcronym string `json:"siglaTipo"`
	Number      string `json:"numero"`
	Year        string `json:"ano"`
	Summary     string `json:"ementa"`
	PresentedAt string `json:"dataApresentacao,omitempty"`
}
