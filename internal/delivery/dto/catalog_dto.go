package dto

// CatalogRequest creates a reference-catalogue row. The name is normalized
// (lower-cased, accent-folded) before it is stored or compared.
type CatalogRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CatalogResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
