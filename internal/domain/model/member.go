package model

import (
	"time"
)

// Member is a roster member. JSON field names keep the casing the API has
// always exposed.
type Member struct {
	ID           string    `json:"id"`
	Nome         string    `json:"Nome"`
	Sexo         string    `json:"Sexo"`
	Idade        int       `json:"Idade"`
	Endereco     string    `json:"Endereco,omitempty"`
	Email        string    `json:"Email,omitempty"`
	Telefone     string    `json:"Telefone,omitempty"`
	DataCadastro time.Time `json:"DataCadastro"`
}
