package domain

import "errors"

// DocumentFields are the identity fields read from a photographed document.
// Any of them may be empty when the collaborator could not read it.
type DocumentFields struct {
	FullName    string `json:"fullName"`
	CPF         string `json:"cpf"`
	DateOfBirth string `json:"dateOfBirth"`
}

var (
	ErrExtractionUnavailable = errors.New("document extraction is not configured")
	ErrExtractionFailed      = errors.New("Não foi possível extrair as informações da imagem.")
	ErrUnsupportedImage      = errors.New("file is not a supported image")
)
