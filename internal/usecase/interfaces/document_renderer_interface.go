package interfaces

import "invoicer/internal/domain/entities"

// IDocumentRenderer produces the printable form of an invoice.
type IDocumentRenderer interface {
	Render(inv entities.Invoice) ([]byte, error)
	ContentType() string
}
