package domain

import "context"

// Service operations that take a Type only act on documents of that
// type; an ID of the other type reads as not found so the invoice and
// quotation capabilities stay disjoint.
type Service interface {
	List(ctx context.Context, docType Type) ([]Document, error)
	Get(ctx context.Context, docType Type, id string) (Document, error)
	Create(ctx context.Context, doc Document) (Document, error)
	Update(ctx context.Context, docType Type, id string, doc Document) (Document, error)
	Delete(ctx context.Context, docType Type, id string) error
	NextNumber(ctx context.Context, docType Type) (string, error)
}
