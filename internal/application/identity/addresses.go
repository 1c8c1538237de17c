package identity

import (
	"context"

	"github.com/boardsandcats/storefront/internal/domain/identity"
	"github.com/boardsandcats/storefront/internal/domain/shared"
)

// AddressService guards the backend address book behind the auth level.
type AddressService struct {
	book identity.AddressBook
	auth *Service
}

// NewAddressService creates an address service.
func NewAddressService(book identity.AddressBook, auth *Service) *AddressService {
	return &AddressService{book: book, auth: auth}
}

// List returns the saved delivery addresses.
func (s *AddressService) List(ctx context.Context) ([]identity.Address, error) {
	if !s.auth.Authenticated() {
		return nil, shared.ErrNotAuthenticated
	}
	return s.book.ListAddresses(ctx)
}

// Create saves a new delivery address.
func (s *AddressService) Create(ctx context.Context, a identity.Address) (*identity.Address, error) {
	if !s.auth.Authenticated() {
		return nil, shared.ErrNotAuthenticated
	}
	if err := s.auth.validate.Struct(a); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	return s.book.CreateAddress(ctx, a)
}

// Update changes an existing delivery address.
func (s *AddressService) Update(ctx context.Context, a identity.Address) (*identity.Address, error) {
	if !s.auth.Authenticated() {
		return nil, shared.ErrNotAuthenticated
	}
	if a.ID <= 0 {
		return nil, shared.ErrInvalidInput
	}
	if err := s.auth.validate.Struct(a); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	return s.book.UpdateAddress(ctx, a)
}

// Delete removes a delivery address.
func (s *AddressService) Delete(ctx context.Context, id int64) error {
	if !s.auth.Authenticated() {
		return shared.ErrNotAuthenticated
	}
	if id <= 0 {
		return shared.ErrInvalidInput
	}
	return s.book.DeleteAddress(ctx, id)
}
