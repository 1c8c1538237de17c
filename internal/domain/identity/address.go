package identity

import "context"

// Address is a saved delivery address.
type Address struct {
	ID           int64  `json:"id,omitempty"`
	Street       string `json:"street" validate:"required"`
	Number       string `json:"number" validate:"required"`
	Neighborhood string `json:"neighborhood" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required,len=2"`
	Zip          string `json:"zip" validate:"required"`
	Complement   string `json:"complement,omitempty"`
}

// AddressBook is the address surface of the store API.
type AddressBook interface {
	ListAddresses(ctx context.Context) ([]Address, error)
	CreateAddress(ctx context.Context, a Address) (*Address, error)
	UpdateAddress(ctx context.Context, a Address) (*Address, error)
	DeleteAddress(ctx context.Context, id int64) error
}
