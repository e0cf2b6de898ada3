package presentation

import (
	"github.com/zjrosen/roster/internal/domain/roster"
)

// RegisterDTO represents a register for presentation
type RegisterDTO struct {
	Capacity int       `json:"capacity"`
	Size     int       `json:"size"`
	Names    []NameDTO `json:"names"` // always present, empty when the register is empty
}

// NameDTO represents a single register entry
type NameDTO struct {
	FirstName  string `json:"first_name"`
	FamilyName string `json:"family_name"`
}

// FromDomainName converts a domain name to a DTO
func FromDomainName(n roster.Name) NameDTO {
	return NameDTO{
		FirstName:  n.FirstName(),
		FamilyName: n.FamilyName(),
	}
}

// FromDomainRegister converts a register to a DTO
func FromDomainRegister(reg roster.RegisterProvider) RegisterDTO {
	names := make([]NameDTO, 0, reg.Size())
	for n := range reg.Names() {
		names = append(names, FromDomainName(n))
	}

	return RegisterDTO{
		Capacity: reg.Capacity(),
		Size:     reg.Size(),
		Names:    names,
	}
}
