package domain

import (
	"strings"
	"time"
)

// Role tags the two kinds of actors in the system. It replaces the ad hoc
// string comparisons the UI used to scatter around.
type Role string

const (
	RoleProvider Role = "provider"
	RoleReceiver Role = "receiver"
)

// ParseRole maps caller input onto a Role value.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleProvider:
		return RoleProvider, nil
	case RoleReceiver:
		return RoleReceiver, nil
	}
	return "", invalid("role", "must be provider or receiver")
}

// Provider lists surplus food.
type Provider struct {
	ID        int64
	Name      string
	Type      string
	Contact   string
	Address   string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Receiver claims listed food.
type Receiver struct {
	ID        int64
	Name      string
	Contact   string
	Address   string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contact is the public contact card for either role.
type Contact struct {
	Name    string
	Contact string
	Address string
}

// ActorInput carries the caller-supplied fields for creating or replacing an
// actor. Type only applies to providers and is ignored for receivers.
type ActorInput struct {
	Name    string
	Type    string
	Contact string
	Address string
	City    string
}

func (in *ActorInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = strings.TrimSpace(in.Type)
	in.Contact = strings.TrimSpace(in.Contact)
	in.Address = strings.TrimSpace(in.Address)
	in.City = NormalizeCity(in.City)
}

func (in *ActorInput) Validate() error {
	if in.Name == "" {
		return invalid("name", "required")
	}
	if in.Contact == "" {
		return invalid("contact", "required")
	}
	if in.City == "" {
		return invalid("city", "required")
	}
	return nil
}

// ActorPatch is a partial actor update; nil fields keep their stored value.
type ActorPatch struct {
	Name    *string
	Type    *string
	Contact *string
	Address *string
	City    *string
}

func (p *ActorPatch) Empty() bool {
	return p.Name == nil && p.Type == nil && p.Contact == nil &&
		p.Address == nil && p.City == nil
}

func (p *ActorPatch) Normalize() {
	if p.Name != nil {
		*p.Name = strings.TrimSpace(*p.Name)
	}
	if p.Type != nil {
		*p.Type = strings.TrimSpace(*p.Type)
	}
	if p.Contact != nil {
		*p.Contact = strings.TrimSpace(*p.Contact)
	}
	if p.Address != nil {
		*p.Address = strings.TrimSpace(*p.Address)
	}
	if p.City != nil {
		*p.City = NormalizeCity(*p.City)
	}
}

func (p *ActorPatch) Validate() error {
	if p.Empty() {
		return invalid("fields", "no fields to update")
	}
	if p.Name != nil && *p.Name == "" {
		return invalid("name", "must not be blank")
	}
	if p.Contact != nil && *p.Contact == "" {
		return invalid("contact", "must not be blank")
	}
	if p.City != nil && *p.City == "" {
		return invalid("city", "must not be blank")
	}
	return nil
}
