package domain

import "github.com/spf13/cast"

// ContactSource is anything that can describe a person to ship from or to.
type ContactSource interface {
	PersonName() string
	PhoneNumber() string
	CompanyName() string
}

// Contact identifies the person responsible for one end of a shipment.
type Contact struct {
	Name    string `json:"person_name"`
	Phone   string `json:"phone_number"`
	Company string `json:"company_name,omitempty"`
}

// PersonName implements ContactSource.
func (c Contact) PersonName() string { return c.Name }

// PhoneNumber implements ContactSource.
func (c Contact) PhoneNumber() string { return c.Phone }

// CompanyName implements ContactSource.
func (c Contact) CompanyName() string { return c.Company }

// mapContact reads contact fields from a keyed map.
type mapContact map[string]any

func (m mapContact) PersonName() string  { return cast.ToString(m["person_name"]) }
func (m mapContact) PhoneNumber() string { return cast.ToString(m["phone_number"]) }
func (m mapContact) CompanyName() string { return cast.ToString(m["company_name"]) }

// ContactFrom adapts a Contact, a keyed map or any ContactSource into a Contact.
// Unsupported values yield an empty Contact.
func ContactFrom(v any) Contact {
	var src ContactSource
	switch t := v.(type) {
	case Contact:
		return t
	case *Contact:
		if t == nil {
			return Contact{}
		}
		return *t
	case map[string]any:
		src = mapContact(t)
	case map[string]string:
		m := make(mapContact, len(t))
		for k, s := range t {
			m[k] = s
		}
		src = m
	case ContactSource:
		src = t
	default:
		return Contact{}
	}

	return Contact{
		Name:    src.PersonName(),
		Phone:   src.PhoneNumber(),
		Company: src.CompanyName(),
	}
}
