package v14

import (
	"encoding/xml"

	"github.com/StinkyLord/sbom-exchange/internal/model"
	"github.com/StinkyLord/sbom-exchange/internal/xmlio"
)

const (
	orgNameTag    = "name"
	orgURLTag     = "url"
	orgContactTag = "contact"
	emailTag      = "email"
	phoneTag      = "phone"
)

// organizationalEntity is written under a caller-supplied tag (provider,
// supplier, ...). Its url and contact children repeat without a wrapper
// element, per the schema.
type organizationalEntity struct {
	Name    *string   `json:"name,omitempty"`
	URL     *[]string `json:"url,omitempty"`
	Contact *contacts `json:"contact,omitempty"`
}

func organizationalEntityFromModel(me model.OrganizationalEntity) organizationalEntity {
	oe := organizationalEntity{Name: fromNormalized(me.Name)}
	if me.URLs != nil {
		urls := make([]string, 0, len(*me.URLs))
		for _, u := range *me.URLs {
			urls = append(urls, u.String())
		}
		oe.URL = &urls
	}
	if me.Contacts != nil {
		cs := contactsFromModel(*me.Contacts)
		oe.Contact = &cs
	}
	return oe
}

func (oe organizationalEntity) toModel() model.OrganizationalEntity {
	me := model.OrganizationalEntity{Name: toNormalized(oe.Name)}
	if oe.URL != nil {
		urls := make([]model.URI, 0, len(*oe.URL))
		for _, u := range *oe.URL {
			urls = append(urls, model.URI(u))
		}
		me.URLs = &urls
	}
	if oe.Contact != nil {
		cs := oe.Contact.toModel()
		me.Contacts = &cs
	}
	return me
}

func (oe organizationalEntity) writeXML(w *xmlio.Writer, tag string) error {
	if err := w.Start(tag); err != nil {
		return err
	}
	if oe.Name != nil {
		if err := w.SimpleTag(orgNameTag, *oe.Name); err != nil {
			return err
		}
	}
	if oe.URL != nil {
		for _, u := range *oe.URL {
			if err := w.SimpleTag(orgURLTag, u); err != nil {
				return err
			}
		}
	}
	if oe.Contact != nil {
		for _, c := range *oe.Contact {
			if err := c.writeXML(w, orgContactTag); err != nil {
				return err
			}
		}
	}
	return w.End(tag)
}

func decodeOrganizationalEntity(r *xmlio.Reader, start xml.StartElement) (organizationalEntity, error) {
	var oe organizationalEntity
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return oe, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case orgNameTag:
				v, err := r.Text(t)
				if err != nil {
					return oe, err
				}
				oe.Name = &v
			case orgURLTag:
				v, err := r.Text(t)
				if err != nil {
					return oe, err
				}
				if oe.URL == nil {
					oe.URL = &[]string{}
				}
				*oe.URL = append(*oe.URL, v)
			case orgContactTag:
				c, err := decodeContact(r, t)
				if err != nil {
					return oe, err
				}
				if oe.Contact == nil {
					oe.Contact = &contacts{}
				}
				*oe.Contact = append(*oe.Contact, c)
			default:
				if err := r.Skip(t); err != nil {
					return oe, err
				}
			}
		case xml.EndElement:
			return oe, nil
		}
	}
}

type contacts []organizationalContact

type organizationalContact struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

func contactsFromModel(mc model.Contacts) contacts {
	cs := make(contacts, 0, len(mc))
	for _, c := range mc {
		cs = append(cs, organizationalContact{
			Name:  fromNormalized(c.Name),
			Email: fromNormalized(c.Email),
			Phone: fromNormalized(c.Phone),
		})
	}
	return cs
}

func (cs contacts) toModel() model.Contacts {
	mc := make(model.Contacts, 0, len(cs))
	for _, c := range cs {
		mc = append(mc, model.OrganizationalContact{
			Name:  toNormalized(c.Name),
			Email: toNormalized(c.Email),
			Phone: toNormalized(c.Phone),
		})
	}
	return mc
}

func (c organizationalContact) writeXML(w *xmlio.Writer, tag string) error {
	if err := w.Start(tag); err != nil {
		return err
	}
	if c.Name != nil {
		if err := w.SimpleTag(orgNameTag, *c.Name); err != nil {
			return err
		}
	}
	if c.Email != nil {
		if err := w.SimpleTag(emailTag, *c.Email); err != nil {
			return err
		}
	}
	if c.Phone != nil {
		if err := w.SimpleTag(phoneTag, *c.Phone); err != nil {
			return err
		}
	}
	return w.End(tag)
}

func decodeContact(r *xmlio.Reader, start xml.StartElement) (organizationalContact, error) {
	var c organizationalContact
	for {
		tok, err := r.Token(start.Name.Local)
		if err != nil {
			return c, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case orgNameTag:
				v, err := r.Text(t)
				if err != nil {
					return c, err
				}
				c.Name = &v
			case emailTag:
				v, err := r.Text(t)
				if err != nil {
					return c, err
				}
				c.Email = &v
			case phoneTag:
				v, err := r.Text(t)
				if err != nil {
					return c, err
				}
				c.Phone = &v
			default:
				if err := r.Skip(t); err != nil {
					return c, err
				}
			}
		case xml.EndElement:
			return c, nil
		}
	}
}
