package model

// OrganizationalEntity identifies an organization such as a supplier or
// service provider.
type OrganizationalEntity struct {
	Name     *NormalizedString
	URLs     *[]URI
	Contacts *Contacts
}

// Contacts is an ordered collection of OrganizationalContact records.
type Contacts []OrganizationalContact

// OrganizationalContact identifies an individual contact at an
// organization. All fields are optional.
type OrganizationalContact struct {
	Name  *NormalizedString
	Email *NormalizedString
	Phone *NormalizedString
}
