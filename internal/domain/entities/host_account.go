package entities

// HostAccount is an identity on a hosting provider, either a user or an organisation.
type HostAccount struct {
	Login string
}
