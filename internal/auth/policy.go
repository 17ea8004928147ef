package auth

// Role is the access level assigned to a user account.
type Role string

const (
	RoleGuest        Role = "Guest"
	RoleReceptionist Role = "Receptionist"
	RoleHousekeeping Role = "Housekeeping"
	RoleAdmin        Role = "Admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleReceptionist, RoleHousekeeping, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role may operate the reception desk.
func (r Role) IsStaff() bool {
	return r == RoleReceptionist || r == RoleAdmin
}

// Actor is the authenticated identity performing a request.
type Actor struct {
	ID    string
	Email string
	Role  Role
}

// CanAccessOwned reports whether the actor may read or cancel a record
// owned by ownerID. Owners always may; reception staff and admins may
// act on any guest's records.
func (a Actor) CanAccessOwned(ownerID string) bool {
	return a.ID == ownerID || a.Role.IsStaff()
}

// CanViewInvoice reports whether the actor may read an invoice owned by
// ownerID. Any staff role (everything except Guest) may view any invoice.
func (a Actor) CanViewInvoice(ownerID string) bool {
	return a.ID == ownerID || a.Role != RoleGuest
}
