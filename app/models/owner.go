package models

// OwnerContext identifies who a cart or order belongs to: an
// authenticated user or an anonymous guest session. Exactly one of the
// two fields is set; a zero OwnerContext means "nobody", and cart reads
// for it resolve to an empty cart.
type OwnerContext struct {
	UserID    string
	SessionID string
}

func OwnerUser(userID string) OwnerContext {
	return OwnerContext{UserID: userID}
}

func OwnerGuest(sessionID string) OwnerContext {
	return OwnerContext{SessionID: sessionID}
}

func (o OwnerContext) IsUser() bool {
	return o.UserID != ""
}

func (o OwnerContext) IsEmpty() bool {
	return o.UserID == "" && o.SessionID == ""
}
