package handler

const (
	errInternalServer     = "Internal server error"
	errServiceUnavailable = "Service unavailable"
	errEmailTaken         = "Email already registered"
	errInvalidCredentials = "Invalid email or password"
	errItemNotFound       = "Item not found"
	errInvalidItemID      = "Invalid item id"
	errNoFieldsProvided   = "No fields to update"
)
