package handler

// User-facing error messages. Handlers and tests both reference these.
const (
	// Generic messages
	ErrMsgGenericServerError  = "Internal server error"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgEndpointNotFound    = "Endpoint not found"
	ErrMsgTooManyRequests     = "Too many requests. Please try again later."
	ErrMsgRequestTooLarge     = "Request body too large"

	// Request parsing
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Gameplay lookups
	ErrMsgPlayerNotFound     = "Player not found"
	ErrMsgInventoryNotFound  = "Inventory not found"
	ErrMsgWeaponNotFound     = "Weapon not found"
	ErrMsgWeaponNotFoundName = "Weapon '%s' not found"
)

// Success messages for API responses
const (
	MsgPlayerCreated = "Player created successfully"
	MsgLevelUpFormat = "Player leveled up to level %d"
)

// Route parameters
const (
	ParamPlayerID = "playerId"
)
