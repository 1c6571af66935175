package collection

const (
	ErrInvalidRequestBody = "Invalid Request Body"
	ErrTokenNotInWallet   = "Token not found in your wallet."
)
