package common

const (
	ErrInvalidParams = "Invalid Params"
)
