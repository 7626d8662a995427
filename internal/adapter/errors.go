package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("asset host unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrUploadRejected      = errors.New("upload rejected by asset host")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("asset host internal error")

	ErrEmptyPayload         = errors.New("image payload is empty")
	ErrInvalidDataURI       = errors.New("invalid image data URI")
	ErrUnsupportedAssetHost = errors.New("unsupported asset host")
	ErrMissingAssetURL      = errors.New("asset host returned no url")
)
