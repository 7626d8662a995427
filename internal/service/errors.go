package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNilAssetHost          = errors.New("asset host is nil")
)
