package model

import "errors"

var (
	ErrPartNotFound    = errors.New("part not found")    // 404
	ErrCarNotFound     = errors.New("car not found")     // 404
	ErrInvalidArgument = errors.New("invalid argument")  // 400
	ErrInvalidDataset  = errors.New("invalid dataset")
)
