package main

import "errors"

var (
	errWrongArgs    = errors.New("wrong number of arguments")
	errInvalidIndex = errors.New("key index must be a non-negative integer")
	errNoSignKey    = errors.New("token signing key is not configured (AUTH_TOKEN_SIGN_KEY)")
)
