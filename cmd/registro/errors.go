package main

import "errors"

var errUnknownDriver = errors.New("unknown storage driver")
