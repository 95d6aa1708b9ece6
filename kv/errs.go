package kv

import (
	"errors"

	"github.com/signadot/cavatina/list"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrNotAMember = list.ErrNotMember
)
