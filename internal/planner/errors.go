package planner

import "errors"

var ErrUnknownAction = errors.New("unknown action")
