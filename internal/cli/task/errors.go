package task

import "errors"

var errNothingToEdit = errors.New("nothing to edit")
