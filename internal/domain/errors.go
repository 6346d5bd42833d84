package domain

import "errors"

var (
	ErrBadRequestFormat   = errors.New("request needs at least 4 pipe-separated fields")
	ErrNoBranchesSelected = errors.New("no branches selected")
	ErrWrongDialogStep    = errors.New("input does not belong to the current dialog step")
	ErrUserNotFound       = errors.New("user not found")
)
