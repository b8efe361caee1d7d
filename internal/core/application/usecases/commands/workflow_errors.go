package commands

import (
	"errors"
	"fmt"
)

// ErrAuditWrite marks a movement that could not be written. It never aborts the
// order change that caused it.
var ErrAuditWrite = errors.New("status movement could not be recorded")

// Workflow stages reported by PersistenceError.
const (
	StageBegin       = "opening transaction"
	StageLoading     = "loading order"
	StageHeader      = "persisting header"
	StageLineItems   = "persisting line items"
	StageRecomputing = "recomputing total"
	StageAudit       = "recording movement"
	StageCommit      = "committing"
	StageDeleting    = "deleting order"
)

// PersistenceError is a store failure during the write phase. The transaction
// is rolled back and nothing of the submission is kept.
type PersistenceError struct {
	Stage string
	Cause error
}

func newPersistenceError(stage string, cause error) *PersistenceError {
	return &PersistenceError{Stage: stage, Cause: cause}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed while %s: %v", e.Stage, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

func isAuditWrite(err error) bool {
	return errors.Is(err, ErrAuditWrite)
}
