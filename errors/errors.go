// Package errors holds the sentinels for callback protocol violations: cases where a resource's
// callback returned a shape inconsistent with its contract (§7 of the decision-engine design).
// Each terminates the request with a synthetic 500 carrying the sentinel's message as the body.
package errors

import "errors"

var (
	// ErrNoCreatePath is raised when post-is-create? returns true but create-path is nil.
	ErrNoCreatePath = errors.New("post-is-create? returned true, but create-path is nil")

	// ErrProcessPostFailed is raised when process-post returns nil or false, which per the
	// resolved Open Question (§9) is treated as an explicit failure rather than a 204.
	ErrProcessPostFailed = errors.New("process-post returned nil or false")

	// ErrDeleteFailed is raised when delete-resource returns false.
	ErrDeleteFailed = errors.New("delete-resource returned false")
)
