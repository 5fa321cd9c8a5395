// Package retry provides exponential backoff retry logic for transient failures.
//
// [Do] retries an operation with a configurable attempt budget, initial delay
// and maximum delay. Errors wrapped with [Fatal] stop the loop immediately.
package retry
