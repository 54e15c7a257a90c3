package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	// ErrBalanceChanged means the balance no longer covers the request at commit time.
	ErrBalanceChanged = errors.New("balance changed concurrently")
	// ErrDateTaken means another application recorded one of the dates first.
	ErrDateTaken = errors.New("leave date already recorded")
)
