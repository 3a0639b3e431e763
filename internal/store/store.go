// Package store holds one reactive state object per entity. A store owns
// an in-memory snapshot of its rows (newest first), a current selection,
// a loading flag, and the message of the last failed operation.
//
// Read operations (FetchAll, Get) absorb failures: the snapshot is left
// untouched, the error is recorded, and the caller gets an empty result.
// Write operations record the failure AND return it. The error slot is
// cleared at the start of every operation, and the server-returned row is
// always what lands in the snapshot.
//
// Stores are constructed once in server wiring and shared by reference;
// unlike the views they serve, they are hit concurrently, so every store
// guards its state with a mutex.
package store
