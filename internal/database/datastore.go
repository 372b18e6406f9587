package database

// DataStore is the capability set every persistence backend provides:
// get-or-create list, insert, update by key, delete by key and list-all.
// The relational Repository and the JSON file store both implement it.
type DataStore interface {
	ListRepository
	TaskRepository
}
