package models

// List is a named, ordered collection of tasks.
// Lists stored as files have no numeric ID and are addressed by name.
type List struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
