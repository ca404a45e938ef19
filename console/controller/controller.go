// Package controller holds the page controllers of the console front end.
// Each page owns its collection, pagination index, dialog and selection state
// exclusively; nothing is shared across pages and re-entering a page always
// loads fresh.
package controller

// Dialog identifies which modal a page currently has open.
type Dialog int

const (
	DialogNone Dialog = iota
	DialogAdd
	DialogEdit
	DialogConfirmDelete
)

const defaultPageSize = 10
