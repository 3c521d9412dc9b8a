// Package objid declares a typed Go constant for every active identifier of
// the object table, one type per namespace. Values never change once
// shipped; retired identifiers have no constant but keep their value
// reserved.
package objid

//go:generate go run ../../cmd/objdefs export --format go --output objid_gen.go
