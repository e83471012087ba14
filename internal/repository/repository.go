// Package repository holds the persistence contracts of the console: the audit trail and
// export records. Implementations live in subpackages (postgres).
package repository

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a page of rows plus the total row count.
type PageResult[T any] struct {
	Items []T
	Total int
}
