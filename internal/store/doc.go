// Package store defines the persistence gateway consumed by the library
// service. The service depends only on the DatabaseService interface; the
// package also ships an in-memory implementation for the composition root
// and for tests. Real persistence mechanics live outside this repository.
package store
