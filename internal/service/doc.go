// Package service implements the library orchestration layer. It composes
// the domain validators with the database, review, and notification gateways
// and is the only place where lifecycle rules (register/add/borrow/return)
// and the review notification workflow are enforced.
package service
