// Package domain contains the core business entities, validation rules, and
// domain errors of the library service. It represents the heart of the
// system, independent of any specific infrastructure or delivery mechanism.
package domain
