package repository

// Package repository contains data access abstractions for the catalog tables.
// Implementations live in subpackages (e.g., sqldb) and contain no business logic.

// NullParam is bound when a request carries no usable value for a parameter.
// SQL NULL never compares equal, so the statement matches no row.
var NullParam any
