// Package movies is the record store for the catalog: the Movie record,
// its JSON mapping, partial-update patches, the query filter builder and
// a pgx-backed Store over the movies table.
package movies
