// Package manager checks for and creates the catalog database on a
// PostgreSQL server. Identifiers are quoted with pgx.Identifier.Sanitize,
// so names containing spaces or quotes are safe.
//
//	mgr := manager.New()
//	created, err := manager.Ensure(ctx, mgr, conn, "movies_db")
package manager
