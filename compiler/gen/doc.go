// Package gen renders SQL scripts for loaded tables.
//
// One script is written per dialect, named after the dialect
// (sqlserver.sql, sqlite.sql, access.sql). Scripts are rendered in
// parallel and contain, in order:
//
//   - an optional create database statement, for dialects supporting it
//   - optional drop table statements, in reverse table order
//   - one create table statement per table
//
// Usage:
//
//	schemas, err := load.LoadFile("schema.yaml")
//	if err != nil {
//	    return err
//	}
//	err = gen.Generate(ctx, schemas,
//	    gen.WithTarget("migrations"),
//	    gen.WithDialects("sqlserver", "sqlite"),
//	    gen.WithDropTables(),
//	)
//
// Watch keeps the scripts of a schema file up to date, regenerating them
// when the file changes.
package gen
