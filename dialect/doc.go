// Package dialect describes the database dialects supported by ddlgen.
//
// The set of dialects is closed:
//
//	dialect.SQLServer = "sqlserver" // Microsoft SQL Server
//	dialect.SQLite    = "sqlite"    // SQLite (embedded file engine)
//	dialect.Access    = "access"    // Microsoft Access 2003 (legacy desktop engine)
//
// Every dialect-specific decision lives in a single capability table:
// the column type for each canonical field type, whether databases can be
// created through SQL text, and the database/sql driver name used to
// execute statements. Adding a dialect is one entry in that table.
//
//	caps, ok := dialect.Lookup(dialect.SQLite)
//	if ok {
//	    ct, _ := caps.ColumnType(field.TypeString) // "text"
//	}
//
// User input (flags, config files) goes through Parse, which accepts
// aliases such as "mssql" or "sqlite3":
//
//	name, ok := dialect.Parse("MSSQL") // "sqlserver", true
//
// # Driver Interface
//
// Statements are executed through the Driver interface, implemented by
// dialect/sql:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// # Sub-packages
//
//   - dialect/sql: database/sql wrapper for executing generated statements
//   - dialect/sql/schema: table validation and statement execution
package dialect
