// Package ddlgen generates data-definition statements for records.
//
// A record describes its fields once, and ddlgen produces dialect-correct
// statements to create a database, create a table for the record, or drop
// a table. Supported dialects are listed in the dialect package.
//
// # Records
//
// A record implements Interface, usually by embedding Schema:
//
//	type User struct{ ddlgen.Schema }
//
//	func (User) Fields() []ddlgen.Field {
//	    return []ddlgen.Field{
//	        field.Int("id"),
//	        field.String("name").Nillable(),
//	    }
//	}
//
// # Generating Statements
//
// Generate is a pure function returning a fresh statement:
//
//	stmt, err := ddlgen.Generate(User{}, dialect.Access, ddlgen.CreateTable{
//	    Table:      "users",
//	    PrimaryKey: "id",
//	    Nullable:   []bool{false, true},
//	})
//	// create table users (id int primary key not null,name text);
//
// Generator wraps the same operations with a stateful API holding the
// operated record, the dialect and the last generated statement:
//
//	g, err := ddlgen.New(User{}, dialect.SQLServer)
//	if err != nil {
//	    return err
//	}
//	if err := g.CreateTable("users", "id", []bool{false, true}); err != nil {
//	    return err
//	}
//	fmt.Println(g.Statement())
//
// # Errors
//
// Errors can be checked with errors.Is against the sentinel errors
// (ErrUnsupportedType, ErrUnsupportedOperation, ErrCountMismatch,
// ErrIntrospection, ErrNotSupportedType, ErrUnsupportedDialect) or with
// the IsX helpers.
package ddlgen
