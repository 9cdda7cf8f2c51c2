// Package schema creates and drops the tables of records in a database.
//
// A Table pairs a record with the table name, primary key and nullability
// flags of its create table statement. Tables are validated for a dialect
// before any statement is executed:
//
//	result := schema.ValidateSchema(tables, dialect.SQLServer)
//	if result.HasErrors() {
//		return errors.New(result.String())
//	}
//
// Migrate executes the statements through a dialect.Driver. Create and
// Drop run in a single transaction. CreateDatabase runs outside of it.
//
//	m, err := schema.NewMigrate(drv, schema.WithDropTable(true))
//	if err != nil {
//		return err
//	}
//	if err := m.Create(ctx, tables...); err != nil {
//		return err
//	}
//
// Hooks wrap the creation, and may inspect or modify the tables:
//
//	schema.WithHooks(func(next schema.Creator) schema.Creator {
//		return schema.CreateFunc(func(ctx context.Context, tables ...*schema.Table) error {
//			slog.Info("creating tables", "count", len(tables))
//			return next.Create(ctx, tables...)
//		})
//	})
package schema
