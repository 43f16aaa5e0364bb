package psqlbuilder

import "github.com/Masterminds/squirrel"

// Построитель запросов с PostgreSQL-плейсхолдерами ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT с $N плейсхолдерами
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert создает INSERT с $N плейсхолдерами
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update создает UPDATE с $N плейсхолдерами
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete создает DELETE с $N плейсхолдерами
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
