package postgres

import (
	"database/sql"
)

// Queryer é o subconjunto de operações que os repositórios usam.
// *sql.DB (e portanto Connection) satisfaz a interface diretamente.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
