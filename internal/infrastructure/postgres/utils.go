package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de error de PostgreSQL que los repositorios traducen a errores
// de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation detecta la violación de una constraint única, por
// ejemplo el código de producto repetido dentro de una tienda.
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == codeUniqueViolation
}

// isForeignKeyViolation detecta una referencia a una fila inexistente,
// por ejemplo un componente de bundle apuntando a un producto borrado.
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == codeForeignKeyViolation
}
