package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Erros de integridade traduzidos dos códigos do Postgres para que os
// usecases não precisem inspecionar pq.Error diretamente
var (
	// ErrDuplicateTarget indica violação da unicidade (vendedor, mês)
	ErrDuplicateTarget = errors.New("já existe uma meta para este vendedor neste mês")

	// ErrPackageInUse indica que o pacote é referenciado por vendas e não pode ser removido
	ErrPackageInUse = errors.New("pacote em uso por vendas não pode ser removido")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}
