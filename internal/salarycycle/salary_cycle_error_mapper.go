package salarycycle

import (
	"errors"
	"strings"

	salarycycleerrors "go-payroll/internal/salarycycle/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueCyclePeriod = "uq_salary_cycles_period"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salarycycleerrors.ErrCycleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == uniqueCyclePeriod {
		return salarycycleerrors.ErrCycleAlreadyLocked
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueCyclePeriod) {
		return salarycycleerrors.ErrCycleAlreadyLocked
	}
	if strings.Contains(errMsg, "unique constraint failed: salary_cycles.year") {
		return salarycycleerrors.ErrCycleAlreadyLocked
	}

	return err
}
