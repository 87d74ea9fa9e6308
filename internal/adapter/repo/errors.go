package repo

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"

	"foodbridge/internal/domain"
)

// MySQL error numbers the repositories care about.
const (
	mysqlErrForeignKey = 1452
	mysqlErrDataRange  = 1264
)

// classify maps driver-level failures onto the domain error taxonomy.
// Transport and handshake failures become ErrUnavailable so callers can tell
// "the database said no" apart from "the database is gone".
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrForeignKey:
			return &domain.ValidationError{Field: "reference", Reason: "referenced actor does not exist"}
		case mysqlErrDataRange:
			return &domain.ValidationError{Field: "quantity", Reason: "out of range"}
		}
		return err
	}
	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return err
}

// fkViolation rebinds a foreign key failure to the field the operation
// actually referenced.
func fkViolation(err error, field string) error {
	classified := classify(err)
	var ve *domain.ValidationError
	if errors.As(classified, &ve) && ve.Field == "reference" {
		return &domain.ValidationError{Field: field, Reason: "referenced record does not exist"}
	}
	return classified
}
