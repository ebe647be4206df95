package sqlite

import (
	"errors"
	"fmt"

	"github.com/tcarbonell24/workout-tracker-api/internal/repository"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// mapError converts driver failures into repository sentinels. Constraint
// violations (unique, check, foreign key) become ErrConflict with the driver
// message preserved so callers can surface it.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%v: %w", err, repository.ErrConflict)
	}
	return err
}
