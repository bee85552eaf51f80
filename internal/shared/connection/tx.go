package connection

import (
	"database/sql"

	"gorm.io/gorm"
)

// BindTx returns a gorm handle whose statements run on the caller's
// transaction instead of the pool, so everything issued through it commits
// or rolls back with tx. gorm cannot open a nested transaction on a *sql.Tx
// and falls back to running its write callbacks directly on it.
func BindTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	session := db.Session(&gorm.Session{NewDB: true})
	session.ConnPool = tx
	return session
}
