package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/hotelbook/internal/dbx"
	"github.com/dmitrijs2005/hotelbook/internal/server/repositories/hotels"
	"github.com/dmitrijs2005/hotelbook/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DB handle or transaction
// and applies schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Hotels(db dbx.DBTX) hotels.Repository
}
