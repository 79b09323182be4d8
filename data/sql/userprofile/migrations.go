package userprofile

import (
	"embed"

	"github.com/upservice/user-profile-service/pkg/sql"
)

var Migrations = sql.FSMigrations(migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
