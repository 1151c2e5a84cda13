package incident

import "github.com/clarkyangjw/schedulease-web/pkg/dbmetrics"

// DBExecutor интерфейс исполнителя запросов.
// Ему удовлетворяют *sql.DB и *dbmetrics.DB.
type DBExecutor = dbmetrics.DBExecutor
