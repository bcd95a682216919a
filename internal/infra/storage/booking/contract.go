package booking

import "github.com/Agentronic/booking-agent-v2/pkg/txmanager"

// Переиспользуем интерфейс исполнителя запросов из txmanager:
// репозиторий работает одинаково поверх *sql.DB и *sql.Tx
type DBExecutor = txmanager.Executor
