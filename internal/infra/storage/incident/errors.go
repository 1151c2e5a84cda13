package incident

import "errors"

var (
	// ErrIncidentNotFound возвращается, когда инцидент не найден
	ErrIncidentNotFound = errors.New("incident.repository: incident not found")

	// ErrAlreadyAcknowledged возвращается при повторном подтверждении инцидента
	ErrAlreadyAcknowledged = errors.New("incident.repository: incident already acknowledged")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("incident.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("incident.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("incident.repository: failed to scan row")
)
