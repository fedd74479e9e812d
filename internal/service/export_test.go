package service

// Алиасы неэкспортируемых реализаций для внешнего тестового пакета
// (тесты живут в service_test, чтобы не возникал цикл импорта с mocks).
type (
	AssignmentServiceImpl = assignmentService
	AuthServiceImpl       = authService
	IncidentServiceImpl   = incidentService
)
