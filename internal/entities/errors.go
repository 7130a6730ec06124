package entities

import "errors"

// Корневые классы ошибок. Ошибки сервисов оборачивают один из них, чтобы транспорт
// мог выбрать код ответа через errors.Is, не зная конкретных ошибок каждого пакета.
var (
	// ErrValidation неположительная сумма, пустая обязательная ссылка и т.п. Ничего не записано.
	ErrValidation = errors.New("validation error")
	// ErrNotFound запрошенная сущность не существует.
	ErrNotFound = errors.New("not found")
	// ErrConflict заказ уже занят другой выпиской, вызывающий должен пересобрать набор.
	ErrConflict = errors.New("conflict")
	// ErrConsistency операция несовместима с текущим состоянием или флагами заказа.
	ErrConsistency = errors.New("consistency error")
	// ErrPersistence транзакция прервана, всё откатано.
	ErrPersistence = errors.New("persistence error")
)
