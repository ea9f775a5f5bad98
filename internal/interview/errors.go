package interview

import "fmt"

// ValidationError - синтаксически некорректный ввод кандидата.
// Восстановимая ошибка: курсор не сдвигается, кандидат повторяет ввод.
// Message показывается кандидату как есть.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError - хранилище недоступно или отклонило запись.
// Состояние сессии не изменено, повторный ввод приведет к повторной попытке.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("ошибка хранилища (%s): %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// GenerationError - вызов языковой модели не удался или вернул
// непригодный результат.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("ошибка генерации (%s): %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
