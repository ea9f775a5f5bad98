package validators

import "regexp"

// Синтаксические проверки полей анкеты. Чистые функции без побочных эффектов.
var (
	emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
	yearsRe = regexp.MustCompile(`^\d+$`)
)

// ValidateEmail проверяет, что строка похожа на email адрес.
// Проверка только синтаксическая, доставляемость не проверяется.
func ValidateEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidatePhone проверяет, что строка - ровно 10 ASCII цифр без разделителей.
func ValidatePhone(s string) bool {
	return phoneRe.MatchString(s)
}

// ValidateExperience проверяет, что строка - неотрицательное целое число лет.
func ValidateExperience(s string) bool {
	return yearsRe.MatchString(s)
}
