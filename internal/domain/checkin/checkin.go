package checkin

import "errors"

var ErrIncomplete = errors.New("document number and accepted rules are required")

// Form - данные электронной регистрации.
type Form struct {
	DocumentNumber string
	RulesAccepted  bool
}

// Validate требует номер документа и подтверждение правил проживания.
func (f Form) Validate() error {
	if f.DocumentNumber == "" || !f.RulesAccepted {
		return ErrIncomplete
	}
	return nil
}

// Confirm имитирует электронную регистрацию: документы не проверяются,
// QR-код не генерируется, возвращается только текст подтверждения.
func Confirm(f Form) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	return "Регистрация завершена! QR-код для доступа отправлен на ваш email.", nil
}
