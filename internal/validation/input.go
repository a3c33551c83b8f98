package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MaxTitleLength        = 200
	MaxDescriptionLength  = 5000
	MaxShortTextLength    = 200
	MaxDemographicsLength = 1000
	MaxListItems          = 50
	MaxListItemLength     = 200
	MaxNameLength         = 200
	MaxPhoneLength        = 50
	MaxURLLength          = 500
	MaxNoteLength         = 5000
	MaxContentLength      = 10000
	MaxAudienceSize       = 100000000
)

var (
	emailLocalRegex  = regexp.MustCompile(`^[a-z0-9._+-]+$`)
	emailDomainRegex = regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// ValidateRequired объединяет проверку на пустоту и максимальную длину.
func ValidateRequired(fieldName, value string, max int) error {
	if err := ValidateNonEmpty(fieldName, value); err != nil {
		return err
	}
	return ValidateLength(fieldName, value, 0, max)
}

// ValidateOptional проверяет длину необязательного поля.
func ValidateOptional(fieldName string, value *string, max int) error {
	if value == nil {
		return nil
	}
	return ValidateLength(fieldName, *value, 0, max)
}

// ValidateList проверяет количество элементов и длину каждого элемента.
func ValidateList(fieldName string, items []string) error {
	if len(items) > MaxListItems {
		return fmt.Errorf("%s: не более %d элементов", fieldName, MaxListItems)
	}
	for _, item := range items {
		if err := ValidateLength(fieldName, item, 0, MaxListItemLength); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	email = strings.ToLower(strings.TrimSpace(email))

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("некорректный формат email")
	}

	localPart := parts[0]
	domainPart := parts[1]

	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}
	if len(domainPart) == 0 || len(domainPart) > 255 {
		return fmt.Errorf("доменная часть email должна быть от 1 до 255 символов")
	}
	if !emailLocalRegex.MatchString(localPart) {
		return fmt.Errorf("локальная часть email содержит недопустимые символы")
	}
	if !emailDomainRegex.MatchString(domainPart) {
		return fmt.Errorf("доменная часть email имеет некорректный формат")
	}

	return nil
}

// ValidateURL проверяет, что ссылка абсолютная и использует http(s).
func ValidateURL(fieldName, raw string) error {
	if err := ValidateLength(fieldName, raw, 0, MaxURLLength); err != nil {
		return err
	}

	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%s: некорректный URL", fieldName)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s: URL должен начинаться с http:// или https://", fieldName)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s: в URL отсутствует хост", fieldName)
	}
	return nil
}
