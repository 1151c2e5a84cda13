package timeunit

import (
	"errors"
	"fmt"
	"time"
)

// msThreshold порог эвристики определения единиц измерения timestamp.
// 10 миллиардов секунд — это примерно 2286 год, поэтому любое значение
// выше порога трактуется как миллисекунды. Эвристика должна применяться
// только здесь, а не на каждом call site.
const msThreshold = 10_000_000_000

// EditableLayout формат редактируемого представления времени (аналог
// HTML datetime-local, точность до минуты).
const EditableLayout = "2006-01-02T15:04"

var (
	// ErrInvalidTimestamp возвращается для нулевых и отрицательных timestamp
	ErrInvalidTimestamp = errors.New("timeunit: invalid timestamp")

	// ErrInvalidEditableString возвращается при некорректной строке времени
	ErrInvalidEditableString = errors.New("timeunit: invalid editable time string")
)

// ToSeconds нормализует timestamp к секундам.
// Значения >= msThreshold считаются миллисекундами и делятся на 1000
// с округлением вниз, остальные возвращаются как есть.
func ToSeconds(value int64) (int64, error) {
	if value <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTimestamp, value)
	}
	if value >= msThreshold {
		return value / 1000, nil
	}
	return value, nil
}

// ToLocalEditableString конвертирует секунды в локальную строку времени
// с точностью до минуты. Секунды внутри минуты отбрасываются — это
// документированная граница точности редактируемого представления.
func ToLocalEditableString(seconds int64, loc *time.Location) (string, error) {
	if seconds <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidTimestamp, seconds)
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(seconds, 0).In(loc).Format(EditableLayout), nil
}

// FromEditableString парсит локальную строку времени и возвращает секунды.
// Обратная операция к ToLocalEditableString.
func FromEditableString(s string, loc *time.Location) (int64, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(EditableLayout, s, loc)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidEditableString, s)
	}
	return t.Unix(), nil
}
