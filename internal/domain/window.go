package domain

import (
	"errors"
	"time"
)

var ErrInvalidDateWindow = errors.New("data inicial deve ser anterior à data final")

// DateWindow é semiaberto e inclui o dia inicial
type DateWindow struct {
	Start time.Time
	End   time.Time
}

func NewDateWindow(start, end time.Time) (DateWindow, error) {
	window := DateWindow{Start: start.UTC(), End: end.UTC()}
	if err := window.Validate(); err != nil {
		return DateWindow{}, err
	}
	return window, nil
}

func (w DateWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() || !w.Start.Before(w.End) {
		return ErrInvalidDateWindow
	}
	return nil
}

// Days retorna a quantidade de dias completos da janela, no mínimo 1
func (w DateWindow) Days() int {
	days := int(w.End.Sub(w.Start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

func (w DateWindow) StartDate() string {
	return w.Start.Format(time.DateOnly)
}

func (w DateWindow) EndDate() string {
	return w.End.Format(time.DateOnly)
}

func (w DateWindow) StartTimestamp() string {
	return w.Start.UTC().Format(time.RFC3339)
}

func (w DateWindow) EndTimestamp() string {
	return w.End.UTC().Format(time.RFC3339)
}
