package utils

import "time"

// TruncateToDay descarta o horário e normaliza para meia-noite UTC,
// preservando o dia de calendário do valor recebido
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays soma dias de calendário a uma data normalizada
func AddDays(t time.Time, days int) time.Time {
	return TruncateToDay(t).AddDate(0, 0, days)
}

// NextDay retorna o dia de calendário seguinte
func NextDay(t time.Time) time.Time {
	return AddDays(t, 1)
}

// SameDay indica se duas datas caem no mesmo dia de calendário
func SameDay(a, b time.Time) bool {
	return TruncateToDay(a).Equal(TruncateToDay(b))
}
