package domain

// SlotPrice вычисляет стоимость бронирования: почасовая цена корта,
// умноженная на длительность интервала в часах. Неполные часы
// оплачиваются пропорционально (90 минут = 1.5 часа).
func SlotPrice(pricePerHour float64, r TimeRange) (float64, error) {
	minutes, err := r.DurationMinutes()
	if err != nil {
		return 0, err
	}
	return pricePerHour * float64(minutes) / MinutesPerHour, nil
}
