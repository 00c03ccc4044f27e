package models

// Setting — строка таблицы настроек: пара ключ/значение.
// Ключи с префиксами theme_ и color_ относятся к оформлению.
type Setting struct {
	Key   string `json:"setting_key"`
	Value string `json:"setting_value"`
}

// Theme — итоговый объект темы оформления: открытое отображение
// ключей на строковые значения. Помимо пяти обязательных ключей
// по умолчанию может содержать любые ключи из таблицы настроек.
type Theme map[string]string
