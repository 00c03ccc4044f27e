package models

import "time"

// Статусы вакансии. Публичная выдача показывает только активные.
const (
	VacancyStatusActive = "active"
	VacancyStatusClosed = "closed"
	VacancyStatusHidden = "hidden"
)

// Vacancy представляет собой вакансию, размещенную работодателем.
type Vacancy struct {
	ID          int64     `json:"id"`
	EmployerID  int64     `json:"employer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Salary      *string   `json:"salary"`
	Location    *string   `json:"location"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// VacancyListItem — строка публичной выдачи: вакансия плюс два поля
// профиля работодателя. Профиль может отсутствовать, тогда поля null.
type VacancyListItem struct {
	Vacancy
	CompanyName     *string `json:"company_name"`
	CompanyLocation *string `json:"company_location"`
}

// DummyVacancy используется для приёма данных из JSON-запроса на создание
// вакансии, прежде чем конвертировать их в Vacancy.
type DummyVacancy struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required"`
	Salary      string `json:"salary"`
	Location    string `json:"location"`
}

// VacancyEvent — сообщение о публикации вакансии, отправляемое
// в очередь уведомлений.
type VacancyEvent struct {
	EventID       string `json:"event_id"`
	VacancyID     int64  `json:"vacancy_id"`
	Title         string `json:"title"`
	EmployerEmail string `json:"employer_email"`
}
