package rabbitmq

import (
	"github.com/streadway/amqp"

	"github.com/kruglovmaksim/jobmatch/internal/models"
)

// VacancyPublisher публикует события о вакансиях в exchange уведомлений.
type VacancyPublisher struct {
	ch *amqp.Channel
}

// NewVacancyPublisher создает новый VacancyPublisher поверх открытого канала.
func NewVacancyPublisher(ch *amqp.Channel) *VacancyPublisher {
	return &VacancyPublisher{ch: ch}
}

// PublishVacancyEvent отправляет событие о публикации вакансии.
func (p *VacancyPublisher) PublishVacancyEvent(event models.VacancyEvent) error {
	return PublishMessage(p.ch, Exchange, VacancyRoutingKey, event)
}
