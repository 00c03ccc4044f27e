package rabbitmq

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// Очередь и ключ маршрутизации событий о публикации вакансий.
const (
	VacancyQueue      = "notifications.vacancy"
	VacancyRoutingKey = "vacancy.published"
)

// GetNotificationQueues возвращает очереди, обслуживаемые notification-sender.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: VacancyQueue, RoutingKey: VacancyRoutingKey},
	}
}
