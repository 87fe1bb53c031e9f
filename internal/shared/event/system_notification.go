package event

const SystemNotificationDestination string = "system_notification"
const SystemNotificationConsumerNotification string = "system_notification_notification"

type SystemNotificationMessage struct {
	Message string `json:"message"`
	Details string `json:"details"`
}
