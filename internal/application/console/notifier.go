package console

import "github.com/tu-usuario/warehouse-console/internal/application/dto"

// Clases de notificación hacia el usuario.
const (
	NotifySuccess = "success"
	NotifyError   = "error"
	NotifyWarning = "warning"
	NotifyInfo    = "info"
)

// Notifier recibe notificaciones dirigidas al usuario. Fire-and-forget: el
// emisor no consume ningún resultado.
type Notifier interface {
	Notify(kind, title, message string)
}

// Collector acumula las notificaciones emitidas durante una activación para
// devolverlas en la respuesta (reemplaza los toasts del cliente).
type Collector struct {
	items []dto.NotificationDTO
}

// Notify implementa Notifier.
func (c *Collector) Notify(kind, title, message string) {
	c.items = append(c.items, dto.NotificationDTO{Kind: kind, Title: title, Message: message})
}

// Drain devuelve lo acumulado y vacía el colector.
func (c *Collector) Drain() []dto.NotificationDTO {
	out := c.items
	c.items = nil
	return out
}
