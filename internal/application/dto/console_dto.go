package dto

// NotificationDTO notificación acumulada durante una activación de vista.
// Kind: success, error, warning, info.
type NotificationDTO struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ActivationDTO resultado de activar una vista en la consola.
// View es el view model de la vista finalmente renderizada (puede ser un
// fallback); Current indica la vista registrada como actual tras la llamada.
type ActivationDTO struct {
	Requested     string            `json:"requested"`
	Current       string            `json:"current"`
	Redirected    bool              `json:"redirected"`
	NavActive     string            `json:"nav_active"`
	Breadcrumb    []string          `json:"breadcrumb"`
	View          interface{}       `json:"view"`
	Notifications []NotificationDTO `json:"notifications,omitempty"`
}
