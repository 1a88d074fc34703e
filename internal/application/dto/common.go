package dto

// ErrorResponse cuerpo de error HTTP. El cliente muestra Error tal cual
// en un alert, así que el mensaje debe ser apto para el usuario final.
type ErrorResponse struct {
	Error string `json:"error"`
}
