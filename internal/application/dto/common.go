package dto

// Envelope sobre de respuesta uniforme: {status:"ok", data} o
// {status:"error", error:{...}}.
type Envelope struct {
	Status string         `json:"status"`
	Data   any            `json:"data,omitempty"`
	Error  *ErrorResponse `json:"error,omitempty"`
}

// ErrorResponse cuerpo de error HTTP. Fields lleva los motivos por campo en
// errores de validación; CorrelationID solo se expone en errores internos.
type ErrorResponse struct {
	Code          string            `json:"code"`
	Message       string            `json:"message"`
	Fields        map[string]string `json:"fields,omitempty"`
	CorrelationID string            `json:"correlation_id,omitempty"`
}

// OK construye el sobre de éxito.
func OK(data any) Envelope {
	return Envelope{Status: "ok", Data: data}
}

// Err construye el sobre de error.
func Err(code, message string) Envelope {
	return Envelope{Status: "error", Error: &ErrorResponse{Code: code, Message: message}}
}

// ErrFields construye el sobre de error de validación con motivos por campo.
func ErrFields(code, message string, fields map[string]string) Envelope {
	return Envelope{Status: "error", Error: &ErrorResponse{Code: code, Message: message, Fields: fields}}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
