package productview

// Operation flujo que produjo un Result.
type Operation string

const (
	OpRefresh Operation = "refresh"
	OpCreate  Operation = "create"
	OpUpdate  Operation = "update"
	OpDelete  Operation = "delete"
)

// Outcome cómo terminó el flujo.
type Outcome int

const (
	Succeeded Outcome = iota
	Failed
	Declined // el usuario no confirmó la acción destructiva
)

func (o Outcome) String() string {
	switch o {
	case Failed:
		return "failed"
	case Declined:
		return "declined"
	default:
		return "succeeded"
	}
}

// Result resultado de un flujo. Los errores remotos nunca se propagan como error:
// quedan aquí, ya registrados y notificados.
type Result struct {
	Op        Operation
	ProductID string
	Outcome   Outcome
	Err       error
}

// OK indica éxito.
func (r Result) OK() bool { return r.Outcome == Succeeded }
