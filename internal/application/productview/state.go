package productview

import "github.com/jhoicas/Inventario-admin/internal/domain/entity"

// LoadState estado de carga de la colección. Sustituye al booleano "loading".
type LoadState int

const (
	LoadIdle LoadState = iota
	LoadLoading
	LoadError
)

func (s LoadState) String() string {
	switch s {
	case LoadLoading:
		return "loading"
	case LoadError:
		return "error"
	default:
		return "idle"
	}
}

// ModalKind estados del modal de formulario.
type ModalKind int

const (
	ModalClosed ModalKind = iota
	ModalCreate
	ModalEdit
)

func (k ModalKind) String() string {
	switch k {
	case ModalCreate:
		return "create"
	case ModalEdit:
		return "edit"
	default:
		return "closed"
	}
}

// ModalState Closed | OpenForCreate | OpenForEdit(target). Target solo existe en ModalEdit.
type ModalState struct {
	Kind   ModalKind
	target entity.Product
}

// Closed modal cerrado.
func Closed() ModalState { return ModalState{Kind: ModalClosed} }

// OpenForCreate modal abierto sin producto objetivo.
func OpenForCreate() ModalState { return ModalState{Kind: ModalCreate} }

// OpenForEdit modal abierto editando p.
func OpenForEdit(p entity.Product) ModalState { return ModalState{Kind: ModalEdit, target: p} }

// IsOpen indica si el modal está visible.
func (m ModalState) IsOpen() bool { return m.Kind != ModalClosed }

// Editing devuelve el producto en edición o nil (modo creación o cerrado).
func (m ModalState) Editing() *entity.Product {
	if m.Kind != ModalEdit {
		return nil
	}
	p := m.target
	return &p
}

// Snapshot copia inmutable del ViewState para la capa de presentación.
type Snapshot struct {
	Mounted  bool
	Load     LoadState
	Products []entity.Product
	Modal    ModalState
}

// Loading indica si hay un refresco en curso.
func (s Snapshot) Loading() bool { return s.Load == LoadLoading }
