// Package productview implementa la pantalla de gestión de productos: el estado
// local de la vista y los flujos de refresco y mutación sobre el servicio remoto.
//
// Los flujos son secuenciales: llamada remota, notificación, refresco. No hay
// deduplicación ni cancelación de peticiones solapadas (dos clics seguidos producen
// dos llamadas), y el mutex nunca se mantiene durante una llamada remota.
package productview

import (
	"context"
	"sync"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/application/ports"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
	"github.com/jhoicas/Inventario-admin/pkg/logger"
)

// ProductListView mantiene el ViewState y ejecuta los flujos Refresh, Save y Delete.
type ProductListView struct {
	source   ports.ProductDataSource
	notifier ports.Notifier
	log      *logger.Logger

	mu       sync.Mutex
	mounted  bool
	gen      uint64 // se incrementa en Unmount; descarta refrescos de un montaje anterior
	load     LoadState
	products []entity.Product
	modal    ModalState
}

// New construye la vista. El estado inicial es Idle, colección vacía y modal Closed.
func New(source ports.ProductDataSource, notifier ports.Notifier, log *logger.Logger) *ProductListView {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductListView{
		source:   source,
		notifier: notifier,
		log:      log.Named("productview"),
		products: []entity.Product{},
		modal:    Closed(),
	}
}

// Mount marca la vista como montada y ejecuta el primer Refresh.
// Si ya estaba montada no hace nada y devuelve false.
func (v *ProductListView) Mount(ctx context.Context) bool {
	v.mu.Lock()
	if v.mounted {
		v.mu.Unlock()
		return false
	}
	v.mounted = true
	v.mu.Unlock()

	v.Refresh(ctx)
	return true
}

// Unmount descarta la colección cacheada y vuelve al estado inicial.
func (v *ProductListView) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mounted = false
	v.gen++
	v.load = LoadIdle
	v.products = []entity.Product{}
	v.modal = Closed()
}

// Refresh pide la colección completa y reemplaza la cacheada.
// Nunca devuelve error: en fallo notifica, deja la colección anterior y pasa a LoadError.
func (v *ProductListView) Refresh(ctx context.Context) Result {
	v.mu.Lock()
	v.load = LoadLoading
	gen := v.gen
	v.mu.Unlock()

	products, err := v.source.List(ctx)

	v.mu.Lock()
	stale := gen != v.gen
	if !stale {
		if err != nil {
			v.load = LoadError
		} else {
			v.load = LoadIdle
			v.products = cloneProducts(products)
		}
	}
	v.mu.Unlock()

	if err != nil {
		v.log.Error().Err(err).Bool("stale", stale).Msg("refresco de productos")
		if !stale {
			v.notifier.Error(MsgLoadFailed)
		}
		return Result{Op: OpRefresh, Outcome: Failed, Err: err}
	}
	return Result{Op: OpRefresh, Outcome: Succeeded}
}

// OpenCreate abre el modal en modo creación.
func (v *ProductListView) OpenCreate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.modal = OpenForCreate()
}

// OpenEdit abre el modal editando p (desde cualquier estado del modal).
func (v *ProductListView) OpenEdit(p entity.Product) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.modal = OpenForEdit(p)
}

// OpenEditByID abre el modal editando el producto cacheado con ese ID.
// Devuelve false si el producto no está en la colección actual.
func (v *ProductListView) OpenEditByID(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, p := range v.products {
		if p.ID == id {
			v.modal = OpenForEdit(p)
			return true
		}
	}
	return false
}

// CloseModal cierra el modal y limpia el producto en edición.
func (v *ProductListView) CloseModal() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.modal = Closed()
}

// Save crea o actualiza según haya un producto en edición.
// Al asentarse la llamada cierra el modal; solo en éxito refresca la colección.
func (v *ProductListView) Save(ctx context.Context, in dto.ProductPayload) Result {
	v.mu.Lock()
	target := v.modal.Editing()
	v.mu.Unlock()

	res := Result{Op: OpCreate}
	if target != nil {
		res.Op = OpUpdate
		res.ProductID = target.ID
	}

	err := v.notifier.Promise(ctx, saveMessages, func(ctx context.Context) error {
		if target != nil {
			_, err := v.source.Update(ctx, target.ID, in)
			return err
		}
		created, err := v.source.Create(ctx, in)
		if err == nil && created != nil {
			res.ProductID = created.ID
		}
		return err
	})

	v.CloseModal()

	if err != nil {
		v.log.Error().Err(err).Str("op", string(res.Op)).Str("product_id", res.ProductID).Msg("guardar producto")
		res.Outcome = Failed
		res.Err = err
		return res
	}

	v.Refresh(ctx)
	res.Outcome = Succeeded
	return res
}

// Delete pide confirmación y elimina el producto. Si el usuario no confirma no
// hace nada. Tras asentarse la llamada refresca siempre, haya fallado o no.
func (v *ProductListView) Delete(ctx context.Context, id string, confirm ports.Confirmer) Result {
	res := Result{Op: OpDelete, ProductID: id}
	if confirm == nil || !confirm.Confirm(ctx, MsgConfirmDelete) {
		res.Outcome = Declined
		return res
	}

	err := v.notifier.Promise(ctx, deleteMessages, func(ctx context.Context) error {
		return v.source.Delete(ctx, id)
	})
	if err != nil {
		v.log.Error().Err(err).Str("product_id", id).Msg("eliminar producto")
		res.Outcome = Failed
		res.Err = err
	}

	// Un fallo de borrado puede ocurrir después de que el servidor ya eliminó el
	// producto (timeout), así que la tabla se resincroniza en ambos casos.
	v.Refresh(ctx)
	return res
}

// Snapshot devuelve una copia del estado actual.
func (v *ProductListView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{
		Mounted:  v.mounted,
		Load:     v.load,
		Products: cloneProducts(v.products),
		Modal:    v.modal,
	}
}

func cloneProducts(in []entity.Product) []entity.Product {
	out := make([]entity.Product, len(in))
	copy(out, in)
	return out
}
