package productview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/application/ports"
	"github.com/jhoicas/Inventario-admin/internal/domain"
	"github.com/jhoicas/Inventario-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

type updateCall struct {
	ID      string
	Payload dto.ProductPayload
}

type fakeSource struct {
	mu       sync.Mutex
	products []entity.Product
	listErr  error
	mutErr   error
	onList   func()

	listCalls int
	creates   []dto.ProductPayload
	updates   []updateCall
	deletes   []string
}

func (f *fakeSource) List(context.Context) ([]entity.Product, error) {
	f.mu.Lock()
	f.listCalls++
	hook := f.onList
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]entity.Product(nil), f.products...), nil
}

func (f *fakeSource) Create(_ context.Context, in dto.ProductPayload) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, in)
	if f.mutErr != nil {
		return nil, f.mutErr
	}
	p := entity.Product{ID: "new-" + in.Name, Name: in.Name, Price: in.Price, Stock: in.Stock}
	f.products = append(f.products, p)
	return &p, nil
}

func (f *fakeSource) Update(_ context.Context, id string, in dto.ProductPayload) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, updateCall{ID: id, Payload: in})
	if f.mutErr != nil {
		return nil, f.mutErr
	}
	return &entity.Product{ID: id, Name: in.Name}, nil
}

func (f *fakeSource) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	return f.mutErr
}

type recordedPromise struct {
	Msgs ports.PromiseMessages
	Err  error
}

type fakeNotifier struct {
	promises []recordedPromise
	errors   []string
}

func (n *fakeNotifier) Promise(ctx context.Context, msgs ports.PromiseMessages, op func(context.Context) error) error {
	err := op(ctx)
	n.promises = append(n.promises, recordedPromise{Msgs: msgs, Err: err})
	return err
}

func (n *fakeNotifier) Error(msg string) { n.errors = append(n.errors, msg) }

func answer(yes bool) ports.Confirmer {
	return ports.ConfirmFunc(func(context.Context, string) bool { return yes })
}

func sampleProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Kopi Arabika", Price: decimal.NewFromInt(15000), Stock: 10},
		{ID: "2", Name: "Teh Hijau", Price: decimal.NewFromInt(8500), Stock: 0},
	}
}

func newView(src *fakeSource) (*ProductListView, *fakeNotifier) {
	n := &fakeNotifier{}
	return New(src, n, nil), n
}

var errRemote = fmt.Errorf("%w: HTTP 500", domain.ErrRemote)

// ──────────────────────────────────────────────────────────────────────────────
// Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_ReemplazaColeccion(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	v, n := newView(src)

	res := v.Refresh(context.Background())

	assert.True(t, res.OK())
	snap := v.Snapshot()
	assert.Equal(t, LoadIdle, snap.Load)
	assert.Equal(t, sampleProducts(), snap.Products)
	assert.Empty(t, n.errors)
}

func TestRefresh_LoadingDuranteLaLlamada(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	v, _ := newView(src)

	var during Snapshot
	src.onList = func() { during = v.Snapshot() }
	v.Refresh(context.Background())

	assert.True(t, during.Loading())
	assert.False(t, v.Snapshot().Loading())
}

func TestRefresh_FalloPrimeraCargaDejaColeccionVacia(t *testing.T) {
	src := &fakeSource{listErr: errRemote}
	v, n := newView(src)

	res := v.Refresh(context.Background())

	assert.Equal(t, Failed, res.Outcome)
	assert.ErrorIs(t, res.Err, domain.ErrRemote)
	snap := v.Snapshot()
	assert.False(t, snap.Loading())
	assert.Equal(t, LoadError, snap.Load)
	assert.Empty(t, snap.Products)
	assert.Equal(t, []string{MsgLoadFailed}, n.errors)
}

func TestRefresh_FalloConservaColeccionAnterior(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	v, _ := newView(src)
	v.Refresh(context.Background())

	src.listErr = errRemote
	src.products = nil
	v.Refresh(context.Background())

	snap := v.Snapshot()
	assert.False(t, snap.Loading())
	assert.Equal(t, sampleProducts(), snap.Products)
}

func TestMount_SoloRefrescaUnaVez(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	v, _ := newView(src)

	assert.True(t, v.Mount(context.Background()))
	assert.False(t, v.Mount(context.Background()))
	assert.Equal(t, 1, src.listCalls)
	assert.True(t, v.Snapshot().Mounted)
}

func TestUnmount_DescartaColeccion(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	v, _ := newView(src)
	v.Mount(context.Background())
	v.OpenCreate()

	v.Unmount()

	snap := v.Snapshot()
	assert.False(t, snap.Mounted)
	assert.Empty(t, snap.Products)
	assert.Equal(t, ModalClosed, snap.Modal.Kind)
}

func TestUnmount_DescartaRefrescoEnCurso(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	v, _ := newView(src)
	src.onList = func() { v.Unmount() }

	v.Refresh(context.Background())

	assert.Empty(t, v.Snapshot().Products, "un refresco de un montaje anterior no debe aplicarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Modal
// ──────────────────────────────────────────────────────────────────────────────

func TestModal_Transiciones(t *testing.T) {
	v, _ := newView(&fakeSource{products: sampleProducts()})
	v.Refresh(context.Background())

	assert.Equal(t, ModalClosed, v.Snapshot().Modal.Kind)

	v.OpenCreate()
	assert.Equal(t, ModalCreate, v.Snapshot().Modal.Kind)
	assert.Nil(t, v.Snapshot().Modal.Editing())

	require.True(t, v.OpenEditByID("2"))
	m := v.Snapshot().Modal
	assert.Equal(t, ModalEdit, m.Kind)
	require.NotNil(t, m.Editing())
	assert.Equal(t, "Teh Hijau", m.Editing().Name)

	assert.False(t, v.OpenEditByID("no-existe"))
	assert.Equal(t, ModalEdit, v.Snapshot().Modal.Kind, "un ID desconocido no cambia el modal")

	v.CloseModal()
	assert.False(t, v.Snapshot().Modal.IsOpen())
	assert.Nil(t, v.Snapshot().Modal.Editing())
}

// ──────────────────────────────────────────────────────────────────────────────
// Save
// ──────────────────────────────────────────────────────────────────────────────

func TestSave_SinEdicionCrea(t *testing.T) {
	src := &fakeSource{}
	v, n := newView(src)
	v.OpenCreate()

	in := dto.ProductPayload{Name: "Gula Aren", Price: decimal.NewFromInt(12000), Stock: 4}
	res := v.Save(context.Background(), in)

	assert.True(t, res.OK())
	assert.Equal(t, OpCreate, res.Op)
	assert.Equal(t, "new-Gula Aren", res.ProductID)
	assert.Equal(t, []dto.ProductPayload{in}, src.creates)
	assert.Empty(t, src.updates)
	require.Len(t, n.promises, 1)
	assert.Equal(t, saveMessages, n.promises[0].Msgs)

	snap := v.Snapshot()
	assert.Equal(t, ModalClosed, snap.Modal.Kind)
	assert.Len(t, snap.Products, 1, "el éxito refresca la colección")
}

func TestSave_ConEdicionActualizaConSuID(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	v, _ := newView(src)
	v.Refresh(context.Background())
	v.OpenEdit(sampleProducts()[0])

	in := dto.ProductPayload{Name: "Kopi Robusta", Price: decimal.NewFromInt(14000), Stock: 3}
	res := v.Save(context.Background(), in)

	assert.True(t, res.OK())
	assert.Equal(t, OpUpdate, res.Op)
	assert.Equal(t, "1", res.ProductID)
	require.Len(t, src.updates, 1)
	assert.Equal(t, updateCall{ID: "1", Payload: in}, src.updates[0])
	assert.Empty(t, src.creates)
	assert.Nil(t, v.Snapshot().Modal.Editing())
}

func TestSave_RepetidoNoDeduplica(t *testing.T) {
	src := &fakeSource{}
	v, _ := newView(src)
	in := dto.ProductPayload{Name: "Kopi", Price: decimal.NewFromInt(1), Stock: 1}

	v.Save(context.Background(), in)
	v.Save(context.Background(), in)

	assert.Len(t, src.creates, 2)
}

func TestSave_FalloCierraModalSinRefrescar(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	v, n := newView(src)
	v.Refresh(context.Background())
	v.OpenEdit(sampleProducts()[1])
	src.mutErr = errRemote
	listBefore := src.listCalls

	res := v.Save(context.Background(), dto.ProductPayload{Name: "x"})

	assert.Equal(t, Failed, res.Outcome)
	assert.ErrorIs(t, res.Err, domain.ErrRemote)
	assert.Equal(t, listBefore, src.listCalls, "create/update solo refresca en éxito")

	snap := v.Snapshot()
	assert.Equal(t, ModalClosed, snap.Modal.Kind)
	assert.Nil(t, snap.Modal.Editing())
	assert.Equal(t, sampleProducts(), snap.Products)
	require.Len(t, n.promises, 1)
	assert.Error(t, n.promises[0].Err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_RechazadoNoHaceNada(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	v, n := newView(src)
	v.Refresh(context.Background())
	listBefore := src.listCalls

	res := v.Delete(context.Background(), "1", answer(false))

	assert.Equal(t, Declined, res.Outcome)
	assert.Empty(t, src.deletes)
	assert.Empty(t, n.promises)
	assert.Equal(t, listBefore, src.listCalls)
	assert.Equal(t, sampleProducts(), v.Snapshot().Products)
}

func TestDelete_SinConfirmadorEsRechazo(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	v, _ := newView(src)

	res := v.Delete(context.Background(), "1", nil)

	assert.Equal(t, Declined, res.Outcome)
	assert.Empty(t, src.deletes)
}

func TestDelete_ConfirmadoEliminaYRefresca(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	v, n := newView(src)
	v.Refresh(context.Background())

	var prompt string
	confirm := ports.ConfirmFunc(func(_ context.Context, p string) bool {
		prompt = p
		return true
	})
	res := v.Delete(context.Background(), "2", confirm)

	assert.True(t, res.OK())
	assert.Equal(t, MsgConfirmDelete, prompt)
	assert.Equal(t, []string{"2"}, src.deletes)
	require.Len(t, n.promises, 1)
	assert.Equal(t, deleteMessages, n.promises[0].Msgs)
	assert.Equal(t, 2, src.listCalls)
}

func TestDelete_FalloTambienRefresca(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	v, _ := newView(src)
	v.Refresh(context.Background())
	src.mutErr = errRemote

	res := v.Delete(context.Background(), "1", answer(true))

	assert.Equal(t, Failed, res.Outcome)
	assert.Equal(t, 2, src.listCalls)
}

func TestDelete_NoTocaElModal(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	v, _ := newView(src)
	v.Refresh(context.Background())
	v.OpenCreate()

	v.Delete(context.Background(), "1", answer(true))

	assert.Equal(t, ModalCreate, v.Snapshot().Modal.Kind)
}

func TestSnapshot_EsUnaCopia(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	v, _ := newView(src)
	v.Refresh(context.Background())

	snap := v.Snapshot()
	snap.Products[0].Name = "mutado"

	assert.Equal(t, "Kopi Arabika", v.Snapshot().Products[0].Name)
}

func TestResult_Outcome(t *testing.T) {
	assert.Equal(t, "declined", Declined.String())
	assert.False(t, Result{Outcome: Failed, Err: errors.New("x")}.OK())
}
