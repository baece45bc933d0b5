package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/camposoft/ganaderia-api/internal/domain"
	"github.com/camposoft/ganaderia-api/internal/domain/entity"
	"github.com/camposoft/ganaderia-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso. Implementan solo el comportamiento
// que los tests necesitan; las operaciones de escritura mutan los mapas para
// poder verificar efectos.

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func decimalPtr(v decimal.Decimal) *decimal.Decimal { return &v }

func timePtr(t time.Time) *time.Time { return &t }

// ── semovientes ──────────────────────────────────────────────────────────────

type transicionAplicada struct {
	ID         int64
	Estado     string
	NuevaFinca *int64
	Baja       *repository.Baja
}

type fakeSemovienteRepo struct {
	porID        map[int64]*entity.Semoviente
	nextID       int64
	transiciones []transicionAplicada
}

func newFakeSemovienteRepo(semovientes ...*entity.Semoviente) *fakeSemovienteRepo {
	f := &fakeSemovienteRepo{porID: map[int64]*entity.Semoviente{}, nextID: 100}
	for _, s := range semovientes {
		f.porID[s.ID] = s
	}
	return f
}

func (f *fakeSemovienteRepo) Create(_ context.Context, s *entity.Semoviente) error {
	f.nextID++
	s.ID = f.nextID
	f.porID[s.ID] = s
	return nil
}

func (f *fakeSemovienteRepo) GetByID(_ context.Context, id int64) (*entity.Semoviente, error) {
	return f.porID[id], nil
}

func (f *fakeSemovienteRepo) GetParaTransicion(_ context.Context, id int64) (*entity.Semoviente, error) {
	return f.porID[id], nil
}

func (f *fakeSemovienteRepo) ListByFinca(_ context.Context, idFinca int64, incluirInactivos bool) ([]*entity.Semoviente, error) {
	var out []*entity.Semoviente
	for _, s := range f.porID {
		if s.IDFinca != idFinca {
			continue
		}
		if !incluirInactivos && s.Estado != entity.EstadoActivo {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSemovienteRepo) ActualizarParcial(_ context.Context, id int64, _ repository.SemovientePatch) (*entity.Semoviente, error) {
	return f.porID[id], nil
}

func (f *fakeSemovienteRepo) CambiarEstado(_ context.Context, id int64, cambio repository.CambioEstado) (*entity.Semoviente, error) {
	s := f.porID[id]
	if s == nil {
		return nil, nil
	}
	s.Estado = cambio.Estado
	return s, nil
}

func (f *fakeSemovienteRepo) AplicarTransicion(_ context.Context, id int64, estado string, nuevaFinca *int64, baja *repository.Baja) error {
	f.transiciones = append(f.transiciones, transicionAplicada{ID: id, Estado: estado, NuevaFinca: nuevaFinca, Baja: baja})
	s := f.porID[id]
	if s == nil {
		return domain.ErrNoEncontrado
	}
	s.Estado = estado
	if nuevaFinca != nil {
		s.IDFinca = *nuevaFinca
	}
	return nil
}

func (f *fakeSemovienteRepo) AnularPadres(_ context.Context, _ int64) error { return nil }

func (f *fakeSemovienteRepo) Delete(_ context.Context, id int64) error {
	delete(f.porID, id)
	return nil
}

// ── movimientos ──────────────────────────────────────────────────────────────

type fakeMovimientoRepo struct {
	items  []*entity.Movimiento
	nextID int64
	// semovientes permite incluir la finca actual del animal en
	// FincasRelacionadas, como hace la consulta real.
	semovientes *fakeSemovienteRepo
}

func (f *fakeMovimientoRepo) Create(_ context.Context, m *entity.Movimiento) error {
	f.nextID++
	m.ID = f.nextID
	f.items = append(f.items, m)
	return nil
}

func (f *fakeMovimientoRepo) GetByID(_ context.Context, id int64) (*entity.Movimiento, error) {
	for _, m := range f.items {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovimientoRepo) ListBySemoviente(_ context.Context, idSemoviente int64) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range f.items {
		if m.IDSemoviente == idSemoviente {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovimientoRepo) FincasRelacionadas(_ context.Context, idSemoviente int64) ([]int64, error) {
	vistas := map[int64]bool{}
	var out []int64
	agregar := func(id *int64) {
		if id != nil && !vistas[*id] {
			vistas[*id] = true
			out = append(out, *id)
		}
	}
	if f.semovientes != nil {
		if s := f.semovientes.porID[idSemoviente]; s != nil {
			agregar(&s.IDFinca)
		}
	}
	for _, m := range f.items {
		if m.IDSemoviente != idSemoviente {
			continue
		}
		agregar(m.FincaOrigenID)
		agregar(m.FincaDestinoID)
	}
	return out, nil
}

// ── miembros ─────────────────────────────────────────────────────────────────

type fakeMiembroRepo struct {
	// roles[idUsuario][idFinca] = rol
	roles map[int64]map[int64]string
}

func newFakeMiembroRepo() *fakeMiembroRepo {
	return &fakeMiembroRepo{roles: map[int64]map[int64]string{}}
}

func (f *fakeMiembroRepo) conRol(idUsuario, idFinca int64, rol string) *fakeMiembroRepo {
	if f.roles[idUsuario] == nil {
		f.roles[idUsuario] = map[int64]string{}
	}
	f.roles[idUsuario][idFinca] = rol
	return f
}

func (f *fakeMiembroRepo) GetRol(_ context.Context, idUsuario, idFinca int64) (string, error) {
	return f.roles[idUsuario][idFinca], nil
}

func (f *fakeMiembroRepo) RolesDeUsuario(_ context.Context, idUsuario int64) (map[int64]string, error) {
	out := map[int64]string{}
	for idFinca, rol := range f.roles[idUsuario] {
		out[idFinca] = rol
	}
	return out, nil
}

func (f *fakeMiembroRepo) ListarPorFinca(_ context.Context, _ int64) ([]*entity.MiembroDetalle, error) {
	return nil, nil
}

func (f *fakeMiembroRepo) ListarFincasConRol(_ context.Context, idUsuario int64) ([]repository.FincaConRol, error) {
	var out []repository.FincaConRol
	for idFinca, rol := range f.roles[idUsuario] {
		out = append(out, repository.FincaConRol{IDFinca: idFinca, RolEnFinca: rol})
	}
	return out, nil
}

func (f *fakeMiembroRepo) CompartenFincaComoAdmin(_ context.Context, idAdmin, idObjetivo int64) (bool, error) {
	for idFinca, rol := range f.roles[idAdmin] {
		if rol != entity.RolFincaAdmin {
			continue
		}
		if _, ok := f.roles[idObjetivo][idFinca]; ok {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMiembroRepo) Upsert(_ context.Context, m *entity.MiembroFinca) error {
	f.conRol(m.IDUsuario, m.IDFinca, m.Rol)
	return nil
}

func (f *fakeMiembroRepo) Delete(_ context.Context, idUsuario, idFinca int64, rol string) (bool, error) {
	if f.roles[idUsuario][idFinca] != rol {
		return false, nil
	}
	delete(f.roles[idUsuario], idFinca)
	return true, nil
}

// ── fincas ───────────────────────────────────────────────────────────────────

type adminFijado struct {
	IDFinca   int64
	IDUsuario *int64
}

type fakeFincaRepo struct {
	porID   map[int64]*entity.Finca
	fijados []adminFijado
	nextID  int64
}

func newFakeFincaRepo(fincas ...*entity.Finca) *fakeFincaRepo {
	f := &fakeFincaRepo{porID: map[int64]*entity.Finca{}, nextID: 50}
	for _, fi := range fincas {
		f.porID[fi.ID] = fi
	}
	return f
}

func (f *fakeFincaRepo) Create(_ context.Context, fi *entity.Finca) error {
	f.nextID++
	fi.ID = f.nextID
	f.porID[fi.ID] = fi
	return nil
}

func (f *fakeFincaRepo) GetByID(_ context.Context, id int64) (*entity.Finca, error) {
	return f.porID[id], nil
}

func (f *fakeFincaRepo) Existe(_ context.Context, id int64) (bool, error) {
	_, ok := f.porID[id]
	return ok, nil
}

func (f *fakeFincaRepo) ListAll(_ context.Context) ([]*entity.Finca, error) {
	var out []*entity.Finca
	for _, fi := range f.porID {
		out = append(out, fi)
	}
	return out, nil
}

func (f *fakeFincaRepo) ListByUsuario(_ context.Context, _ int64) ([]*entity.Finca, error) {
	return nil, nil
}

func (f *fakeFincaRepo) ActualizarParcial(_ context.Context, id int64, _ repository.FincaPatch) (*entity.Finca, error) {
	return f.porID[id], nil
}

func (f *fakeFincaRepo) Delete(_ context.Context, id int64) error {
	delete(f.porID, id)
	return nil
}

func (f *fakeFincaRepo) SetAdministrador(_ context.Context, idFinca int64, idUsuario *int64) error {
	f.fijados = append(f.fijados, adminFijado{IDFinca: idFinca, IDUsuario: idUsuario})
	if fi := f.porID[idFinca]; fi != nil {
		fi.AdministradorID = idUsuario
	}
	return nil
}

// ── usuarios ─────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	porID    map[int64]*entity.Usuario
	borrados []int64
	nextID   int64
}

func newFakeUsuarioRepo(usuarios ...*entity.Usuario) *fakeUsuarioRepo {
	f := &fakeUsuarioRepo{porID: map[int64]*entity.Usuario{}, nextID: 200}
	for _, u := range usuarios {
		f.porID[u.ID] = u
	}
	return f
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	f.nextID++
	u.ID = f.nextID
	f.porID[u.ID] = u
	return nil
}

func (f *fakeUsuarioRepo) GetByID(_ context.Context, id int64) (*entity.Usuario, error) {
	return f.porID[id], nil
}

func (f *fakeUsuarioRepo) GetByLogin(_ context.Context, usuario string) (*entity.Usuario, error) {
	for _, u := range f.porID {
		if u.NombreUsuario == usuario || u.CorreoElectronico == usuario {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) List(_ context.Context) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range f.porID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsuarioRepo) ActualizarParcial(_ context.Context, id int64, _ repository.UsuarioPatch) (*entity.Usuario, error) {
	return f.porID[id], nil
}

func (f *fakeUsuarioRepo) ActualizarContrasena(_ context.Context, id int64, hash string) error {
	u := f.porID[id]
	if u == nil {
		return domain.ErrUsuarioNoEncontrado
	}
	u.Contrasena = hash
	return nil
}

func (f *fakeUsuarioRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.porID[id]; !ok {
		return domain.ErrUsuarioNoEncontrado
	}
	delete(f.porID, id)
	f.borrados = append(f.borrados, id)
	return nil
}

// ── registros médicos ────────────────────────────────────────────────────────

type fakeRegistroRepo struct {
	items  []*entity.RegistroMedico
	nextID int64
}

func (f *fakeRegistroRepo) Create(_ context.Context, r *entity.RegistroMedico) error {
	f.nextID++
	r.ID = f.nextID
	f.items = append(f.items, r)
	return nil
}

func (f *fakeRegistroRepo) ListBySemoviente(_ context.Context, idSemoviente int64) ([]*entity.RegistroMedico, error) {
	var out []*entity.RegistroMedico
	for _, r := range f.items {
		if r.IDSemoviente == idSemoviente {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRegistroRepo) ActualizarParcial(_ context.Context, idSemoviente, idRegistro int64, _ repository.RegistroMedicoPatch) (*entity.RegistroMedico, error) {
	for _, r := range f.items {
		if r.ID == idRegistro && r.IDSemoviente == idSemoviente {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRegistroRepo) Delete(_ context.Context, idSemoviente, idRegistro int64) (bool, error) {
	for i, r := range f.items {
		if r.ID == idRegistro && r.IDSemoviente == idSemoviente {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ── catálogo de razas ────────────────────────────────────────────────────────

type fakeRazaRepo struct {
	parejas map[[2]int64]bool // (idRaza, idEspecie) válidas
}

func newFakeRazaRepo(parejas ...[2]int64) *fakeRazaRepo {
	f := &fakeRazaRepo{parejas: map[[2]int64]bool{}}
	for _, p := range parejas {
		f.parejas[p] = true
	}
	return f
}

func (f *fakeRazaRepo) RazaPerteneceAEspecie(_ context.Context, idRaza, idEspecie int64) (bool, error) {
	return f.parejas[[2]int64{idRaza, idEspecie}], nil
}

func (f *fakeRazaRepo) GetRaza(_ context.Context, idRaza int64) (*entity.Raza, error) {
	return &entity.Raza{ID: idRaza, NombreRaza: "Brahman"}, nil
}

func (f *fakeRazaRepo) GetEspecie(_ context.Context, idEspecie int64) (*entity.Especie, error) {
	return &entity.Especie{ID: idEspecie, NombreEspecie: "Bovino"}, nil
}

// ── reportes ─────────────────────────────────────────────────────────────────

type fakeReporteRepo struct {
	resumen       *repository.InventarioResumen
	eventos       []repository.EventoSanitario
	ultimoDesde   time.Time
	ultimoHasta   time.Time
	ultimoIncluir bool
}

func (f *fakeReporteRepo) Inventario(_ context.Context, _ int64, incluirInactivos bool) (*repository.InventarioResumen, error) {
	f.ultimoIncluir = incluirInactivos
	if f.resumen != nil {
		return f.resumen, nil
	}
	return &repository.InventarioResumen{PorEstado: map[string]int{}, PorEspecie: map[string]int{}, PorSexo: map[string]int{}}, nil
}

func (f *fakeReporteRepo) EventosProximos(_ context.Context, _ int64, desde, hasta time.Time) ([]repository.EventoSanitario, error) {
	f.ultimoDesde, f.ultimoHasta = desde, hasta
	return f.eventos, nil
}

// ── transacciones ────────────────────────────────────────────────────────────

// fakeTx ejecuta fn directamente contra los mismos fakes; no hay rollback, los
// tests que esperan error verifican efectos de forma explícita.
type fakeTx struct {
	repos repository.Repositorios
}

func (f *fakeTx) EnTransaccion(_ context.Context, fn func(r repository.Repositorios) error) error {
	return fn(f.repos)
}
