package productview

import "github.com/jhoicas/Inventario-admin/internal/application/ports"

// Textos visibles de la pantalla (indonesio, como el resto del panel).
const (
	MsgLoadFailed    = "Gagal memuat produk."
	MsgConfirmDelete = "Apakah Anda yakin ingin menghapus produk ini?"
)

var (
	saveMessages = ports.PromiseMessages{
		Pending: "Menyimpan produk...",
		Success: "Produk berhasil disimpan!",
		Error:   "Gagal menyimpan produk.",
	}
	deleteMessages = ports.PromiseMessages{
		Pending: "Menghapus produk...",
		Success: "Produk berhasil dihapus!",
		Error:   "Gagal menghapus produk.",
	}
)
